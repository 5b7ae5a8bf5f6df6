// Package format holds the pure display helpers shared by the order views:
// currency, dates, short order references and status style tokens. Every
// function is total; malformed input degrades to a fallback string instead
// of failing.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
)

const rupee = "₹"

// Price renders an amount in INR with Indian digit grouping:
// Price(123456.78) == "₹1,23,456.78".
func Price(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return rupee + "0.00"
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	// Round to paise before splitting so 999.995 groups as 1,000.00.
	amount = math.Round(amount*100) / 100
	whole := int64(amount)
	paise := int64(math.Round((amount - float64(whole)) * 100))
	return fmt.Sprintf("%s%s%s.%02d", sign, rupee, groupIndian(whole), paise)
}

// groupIndian inserts commas after the last three digits and then every two:
// 1234567 -> "12,34,567".
func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

// Date renders a timestamp for display. The zero time renders as "N/A".
func Date(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("02 Jan 2006, 03:04 PM")
}

// ShortRef is the customer-facing order reference: the last 8 characters of
// the id, uppercased.
func ShortRef(orderID string) string {
	if len(orderID) > 8 {
		orderID = orderID[len(orderID)-8:]
	}
	return strings.ToUpper(orderID)
}

// StatusColor maps an order status to a style token. Unknown statuses get
// the neutral token rather than an error.
func StatusColor(s entity.OrderStatus) string {
	switch s {
	case entity.StatusPending:
		return "yellow"
	case entity.StatusProcessing:
		return "blue"
	case entity.StatusShipped:
		return "indigo"
	case entity.StatusDelivered:
		return "green"
	case entity.StatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

// PaymentStatusColor maps a payment status to a style token; anything
// unknown is styled as pending.
func PaymentStatusColor(s entity.PaymentStatus) string {
	switch s {
	case entity.PaymentPaid:
		return "green"
	case entity.PaymentFailed:
		return "red"
	default:
		return "yellow"
	}
}
