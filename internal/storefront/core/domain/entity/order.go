package entity

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// OrderStatus is the remote-defined lifecycle status of an order.
// The set below is what the storefront knows how to render; any other
// value coming off the wire is carried through as an opaque display string.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// IsTerminal reports whether the status permits no further client-side
// mutation. Cancellation must never be attempted on a terminal order.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// PaymentStatus is display-only. Unknown values are styled as pending.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type OrderItem struct {
	ID    string
	Title string
	Image string
	Qty   int
	Price float64
}

// LineTotal is computed, never stored.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Qty)
}

type Address struct {
	FullName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Pincode      string
	Country      string
	Phone        string
}

const defaultCountry = "India"

// DisplayCountry returns the country, falling back to the store's default.
func (a Address) DisplayCountry() string {
	if a.Country == "" {
		return defaultCountry
	}
	return a.Country
}

// StatusEvent is one entry in an order's chronological status history.
type StatusEvent struct {
	Status    OrderStatus
	Note      string
	Timestamp time.Time
}

// Order is the customer's purchase record as returned by the remote order
// service. The order store owns the authoritative in-memory copy; views
// only ever hold read references.
type Order struct {
	ID              string
	Items           []OrderItem
	ItemsPrice      float64
	ShippingPrice   float64
	TaxPrice        float64
	TotalAmount     float64
	CurrentStatus   OrderStatus
	PaymentMethod   string
	PaymentStatus   PaymentStatus
	PaymentID       string
	ShippingAddress Address
	StatusHistory   []StatusEvent
	CreatedAt       time.Time
}

// AmountTolerance absorbs currency rounding when checking the pricing
// invariant. Amounts are rupees with paise precision.
const AmountTolerance = 0.01

var ErrInvalidOrder = errors.New("invalid order")

// Validate checks the structural invariants an order must satisfy before it
// is accepted into the cache: non-empty id, non-negative amounts, positive
// item quantities, and TotalAmount = ItemsPrice + ShippingPrice + TaxPrice
// within AmountTolerance. Unknown status strings are deliberately allowed.
func (o *Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidOrder)
	}
	for _, amount := range []float64{o.ItemsPrice, o.ShippingPrice, o.TaxPrice, o.TotalAmount} {
		if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return fmt.Errorf("%w: order %s has a negative or non-finite amount", ErrInvalidOrder, o.ID)
		}
	}
	for _, item := range o.Items {
		if item.Qty <= 0 {
			return fmt.Errorf("%w: order %s item %q has non-positive quantity %d", ErrInvalidOrder, o.ID, item.Title, item.Qty)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: order %s item %q has negative price", ErrInvalidOrder, o.ID, item.Title)
		}
	}
	if diff := math.Abs(o.TotalAmount - (o.ItemsPrice + o.ShippingPrice + o.TaxPrice)); diff > AmountTolerance {
		return fmt.Errorf("%w: order %s total %.2f does not match items+shipping+tax (off by %.2f)",
			ErrInvalidOrder, o.ID, o.TotalAmount, diff)
	}
	return nil
}

// CanCancel reports whether the cancel action applies to this order.
func (o *Order) CanCancel() bool {
	return !o.CurrentStatus.IsTerminal()
}
