package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
)

func TestPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "₹0.00", Price(0))
	assert.Equal(t, "₹500.00", Price(500))
	assert.Equal(t, "₹1,180.00", Price(1180))
	assert.Equal(t, "₹1,23,456.78", Price(123456.78))
	assert.Equal(t, "₹12,34,567.00", Price(1234567))
	assert.Equal(t, "₹99.90", Price(99.9))
	assert.Equal(t, "-₹250.50", Price(-250.5))
}

func TestPriceDegradesOnMalformedInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "₹0.00", Price(math.NaN()))
	assert.Equal(t, "₹0.00", Price(math.Inf(1)))
	assert.Equal(t, "₹0.00", Price(math.Inf(-1)))
}

func TestDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, time.March, 7, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "07 Mar 2026, 03:04 PM", Date(ts))
	assert.Equal(t, "N/A", Date(time.Time{}))
}

func TestShortRef(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "89ABCDEF", ShortRef("0123456789abcdef"))
	assert.Equal(t, "ORD1", ShortRef("ord1"))
	assert.Equal(t, "", ShortRef(""))
}

func TestStatusColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "yellow", StatusColor(entity.StatusPending))
	assert.Equal(t, "green", StatusColor(entity.StatusDelivered))
	assert.Equal(t, "red", StatusColor(entity.StatusCancelled))
	assert.Equal(t, "gray", StatusColor("awaiting_pickup"))
}

func TestPaymentStatusColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "green", PaymentStatusColor(entity.PaymentPaid))
	assert.Equal(t, "red", PaymentStatusColor(entity.PaymentFailed))
	// Unknown payment states are styled as pending.
	assert.Equal(t, "yellow", PaymentStatusColor("refunding"))
}
