package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
)

// SampleOrders builds the data set the dev server boots with: one order per
// interesting display state, amounts consistent with the 18% GST breakdown.
func SampleOrders() []*entity.Order {
	address := entity.Address{
		FullName:     "Asha Raman",
		AddressLine1: "14 MG Road",
		AddressLine2: "Flat 3B",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		Phone:        "+91 98450 12345",
	}
	now := time.Now().UTC()

	pending := &entity.Order{
		ID: uuid.NewString(),
		Items: []entity.OrderItem{
			{ID: uuid.NewString(), Title: "Wireless Mouse", Qty: 2, Price: 500},
		},
		ItemsPrice:      1000,
		ShippingPrice:   0,
		TaxPrice:        180,
		TotalAmount:     1180,
		CurrentStatus:   entity.StatusPending,
		PaymentMethod:   "upi",
		PaymentStatus:   entity.PaymentPending,
		ShippingAddress: address,
		StatusHistory: []entity.StatusEvent{
			{Status: entity.StatusPending, Note: "Order placed", Timestamp: now.Add(-2 * time.Hour)},
		},
		CreatedAt: now.Add(-2 * time.Hour),
	}

	shipped := &entity.Order{
		ID: uuid.NewString(),
		Items: []entity.OrderItem{
			{ID: uuid.NewString(), Title: "Mechanical Keyboard", Qty: 1, Price: 4200},
			{ID: uuid.NewString(), Title: "Keycap Set", Qty: 1, Price: 800},
		},
		ItemsPrice:      5000,
		ShippingPrice:   100,
		TaxPrice:        900,
		TotalAmount:     6000,
		CurrentStatus:   entity.StatusShipped,
		PaymentMethod:   "card",
		PaymentStatus:   entity.PaymentPaid,
		PaymentID:       "pay_" + uuid.NewString()[:8],
		ShippingAddress: address,
		StatusHistory: []entity.StatusEvent{
			{Status: entity.StatusPending, Note: "Order placed", Timestamp: now.Add(-72 * time.Hour)},
			{Status: entity.StatusProcessing, Timestamp: now.Add(-48 * time.Hour)},
			{Status: entity.StatusShipped, Note: "Handed to courier", Timestamp: now.Add(-24 * time.Hour)},
		},
		CreatedAt: now.Add(-72 * time.Hour),
	}

	delivered := &entity.Order{
		ID: uuid.NewString(),
		Items: []entity.OrderItem{
			{ID: uuid.NewString(), Title: "USB-C Cable", Qty: 3, Price: 300},
		},
		ItemsPrice:      900,
		ShippingPrice:   0,
		TaxPrice:        162,
		TotalAmount:     1062,
		CurrentStatus:   entity.StatusDelivered,
		PaymentMethod:   "cod",
		PaymentStatus:   entity.PaymentPaid,
		ShippingAddress: address,
		StatusHistory: []entity.StatusEvent{
			{Status: entity.StatusPending, Note: "Order placed", Timestamp: now.Add(-240 * time.Hour)},
			{Status: entity.StatusShipped, Timestamp: now.Add(-192 * time.Hour)},
			{Status: entity.StatusDelivered, Note: "Left at door", Timestamp: now.Add(-168 * time.Hour)},
		},
		CreatedAt: now.Add(-240 * time.Hour),
	}

	return []*entity.Order{pending, shipped, delivered}
}
