package service

import (
	"time"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
)

// Wire types for the remote order API. The backend is Mongo-flavoured:
// ids travel as "_id" and everything else is camelCase.

type orderDTO struct {
	ID              string           `json:"_id"`
	Items           []orderItemDTO   `json:"items"`
	ItemsPrice      float64          `json:"itemsPrice"`
	ShippingPrice   float64          `json:"shippingPrice"`
	TaxPrice        float64          `json:"taxPrice"`
	TotalAmount     float64          `json:"totalAmount"`
	CurrentStatus   string           `json:"currentStatus"`
	PaymentMethod   string           `json:"paymentMethod"`
	PaymentStatus   string           `json:"paymentStatus"`
	PaymentID       string           `json:"paymentId,omitempty"`
	ShippingAddress addressDTO       `json:"shippingAddress"`
	StatusHistory   []statusEventDTO `json:"statusHistory"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type orderItemDTO struct {
	ID    string  `json:"_id"`
	Title string  `json:"title"`
	Image string  `json:"image,omitempty"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type addressDTO struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country,omitempty"`
	Phone        string `json:"phone"`
}

type statusEventDTO struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type errorDTO struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (d orderDTO) toEntity() *entity.Order {
	items := make([]entity.OrderItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = entity.OrderItem{
			ID:    it.ID,
			Title: it.Title,
			Image: it.Image,
			Qty:   it.Qty,
			Price: it.Price,
		}
	}
	history := make([]entity.StatusEvent, len(d.StatusHistory))
	for i, ev := range d.StatusHistory {
		history[i] = entity.StatusEvent{
			Status:    entity.OrderStatus(ev.Status),
			Note:      ev.Note,
			Timestamp: ev.Timestamp,
		}
	}
	status := d.CurrentStatus
	if status == "" {
		status = string(entity.StatusPending)
	}
	payment := d.PaymentStatus
	if payment == "" {
		payment = string(entity.PaymentPending)
	}
	return &entity.Order{
		ID:            d.ID,
		Items:         items,
		ItemsPrice:    d.ItemsPrice,
		ShippingPrice: d.ShippingPrice,
		TaxPrice:      d.TaxPrice,
		TotalAmount:   d.TotalAmount,
		CurrentStatus: entity.OrderStatus(status),
		PaymentMethod: d.PaymentMethod,
		PaymentStatus: entity.PaymentStatus(payment),
		PaymentID:     d.PaymentID,
		ShippingAddress: entity.Address{
			FullName:     d.ShippingAddress.FullName,
			AddressLine1: d.ShippingAddress.AddressLine1,
			AddressLine2: d.ShippingAddress.AddressLine2,
			City:         d.ShippingAddress.City,
			State:        d.ShippingAddress.State,
			Pincode:      d.ShippingAddress.Pincode,
			Country:      d.ShippingAddress.Country,
			Phone:        d.ShippingAddress.Phone,
		},
		StatusHistory: history,
		CreatedAt:     d.CreatedAt,
	}
}
