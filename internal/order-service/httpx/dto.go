package httpx

import (
	"time"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
)

// Wire format: Mongo-flavoured ids ("_id"), camelCase elsewhere. Must stay
// in lockstep with the storefront's service adapter.

type OrderResponse struct {
	ID              string                `json:"_id"`
	Items           []OrderItemResponse   `json:"items"`
	ItemsPrice      float64               `json:"itemsPrice"`
	ShippingPrice   float64               `json:"shippingPrice"`
	TaxPrice        float64               `json:"taxPrice"`
	TotalAmount     float64               `json:"totalAmount"`
	CurrentStatus   string                `json:"currentStatus"`
	PaymentMethod   string                `json:"paymentMethod"`
	PaymentStatus   string                `json:"paymentStatus"`
	PaymentID       string                `json:"paymentId,omitempty"`
	ShippingAddress AddressResponse       `json:"shippingAddress"`
	StatusHistory   []StatusEventResponse `json:"statusHistory"`
	CreatedAt       time.Time             `json:"createdAt"`
}

type OrderItemResponse struct {
	ID    string  `json:"_id"`
	Title string  `json:"title"`
	Image string  `json:"image,omitempty"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type AddressResponse struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country,omitempty"`
	Phone        string `json:"phone"`
}

type StatusEventResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func mapOrderToResponse(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:    it.ID,
			Title: it.Title,
			Image: it.Image,
			Qty:   it.Qty,
			Price: it.Price,
		}
	}
	history := make([]StatusEventResponse, len(o.StatusHistory))
	for i, ev := range o.StatusHistory {
		history[i] = StatusEventResponse{
			Status:    string(ev.Status),
			Note:      ev.Note,
			Timestamp: ev.Timestamp,
		}
	}
	return OrderResponse{
		ID:            o.ID,
		Items:         items,
		ItemsPrice:    o.ItemsPrice,
		ShippingPrice: o.ShippingPrice,
		TaxPrice:      o.TaxPrice,
		TotalAmount:   o.TotalAmount,
		CurrentStatus: string(o.CurrentStatus),
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: string(o.PaymentStatus),
		PaymentID:     o.PaymentID,
		ShippingAddress: AddressResponse{
			FullName:     o.ShippingAddress.FullName,
			AddressLine1: o.ShippingAddress.AddressLine1,
			AddressLine2: o.ShippingAddress.AddressLine2,
			City:         o.ShippingAddress.City,
			State:        o.ShippingAddress.State,
			Pincode:      o.ShippingAddress.Pincode,
			Country:      o.ShippingAddress.Country,
			Phone:        o.ShippingAddress.Phone,
		},
		StatusHistory: history,
		CreatedAt:     o.CreatedAt,
	}
}
