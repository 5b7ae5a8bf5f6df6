package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/orders/mine", handler.ListOrders)
	r.Get("/orders/{id}", handler.GetOrderByID)
	r.Put("/orders/{id}/cancel", handler.CancelOrder)
	return r
}
