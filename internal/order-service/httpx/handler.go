package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shopdeploy/storefront-orders/internal/order-service/app"
	"github.com/shopdeploy/storefront-orders/internal/pkg/cache"
)

// singleOrderTTL bounds how stale a cached single-order read may be.
const singleOrderTTL = 30 * time.Second

// Handler serves the dev order service's REST surface over an OrderBook,
// with a read-through cache on single-order lookups.
type Handler struct {
	book  *app.OrderBook
	cache cache.Cache
}

func NewHandler(book *app.OrderBook, c cache.Cache) *Handler {
	return &Handler{book: book, cache: c}
}

// ListOrders returns the authenticated customer's orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.book.List()
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = mapOrderToResponse(o)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetOrderByID returns one order, serving from cache when fresh.
func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "order_id_required", "")
		return
	}

	key := h.cache.GenerateKey("get", orderID)
	if cached, err := h.cache.Get(r.Context(), key); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cached))
		return
	}

	order, ok := h.book.Get(orderID)
	if !ok {
		writeError(w, http.StatusNotFound, "order_not_found", "")
		return
	}

	resp := mapOrderToResponse(order)
	if body, err := json.Marshal(resp); err == nil {
		if err := h.cache.Set(r.Context(), key, string(body), singleOrderTTL); err != nil {
			slog.WarnContext(r.Context(), "failed to cache order", "order_id", orderID, "error", err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// CancelOrder transitions an order to cancelled. Terminal orders yield 409
// so the storefront's conflict handling kicks in.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "order_id_required", "")
		return
	}

	order, err := h.book.Cancel(orderID)
	switch {
	case errors.Is(err, app.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "order_not_found", "")
		return
	case errors.Is(err, app.ErrAlreadyFinal):
		writeError(w, http.StatusConflict, "order_finalized", "order is already finalized")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "cancel_failed", err.Error())
		return
	}

	// Overwrite the cached read so a refetch inside the TTL window sees the
	// cancelled state.
	resp := mapOrderToResponse(order)
	if body, mErr := json.Marshal(resp); mErr == nil {
		key := h.cache.GenerateKey("get", orderID)
		if cErr := h.cache.Set(r.Context(), key, string(body), singleOrderTTL); cErr != nil {
			slog.WarnContext(r.Context(), "failed to refresh cached order", "order_id", orderID, "error", cErr)
		}
	}

	slog.InfoContext(r.Context(), "order cancelled", "order_id", orderID)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
