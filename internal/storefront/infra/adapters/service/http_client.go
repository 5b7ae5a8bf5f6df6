package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/ports"
)

// Ensure HTTPOrderService implements the port at compile time.
var _ ports.OrderService = (*HTTPOrderService)(nil)

// HTTPOrderService talks to the remote order service over REST:
//
//	GET /orders/mine
//	GET /orders/{id}
//	PUT /orders/{id}/cancel
//
// Transport failures and non-2xx responses are translated into
// *ports.ServiceError; callers never see resty or net/http errors.
type HTTPOrderService struct {
	client *resty.Client
}

// NewHTTPOrderService builds a client for baseURL. token is the ambient
// session's bearer token; pass "" for unauthenticated development setups.
func NewHTTPOrderService(baseURL, token string) *HTTPOrderService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}
	return &HTTPOrderService{client: client}
}

func (s *HTTPOrderService) FetchMine(ctx context.Context) ([]*entity.Order, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/orders/mine")
	if err != nil {
		return nil, netErr("fetch orders", err)
	}
	if !resp.IsSuccess() {
		return nil, statusErr(resp)
	}

	var dtos []orderDTO
	if err := json.Unmarshal(resp.Body(), &dtos); err != nil {
		return nil, &ports.ServiceError{Kind: ports.KindUnknown, Message: "malformed orders response", Err: err}
	}

	orders := make([]*entity.Order, len(dtos))
	for i, d := range dtos {
		orders[i] = d.toEntity()
	}
	return orders, nil
}

func (s *HTTPOrderService) FetchOne(ctx context.Context, orderID string) (*entity.Order, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("id", orderID).
		Get("/orders/{id}")
	if err != nil {
		return nil, netErr("fetch order", err)
	}
	if !resp.IsSuccess() {
		return nil, statusErr(resp)
	}
	return decodeOrder(resp.Body())
}

func (s *HTTPOrderService) Cancel(ctx context.Context, orderID string) (*entity.Order, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("id", orderID).
		Put("/orders/{id}/cancel")
	if err != nil {
		return nil, netErr("cancel order", err)
	}
	if !resp.IsSuccess() {
		return nil, statusErr(resp)
	}
	return decodeOrder(resp.Body())
}

func decodeOrder(body []byte) (*entity.Order, error) {
	var dto orderDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, &ports.ServiceError{Kind: ports.KindUnknown, Message: "malformed order response", Err: err}
	}
	return dto.toEntity(), nil
}

func netErr(op string, err error) *ports.ServiceError {
	return &ports.ServiceError{
		Kind:    ports.KindNetworkFailure,
		Message: fmt.Sprintf("%s: remote unreachable", op),
		Err:     err,
	}
}

// statusErr maps a non-2xx response onto the error taxonomy, carrying the
// server's message when the body parses as the standard error envelope.
func statusErr(resp *resty.Response) *ports.ServiceError {
	kind := ports.KindUnknown
	switch resp.StatusCode() {
	case http.StatusNotFound:
		kind = ports.KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = ports.KindUnauthorized
	case http.StatusConflict:
		kind = ports.KindConflict
	}

	message := fmt.Sprintf("unexpected status %d", resp.StatusCode())
	var body errorDTO
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			message = body.Message
		} else if body.Error != "" {
			message = body.Error
		}
	}

	return &ports.ServiceError{Kind: kind, Message: message}
}
