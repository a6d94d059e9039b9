package http

import (
	"errors"
	"net/http"

	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// Created response
	Created = Status{Code: http.StatusCreated, Message: []string{"Created"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Data is not found"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
	// ServiceUnavailable response
	ServiceUnavailable = Status{Code: http.StatusServiceUnavailable, Message: []string{"Sorry, Service is temporarily unavailable"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`

	CurrentPage *int   `json:"current_page,omitempty"`
	PerPage     *int   `json:"per_page,omitempty"`
	TotalItem   *int64 `json:"total_item,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// withMessage returns a copy of s carrying msg
func (s Status) withMessage(msg string) Status {
	s.Message = []string{msg}
	return s
}

// errorStatus maps an application error onto the response status.
// Client errors carry the error text; server errors keep the generic message.
func errorStatus(err error) Status {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrEmptyCart):
		return BadRequest.withMessage(err.Error())
	case errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return NotFound.withMessage(err.Error())
	case errors.Is(err, domain.ErrSnapshotStorage):
		return ServiceUnavailable
	default:
		return InternalServerError
	}
}

type (
	// CartItemResponse struct - HTTP response DTO for a cart line item
	CartItemResponse struct {
		ProductID string          `json:"id"`
		Name      string          `json:"name"`
		Price     decimal.Decimal `json:"price" swaggertype:"number"`
		Image     string          `json:"image"`
		Quantity  int             `json:"quantity"`
		Color     string          `json:"color,omitempty"`
		Size      string          `json:"size,omitempty"`
		Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"number"`
	}

	// CartResponse struct - HTTP response DTO for a cart
	CartResponse struct {
		CartID    uuid.UUID          `json:"cart_id"`
		Items     []CartItemResponse `json:"items"`
		ItemCount int                `json:"item_count"`
		CartTotal decimal.Decimal    `json:"cart_total" swaggertype:"number"`
	}

	// CreateCartResponse struct - HTTP response DTO for a new cart
	CreateCartResponse struct {
		CartID uuid.UUID `json:"cart_id"`
	}
)

func toCartResponse(cartID uuid.UUID, snapshot *domain.CartSnapshot) CartResponse {
	items := make([]CartItemResponse, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.UnitPrice,
			Image:     item.ImageRef,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
			Subtotal:  item.Subtotal(),
		})
	}
	return CartResponse{
		CartID:    cartID,
		Items:     items,
		ItemCount: snapshot.ItemCount,
		CartTotal: snapshot.CartTotal,
	}
}
