package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// ProductRequest struct - Domain request DTO
	ProductRequest struct {
		ID               *string
		Name             *string
		Brand            *string
		Description      *string
		Price            *decimal.Decimal
		OriginalPrice    *decimal.Decimal
		Images           []string
		Colors           []string
		Sizes            []string
		Rating           *float64
		ReviewCount      *int
		IsNew            *bool
		IsSale           *bool
		IsLimitedEdition *bool
	}

	// QueryProductRequest struct - Domain query request DTO
	QueryProductRequest struct {
		ID    *string
		Name  *string
		Brand *string

		Limit      *int
		Page       *int
		OrderBy    *string
		Asc        *bool
		Pagination *Pagination
		SortMethod *SortMethod
	}

	// Pagination struct
	Pagination struct {
		Limit  int
		Offset int
	}

	// SortMethod struct
	SortMethod struct {
		Asc     bool
		OrderBy string
	}

	// ProductResponse struct - Domain response DTO
	ProductResponse struct {
		ID               *string          `json:"id,omitempty"`
		Name             *string          `json:"name,omitempty"`
		Brand            *string          `json:"brand,omitempty"`
		Description      *string          `json:"description,omitempty"`
		Price            *decimal.Decimal `json:"price,omitempty"`
		OriginalPrice    *decimal.Decimal `json:"original_price,omitempty"`
		Images           []string         `json:"images"`
		Colors           []string         `json:"colors"`
		Sizes            []string         `json:"sizes"`
		Rating           *float64         `json:"rating,omitempty"`
		ReviewCount      *int             `json:"review_count,omitempty"`
		IsNew            *bool            `json:"is_new,omitempty"`
		IsSale           *bool            `json:"is_sale,omitempty"`
		IsLimitedEdition *bool            `json:"is_limited_edition,omitempty"`
		CreatedAt        *time.Time       `json:"created_at,omitempty"`
		UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
	}

	// ProductListResponse struct - Domain list response DTO
	ProductListResponse struct {
		Products    []ProductResponse
		CurrentPage *int
		PerPage     *int
		TotalItem   *int64
	}

	// CartItemRequest struct - Domain request DTO addressing one cart entry
	CartItemRequest struct {
		CartID    uuid.UUID
		ProductID string
		Color     string
		Size      string
		Quantity  int
	}

	// CheckoutQuote struct - Price breakdown shown before an order is placed
	CheckoutQuote struct {
		ItemCount int             `json:"item_count"`
		Subtotal  decimal.Decimal `json:"subtotal"`
		Shipping  decimal.Decimal `json:"shipping"`
		Tax       decimal.Decimal `json:"tax"`
		Total     decimal.Decimal `json:"total"`
	}

	// CheckoutRequest struct - Domain request DTO for placing an order
	CheckoutRequest struct {
		CartID  uuid.UUID
		UserID  string
		Name    string
		Address string
		Phone   string
	}

	// CheckoutResponse struct - Domain response DTO for a placed order
	CheckoutResponse struct {
		OrderID uuid.UUID       `json:"order_id"`
		Total   decimal.Decimal `json:"total"`
		Message string          `json:"message"`
	}

	// SubmitOrderRequest struct - Order record handed to the repository
	SubmitOrderRequest struct {
		UserID  string
		Name    string
		Items   []LineItem
		Address string
		Phone   string
		Total   decimal.Decimal
	}

	// OrderResponse struct - Domain response DTO for order history
	OrderResponse struct {
		ID                *uuid.UUID       `json:"id,omitempty"`
		UserID            *string          `json:"user_id,omitempty"`
		Items             []LineItem       `json:"items"`
		Address           *string          `json:"address,omitempty"`
		Phone             *string          `json:"phone,omitempty"`
		Total             *decimal.Decimal `json:"total,omitempty"`
		CreatedTime       *time.Time       `json:"created_time,omitempty"`
		EstimatedDelivery *string          `json:"estimated_delivery,omitempty"`
	}

	// OrderNotification struct - Message sent to the shop when an order is placed
	OrderNotification struct {
		OrderID   uuid.UUID
		UserID    string
		Name      string
		Address   string
		ItemCount int
		Total     decimal.Decimal
	}
)
