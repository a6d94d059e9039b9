package http

import "github.com/shopspring/decimal"

type (
	// ProductRequest struct - HTTP request DTO
	ProductRequest struct {
		ID               *string          `json:"id" validate:"omitempty,max=64"`
		Name             *string          `json:"name" validate:"required,notblank,max=200"`
		Brand            *string          `json:"brand" validate:"omitempty,max=100"`
		Description      *string          `json:"description" validate:"omitempty"`
		Price            *decimal.Decimal `json:"price" validate:"required,decimalgte0" swaggertype:"number"`
		OriginalPrice    *decimal.Decimal `json:"original_price" validate:"omitempty,decimalgte0" swaggertype:"number"`
		Images           []string         `json:"images" validate:"omitempty,dive,notblank"`
		Colors           []string         `json:"colors" validate:"omitempty,dive,notblank"`
		Sizes            []string         `json:"sizes" validate:"omitempty,dive,notblank"`
		Rating           *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
		ReviewCount      *int             `json:"review_count" validate:"omitempty,gte=0"`
		IsNew            *bool            `json:"is_new"`
		IsSale           *bool            `json:"is_sale"`
		IsLimitedEdition *bool            `json:"is_limited_edition"`
	}

	// QueryProductRequest struct - HTTP query request DTO
	QueryProductRequest struct {
		Name  *string `json:"name" form:"name" query:"name"`
		Brand *string `json:"brand" form:"brand" query:"brand"`

		Limit   *int    `json:"limit,omitempty" validate:"omitempty,gte=1,lte=100" form:"limit" query:"limit"`
		Page    *int    `json:"page,omitempty" validate:"omitempty,gte=1" form:"page" query:"page"`
		OrderBy *string `json:"order_by,omitempty" form:"order_by" query:"order_by"`
		Asc     *bool   `json:"asc,omitempty" form:"asc" query:"asc"`
	}

	// CartItemRequest struct - HTTP request DTO addressing one cart entry.
	// Quantity is the amount to add for POST and the new quantity for PUT.
	CartItemRequest struct {
		ProductID string `json:"product_id" validate:"required,notblank,max=64"`
		Color     string `json:"color" validate:"omitempty,max=50"`
		Size      string `json:"size" validate:"omitempty,max=50"`
		Quantity  int    `json:"quantity"`
	}

	// CheckoutRequest struct - HTTP request DTO for placing an order
	CheckoutRequest struct {
		UserID  string `json:"user_id" validate:"required,notblank,max=64"`
		Name    string `json:"name" validate:"required,notblank,max=200"`
		Address string `json:"address" validate:"required,notblank"`
		Phone   string `json:"phone" validate:"required,notblank,max=32"`
	}
)
