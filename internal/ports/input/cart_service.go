package input

import (
	"context"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

// CartService interface - Input port (use case)
// Defines what the application can do with shopping carts
type CartService interface {
	CreateCart(ctx context.Context) (uuid.UUID, error)
	GetCart(ctx context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error)
	AddToCart(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error)
	RemoveFromCart(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error)
	UpdateQuantity(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error)
	ClearCart(ctx context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error)
	CheckoutCart(ctx context.Context, cartID uuid.UUID, place func(snapshot domain.CartSnapshot) error) (*domain.CartSnapshot, error)
}
