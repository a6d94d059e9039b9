package input

import (
	"context"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

// OrderService interface - Input port (use case)
// Defines checkout and order history
type OrderService interface {
	// Quote prices the cart with shipping and tax for display before checkout
	Quote(ctx context.Context, cartID uuid.UUID) (*domain.CheckoutQuote, error)

	// Checkout submits the cart as an order and clears the cart on success
	Checkout(ctx context.Context, request domain.CheckoutRequest) (*domain.CheckoutResponse, error)

	// GetOrders lists the orders of a user
	GetOrders(userID string) ([]domain.OrderResponse, error)
}
