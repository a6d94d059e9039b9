package output

import "storefront/internal/domain"

// OrderRepository interface - Output port
// Defines what the application needs from order persistence
type OrderRepository interface {
	// CreateOrder stores a submitted order and returns it with its generated id
	CreateOrder(request domain.SubmitOrderRequest) (*domain.OrderResponse, error)

	// GetOrders returns the orders placed by a user, newest first
	GetOrders(userID string) ([]domain.OrderResponse, error)
}
