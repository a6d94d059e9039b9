package output

import "storefront/internal/domain"

// OrderNotifier interface - Output port
// Defines how the shop is told about newly placed orders
type OrderNotifier interface {
	// NotifyOrderPlaced sends a notification for a confirmed order
	NotifyOrderPlaced(notification domain.OrderNotification) error
}
