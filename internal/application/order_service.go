package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const orderPlacedMessage = "Order placed successfully."

// CheckoutPricing holds the shipping and tax rules used for quotes
type CheckoutPricing struct {
	ShippingFee  decimal.Decimal
	TaxRate      decimal.Decimal
	DeliveryDays int
}

// DefaultCheckoutPricing returns a flat 50 shipping fee, 10% tax and a four day delivery estimate
func DefaultCheckoutPricing() CheckoutPricing {
	return CheckoutPricing{
		ShippingFee:  decimal.NewFromInt(50),
		TaxRate:      decimal.NewFromFloat(0.1),
		DeliveryDays: domain.DefaultDeliveryDays,
	}
}

// OrderService struct - Application service implementing checkout and order history
type OrderService struct {
	carts    input.CartService
	orders   output.OrderRepository
	notifier output.OrderNotifier
	pricing  CheckoutPricing
}

// NewOrderService func - Creates new order service. notifier may be nil.
func NewOrderService(carts input.CartService, orders output.OrderRepository, notifier output.OrderNotifier, pricing CheckoutPricing) *OrderService {
	return &OrderService{
		carts:    carts,
		orders:   orders,
		notifier: notifier,
		pricing:  pricing,
	}
}

// Quote func - Use case: Price the cart with shipping and tax
func (s *OrderService) Quote(ctx context.Context, cartID uuid.UUID) (*domain.CheckoutQuote, error) {
	snapshot, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.quote(snapshot), nil
}

func (s *OrderService) quote(snapshot *domain.CartSnapshot) *domain.CheckoutQuote {
	shipping := decimal.Zero
	if snapshot.ItemCount > 0 {
		shipping = s.pricing.ShippingFee
	}
	tax := snapshot.CartTotal.Mul(s.pricing.TaxRate)
	return &domain.CheckoutQuote{
		ItemCount: snapshot.ItemCount,
		Subtotal:  snapshot.CartTotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     snapshot.CartTotal.Add(shipping).Add(tax),
	}
}

// Checkout func - Use case: Submit the cart as an order and empty the cart.
// The cart stays locked while the order is written, so the order holds
// exactly the items the cart is cleared of.
func (s *OrderService) Checkout(ctx context.Context, request domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	if err := validateCheckout(request); err != nil {
		return nil, err
	}

	var orderID uuid.UUID
	snapshot, err := s.carts.CheckoutCart(ctx, request.CartID, func(snapshot domain.CartSnapshot) error {
		order, err := s.orders.CreateOrder(domain.SubmitOrderRequest{
			UserID:  request.UserID,
			Name:    strings.TrimSpace(request.Name),
			Items:   snapshot.Items,
			Address: strings.TrimSpace(request.Address),
			Phone:   strings.TrimSpace(request.Phone),
			Total:   snapshot.CartTotal,
		})
		if err != nil {
			return err
		}
		if order == nil || order.ID == nil {
			return fmt.Errorf("order repository returned no order id for user %s", request.UserID)
		}
		orderID = *order.ID
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyCart) && !errors.Is(err, domain.ErrCartNotFound) {
			logrus.Errorln(err)
		}
		return nil, err
	}
	logrus.Infof("Order %s placed by user %s: %d items, total %s", orderID, request.UserID, snapshot.ItemCount, snapshot.CartTotal)

	s.notify(domain.OrderNotification{
		OrderID:   orderID,
		UserID:    request.UserID,
		Name:      strings.TrimSpace(request.Name),
		Address:   strings.TrimSpace(request.Address),
		ItemCount: snapshot.ItemCount,
		Total:     snapshot.CartTotal,
	})

	return &domain.CheckoutResponse{
		OrderID: orderID,
		Total:   snapshot.CartTotal,
		Message: orderPlacedMessage,
	}, nil
}

// GetOrders func - Use case: List a user's orders with delivery estimates
func (s *OrderService) GetOrders(userID string) ([]domain.OrderResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidRequest)
	}
	orders, err := s.orders.GetOrders(userID)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	for i := range orders {
		if orders[i].CreatedTime == nil {
			continue
		}
		estimate := domain.EstimatedDelivery(*orders[i].CreatedTime, s.pricing.DeliveryDays).Format(domain.OnlyDate)
		orders[i].EstimatedDelivery = &estimate
	}
	return orders, nil
}

func (s *OrderService) notify(notification domain.OrderNotification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyOrderPlaced(notification); err != nil {
		logrus.Warnf("Failed to send order notification for %s: %v", notification.OrderID, err)
	}
}

func validateCheckout(request domain.CheckoutRequest) error {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(request.UserID) == "" {
		missing = append(missing, "user_id")
	}
	if strings.TrimSpace(request.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(request.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(request.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", domain.ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return nil
}
