package http

import (
	"context"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

// Mock implementations for testing

// MockCatalogService implements input.CatalogService for testing
type MockCatalogService struct {
	CreateProductFunc func(request domain.ProductRequest) (*domain.ProductResponse, error)
	GetProductFunc    func(id string) (*domain.ProductResponse, error)
	GetProductsFunc   func(condition domain.QueryProductRequest) (*domain.ProductListResponse, error)
}

func (m *MockCatalogService) CreateProduct(request domain.ProductRequest) (*domain.ProductResponse, error) {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(request)
	}
	return &domain.ProductResponse{ID: request.ID, Name: request.Name, Price: request.Price}, nil
}

func (m *MockCatalogService) GetProduct(id string) (*domain.ProductResponse, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(id)
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockCatalogService) GetProducts(condition domain.QueryProductRequest) (*domain.ProductListResponse, error) {
	if m.GetProductsFunc != nil {
		return m.GetProductsFunc(condition)
	}
	return &domain.ProductListResponse{}, nil
}

// MockCartService implements input.CartService for testing
type MockCartService struct {
	CreateCartFunc     func(ctx context.Context) (uuid.UUID, error)
	GetCartFunc        func(ctx context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error)
	AddToCartFunc      func(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error)
	RemoveFromCartFunc func(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error)
	UpdateQuantityFunc func(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error)
	ClearCartFunc      func(ctx context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error)
	CheckoutCartFunc   func(ctx context.Context, cartID uuid.UUID, place func(snapshot domain.CartSnapshot) error) (*domain.CartSnapshot, error)

	// Captured values for assertions
	LastRequest *domain.CartItemRequest
}

func (m *MockCartService) CreateCart(ctx context.Context) (uuid.UUID, error) {
	if m.CreateCartFunc != nil {
		return m.CreateCartFunc(ctx)
	}
	return uuid.New(), nil
}

func (m *MockCartService) GetCart(ctx context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error) {
	if m.GetCartFunc != nil {
		return m.GetCartFunc(ctx, cartID)
	}
	return emptySnapshot(), nil
}

func (m *MockCartService) AddToCart(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error) {
	m.LastRequest = &request
	if m.AddToCartFunc != nil {
		return m.AddToCartFunc(ctx, request)
	}
	return emptySnapshot(), nil
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error) {
	m.LastRequest = &request
	if m.RemoveFromCartFunc != nil {
		return m.RemoveFromCartFunc(ctx, request)
	}
	return emptySnapshot(), nil
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error) {
	m.LastRequest = &request
	if m.UpdateQuantityFunc != nil {
		return m.UpdateQuantityFunc(ctx, request)
	}
	return emptySnapshot(), nil
}

func (m *MockCartService) ClearCart(ctx context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error) {
	if m.ClearCartFunc != nil {
		return m.ClearCartFunc(ctx, cartID)
	}
	return emptySnapshot(), nil
}

func (m *MockCartService) CheckoutCart(ctx context.Context, cartID uuid.UUID, place func(snapshot domain.CartSnapshot) error) (*domain.CartSnapshot, error) {
	if m.CheckoutCartFunc != nil {
		return m.CheckoutCartFunc(ctx, cartID, place)
	}
	return nil, domain.ErrEmptyCart
}

// MockOrderService implements input.OrderService for testing
type MockOrderService struct {
	QuoteFunc     func(ctx context.Context, cartID uuid.UUID) (*domain.CheckoutQuote, error)
	CheckoutFunc  func(ctx context.Context, request domain.CheckoutRequest) (*domain.CheckoutResponse, error)
	GetOrdersFunc func(userID string) ([]domain.OrderResponse, error)

	CheckoutCalls int
}

func (m *MockOrderService) Quote(ctx context.Context, cartID uuid.UUID) (*domain.CheckoutQuote, error) {
	if m.QuoteFunc != nil {
		return m.QuoteFunc(ctx, cartID)
	}
	return &domain.CheckoutQuote{}, nil
}

func (m *MockOrderService) Checkout(ctx context.Context, request domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	m.CheckoutCalls++
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(ctx, request)
	}
	return &domain.CheckoutResponse{OrderID: uuid.New(), Message: "Order placed successfully."}, nil
}

func (m *MockOrderService) GetOrders(userID string) ([]domain.OrderResponse, error) {
	if m.GetOrdersFunc != nil {
		return m.GetOrdersFunc(userID)
	}
	return nil, nil
}

func emptySnapshot() *domain.CartSnapshot {
	snapshot := domain.NewCart(nil).Snapshot()
	return &snapshot
}
