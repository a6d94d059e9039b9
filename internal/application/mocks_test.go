package application

import (
	"context"
	"sync"

	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mock implementations for testing

// MockSnapshotStorage implements output.SnapshotStorage for testing
type MockSnapshotStorage struct {
	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte) error
	DeleteFunc func(ctx context.Context, key string) error

	mu      sync.Mutex
	entries map[string][]byte

	// Track all set calls
	SetCalls []string
}

func NewMockSnapshotStorage() *MockSnapshotStorage {
	return &MockSnapshotStorage{entries: make(map[string][]byte)}
}

func (m *MockSnapshotStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (m *MockSnapshotStorage) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.SetCalls = append(m.SetCalls, key)
	m.mu.Unlock()
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockSnapshotStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Raw returns the stored entry without going through GetFunc
func (m *MockSnapshotStorage) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	return string(value), ok
}

// MockProductRepository implements output.ProductRepository for testing
type MockProductRepository struct {
	CreateProductFunc func(request domain.ProductRequest) (*domain.ProductResponse, error)
	GetProductFunc    func(id string) (*domain.ProductResponse, error)
	GetProductsFunc   func(condition domain.QueryProductRequest) (*domain.ProductListResponse, error)

	// Captured values for assertions
	LastCondition *domain.QueryProductRequest

	Products map[string]*domain.ProductResponse
}

func (m *MockProductRepository) CreateProduct(request domain.ProductRequest) (*domain.ProductResponse, error) {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(request)
	}
	return &domain.ProductResponse{ID: request.ID, Name: request.Name, Price: request.Price}, nil
}

func (m *MockProductRepository) GetProduct(id string) (*domain.ProductResponse, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(id)
	}
	if product, ok := m.Products[id]; ok {
		return product, nil
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductRepository) GetProducts(condition domain.QueryProductRequest) (*domain.ProductListResponse, error) {
	m.LastCondition = &condition
	if m.GetProductsFunc != nil {
		return m.GetProductsFunc(condition)
	}
	return &domain.ProductListResponse{Products: []domain.ProductResponse{}}, nil
}

// MockOrderRepository implements output.OrderRepository for testing
type MockOrderRepository struct {
	CreateOrderFunc func(request domain.SubmitOrderRequest) (*domain.OrderResponse, error)
	GetOrdersFunc   func(userID string) ([]domain.OrderResponse, error)

	// Captured values for assertions
	LastSubmitted *domain.SubmitOrderRequest
}

func (m *MockOrderRepository) CreateOrder(request domain.SubmitOrderRequest) (*domain.OrderResponse, error) {
	m.LastSubmitted = &request
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(request)
	}
	id := uuid.New()
	return &domain.OrderResponse{ID: &id, UserID: &request.UserID, Items: request.Items, Total: &request.Total}, nil
}

func (m *MockOrderRepository) GetOrders(userID string) ([]domain.OrderResponse, error) {
	if m.GetOrdersFunc != nil {
		return m.GetOrdersFunc(userID)
	}
	return []domain.OrderResponse{}, nil
}

// MockOrderNotifier implements output.OrderNotifier for testing
type MockOrderNotifier struct {
	NotifyFunc func(notification domain.OrderNotification) error

	Notifications []domain.OrderNotification
}

func (m *MockOrderNotifier) NotifyOrderPlaced(notification domain.OrderNotification) error {
	m.Notifications = append(m.Notifications, notification)
	if m.NotifyFunc != nil {
		return m.NotifyFunc(notification)
	}
	return nil
}

// Test helper to create a catalog product
func testProduct(id, name string, price string, colors, sizes []string) *domain.ProductResponse {
	p := decimal.RequireFromString(price)
	return &domain.ProductResponse{
		ID:     &id,
		Name:   &name,
		Price:  &p,
		Images: []string{"https://img.example.com/" + id + "-1.jpg", "https://img.example.com/" + id + "-2.jpg"},
		Colors: colors,
		Sizes:  sizes,
	}
}

// Test helper to create a line item
func testItem(id, color, size string, price int64, qty int) domain.LineItem {
	return domain.LineItem{
		ProductID: id,
		Name:      "product " + id,
		UnitPrice: decimal.NewFromInt(price),
		ImageRef:  id + ".jpg",
		Quantity:  qty,
		Color:     color,
		Size:      size,
	}
}
