package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultCartKeyPrefix names the storage entries carts are mirrored to
const DefaultCartKeyPrefix = "cart"

// CartService struct - Application service implementing cart use cases
// It owns one CartStore per issued cart id, loaded on first use.
type CartService struct {
	storage   output.SnapshotStorage
	products  output.ProductRepository
	keyPrefix string
	listeners []CartListener
	now       func() time.Time

	stores sync.Map // uuid.UUID -> *CartStore
	loadMu sync.Mutex
}

// NewCartService func - Creates new cart service.
// Every listener is subscribed to each cart store the service creates.
func NewCartService(storage output.SnapshotStorage, products output.ProductRepository, keyPrefix string, listeners ...CartListener) *CartService {
	if keyPrefix == "" {
		keyPrefix = DefaultCartKeyPrefix
	}
	return &CartService{
		storage:   storage,
		products:  products,
		keyPrefix: keyPrefix,
		listeners: listeners,
		now:       time.Now,
	}
}

// StorageKey returns the snapshot entry name for a cart
func (s *CartService) StorageKey(cartID uuid.UUID) string {
	return s.keyPrefix + ":" + cartID.String()
}

// CreateCart func - Use case: Issue a new cart id backed by an empty snapshot
func (s *CartService) CreateCart(ctx context.Context) (uuid.UUID, error) {
	cartID, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, err
	}
	store, err := NewCartStore(ctx, s.storage, s.StorageKey(cartID))
	if err != nil {
		logrus.Errorln(err)
		return uuid.Nil, err
	}
	if err := store.ClearCart(ctx); err != nil {
		logrus.Errorln(err)
		return uuid.Nil, err
	}

	s.loadMu.Lock()
	s.register(cartID, store)
	s.loadMu.Unlock()
	logrus.Infof("Created cart %s", cartID)
	return cartID, nil
}

// GetCart func - Use case: Read the current cart
func (s *CartService) GetCart(ctx context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error) {
	store, err := s.store(ctx, cartID)
	if err != nil {
		return nil, err
	}
	snapshot := store.Snapshot()
	return &snapshot, nil
}

// AddToCart func - Use case: Add a product variant resolved from the catalog
func (s *CartService) AddToCart(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error) {
	if request.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := s.products.GetProduct(request.ProductID)
	if err != nil {
		return nil, err
	}
	if err := checkVariant(product, request); err != nil {
		return nil, err
	}

	item := domain.LineItem{
		ProductID: request.ProductID,
		Quantity:  request.Quantity,
		Color:     request.Color,
		Size:      request.Size,
	}
	if product.Name != nil {
		item.Name = *product.Name
	}
	if product.Price != nil {
		item.UnitPrice = *product.Price
	}
	if len(product.Images) > 0 {
		item.ImageRef = product.Images[0]
	}

	store, err := s.store(ctx, request.CartID)
	if err != nil {
		return nil, err
	}
	if err := store.AddToCart(ctx, item); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	snapshot := store.Snapshot()
	return &snapshot, nil
}

// RemoveFromCart func - Use case: Remove one entry by identity
func (s *CartService) RemoveFromCart(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error) {
	store, err := s.store(ctx, request.CartID)
	if err != nil {
		return nil, err
	}
	if err := store.RemoveFromCart(ctx, identity(request)); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	snapshot := store.Snapshot()
	return &snapshot, nil
}

// UpdateQuantity func - Use case: Set the quantity of one entry
func (s *CartService) UpdateQuantity(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error) {
	store, err := s.store(ctx, request.CartID)
	if err != nil {
		return nil, err
	}
	if err := store.UpdateQuantity(ctx, identity(request), request.Quantity); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	snapshot := store.Snapshot()
	return &snapshot, nil
}

// ClearCart func - Use case: Empty the cart
func (s *CartService) ClearCart(ctx context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error) {
	store, err := s.store(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := store.ClearCart(ctx); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	snapshot := store.Snapshot()
	return &snapshot, nil
}

// CheckoutCart func - Use case: Hand the cart to place and empty it in one step
func (s *CartService) CheckoutCart(ctx context.Context, cartID uuid.UUID, place func(snapshot domain.CartSnapshot) error) (*domain.CartSnapshot, error) {
	store, err := s.store(ctx, cartID)
	if err != nil {
		return nil, err
	}
	consumed, err := store.Checkout(ctx, place)
	if err != nil {
		return nil, err
	}
	return &consumed, nil
}

// ExpireIdle forgets carts unused for longer than idle and deletes their
// snapshots. It returns the number of carts expired.
func (s *CartService) ExpireIdle(ctx context.Context, idle time.Duration) int {
	cutoff := s.now().Add(-idle)
	expired := 0
	s.stores.Range(func(key, value any) bool {
		store := value.(*CartStore)
		if store.LastUsed().After(cutoff) {
			return true
		}
		if !s.stores.CompareAndDelete(key, store) {
			return true
		}
		if err := s.storage.Delete(ctx, store.Key()); err != nil {
			logrus.Warnf("Failed to delete expired cart %s: %v", store.Key(), err)
		}
		expired++
		return true
	})
	if expired > 0 {
		logrus.Infof("Expired %d idle carts", expired)
	}
	return expired
}

// store returns the cart store for cartID, loading it from storage once.
// Ids without a stored snapshot were never issued and are not registered.
func (s *CartService) store(ctx context.Context, cartID uuid.UUID) (*CartStore, error) {
	if cartID == uuid.Nil {
		return nil, domain.ErrCartNotFound
	}
	if value, ok := s.stores.Load(cartID); ok {
		store := value.(*CartStore)
		store.Touch(s.now())
		return store, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if value, ok := s.stores.Load(cartID); ok {
		store := value.(*CartStore)
		store.Touch(s.now())
		return store, nil
	}

	store, err := OpenCartStore(ctx, s.storage, s.StorageKey(cartID))
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotFound) {
			logrus.Errorln(err)
		}
		return nil, err
	}
	s.register(cartID, store)
	return store, nil
}

// register subscribes the service listeners and publishes the store. loadMu must be held.
func (s *CartService) register(cartID uuid.UUID, store *CartStore) {
	for _, listener := range s.listeners {
		store.Subscribe(listener)
	}
	store.Touch(s.now())
	s.stores.Store(cartID, store)
}

func identity(request domain.CartItemRequest) domain.LineItem {
	return domain.LineItem{
		ProductID: request.ProductID,
		Color:     request.Color,
		Size:      request.Size,
	}
}

// checkVariant rejects colors or sizes the product does not offer.
// Products without variant lists accept any value.
func checkVariant(product *domain.ProductResponse, request domain.CartItemRequest) error {
	if request.Color != "" && len(product.Colors) > 0 && !slices.Contains(product.Colors, request.Color) {
		return fmt.Errorf("%w: color %q is not offered for product %s", domain.ErrInvalidRequest, request.Color, request.ProductID)
	}
	if request.Size != "" && len(product.Sizes) > 0 && !slices.Contains(product.Sizes, request.Size) {
		return fmt.Errorf("%w: size %q is not offered for product %s", domain.ErrInvalidRequest, request.Size, request.ProductID)
	}
	return nil
}
