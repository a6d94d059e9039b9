package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CartOperation names the mutation that produced a CartEvent
type CartOperation string

const (
	// CartOperationAdd const
	CartOperationAdd CartOperation = "add"
	// CartOperationRemove const
	CartOperationRemove CartOperation = "remove"
	// CartOperationUpdate const
	CartOperationUpdate CartOperation = "update"
	// CartOperationClear const
	CartOperationClear CartOperation = "clear"
	// CartOperationCheckout const
	CartOperationCheckout CartOperation = "checkout"
)

// CartEvent is delivered to listeners after every mutation.
// Version increases by one per mutation of the store.
type CartEvent struct {
	Key       string
	Operation CartOperation
	Version   uint64
	Snapshot  domain.CartSnapshot
}

// CartListener receives cart events. Listeners run on the mutating goroutine
// after the store lock has been released, one event at a time in Version
// order. A listener must not mutate the store it observes.
type CartListener func(event CartEvent)

// CartStore struct - Single source of truth for one cart
// Every mutation is applied in memory, mirrored to the snapshot storage under
// key and then published to the registered listeners.
type CartStore struct {
	mu        sync.Mutex
	key       string
	storage   output.SnapshotStorage
	cart      *domain.Cart
	listeners map[int]CartListener
	nextID    int
	version   uint64

	notifyMu   sync.Mutex
	notifyCond *sync.Cond
	delivered  uint64

	lastUsed atomic.Int64
}

// NewCartStore loads the cart stored under key. A missing or unparsable entry
// yields an empty cart; only a failing storage read is returned as an error.
func NewCartStore(ctx context.Context, storage output.SnapshotStorage, key string) (*CartStore, error) {
	store, _, err := loadCartStore(ctx, storage, key)
	return store, err
}

// OpenCartStore loads an existing cart. A key with no stored entry is
// reported as domain.ErrCartNotFound.
func OpenCartStore(ctx context.Context, storage output.SnapshotStorage, key string) (*CartStore, error) {
	store, found, err := loadCartStore(ctx, storage, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", domain.ErrCartNotFound, key)
	}
	return store, nil
}

func loadCartStore(ctx context.Context, storage output.SnapshotStorage, key string) (*CartStore, bool, error) {
	data, err := storage.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: load %s: %v", domain.ErrSnapshotStorage, key, err)
	}

	cart := domain.NewCart(nil)
	if data != nil {
		decoded, err := domain.DecodeCart(data)
		if err != nil {
			logrus.Warnf("Discarding unreadable cart snapshot %s: %v", key, err)
		} else {
			cart = decoded
		}
	}

	store := &CartStore{
		key:       key,
		storage:   storage,
		cart:      cart,
		listeners: make(map[int]CartListener),
	}
	store.notifyCond = sync.NewCond(&store.notifyMu)
	store.Touch(time.Now())
	return store, data != nil, nil
}

// Key returns the storage entry name of the cart
func (s *CartStore) Key() string {
	return s.key
}

// Touch records t as the last time the cart was used
func (s *CartStore) Touch(t time.Time) {
	s.lastUsed.Store(t.UnixNano())
}

// LastUsed returns the time recorded by the latest Touch
func (s *CartStore) LastUsed() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}

// Subscribe registers a listener and returns a func that removes it
func (s *CartStore) Subscribe(listener CartListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// AddToCart merges item into the cart. Quantities below one are rejected
// with domain.ErrInvalidQuantity and leave the cart untouched.
func (s *CartStore) AddToCart(ctx context.Context, item domain.LineItem) error {
	return s.mutate(ctx, CartOperationAdd, func(cart *domain.Cart) (bool, error) {
		if err := cart.Add(item); err != nil {
			return false, err
		}
		return true, nil
	})
}

// RemoveFromCart removes the entry with the item's identity. Missing entries are a no-op.
func (s *CartStore) RemoveFromCart(ctx context.Context, item domain.LineItem) error {
	return s.mutate(ctx, CartOperationRemove, func(cart *domain.Cart) (bool, error) {
		return cart.Remove(item), nil
	})
}

// UpdateQuantity sets the quantity of the matching entry; quantity <= 0 removes it.
func (s *CartStore) UpdateQuantity(ctx context.Context, item domain.LineItem, quantity int) error {
	return s.mutate(ctx, CartOperationUpdate, func(cart *domain.Cart) (bool, error) {
		return cart.UpdateQuantity(item, quantity), nil
	})
}

// ClearCart empties the cart and persists the empty state
func (s *CartStore) ClearCart(ctx context.Context) error {
	return s.mutate(ctx, CartOperationClear, func(cart *domain.Cart) (bool, error) {
		cart.Clear()
		return true, nil
	})
}

// Checkout hands the current items to place and empties the cart once place
// succeeds. The store stays locked throughout, so nothing added meanwhile is
// lost and a second checkout finds the cart empty. An empty cart is reported
// as domain.ErrEmptyCart; a failing place leaves the cart untouched.
func (s *CartStore) Checkout(ctx context.Context, place func(snapshot domain.CartSnapshot) error) (domain.CartSnapshot, error) {
	var consumed domain.CartSnapshot
	err := s.mutate(ctx, CartOperationCheckout, func(cart *domain.Cart) (bool, error) {
		if cart.Len() == 0 {
			return false, domain.ErrEmptyCart
		}
		consumed = cart.Snapshot()
		if err := place(consumed); err != nil {
			return false, err
		}
		cart.Clear()
		return true, nil
	})
	return consumed, err
}

// Snapshot returns the current items with their derived aggregates
func (s *CartStore) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// ItemCount returns the sum of quantities
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// CartTotal returns the sum of unit price times quantity
func (s *CartStore) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// mutate applies fn under the lock. When fn reports a change the full
// collection is persisted and listeners are notified. A failed write rolls the
// cart back to its previous items, except after a checkout whose order is
// already stored.
func (s *CartStore) mutate(ctx context.Context, op CartOperation, fn func(cart *domain.Cart) (bool, error)) error {
	s.mu.Lock()
	before := s.cart.Items()
	changed, err := fn(s.cart)
	if err != nil || !changed {
		s.mu.Unlock()
		return err
	}

	if err := s.persist(ctx); err != nil {
		if op != CartOperationCheckout {
			s.cart = domain.NewCart(before)
			s.mu.Unlock()
			return err
		}
		logrus.Errorf("Cart %s was checked out but its cleared state was not stored: %v", s.key, err)
	}

	s.version++
	event := CartEvent{
		Key:       s.key,
		Operation: op,
		Version:   s.version,
		Snapshot:  s.cart.Snapshot(),
	}
	listeners := make([]CartListener, 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.mu.Unlock()

	s.publish(event, listeners)
	return nil
}

// publish waits until every earlier version was delivered, then runs the listeners
func (s *CartStore) publish(event CartEvent, listeners []CartListener) {
	s.notifyMu.Lock()
	for s.delivered+1 != event.Version {
		s.notifyCond.Wait()
	}
	defer func() {
		s.delivered = event.Version
		s.notifyCond.Broadcast()
		s.notifyMu.Unlock()
	}()
	for _, listener := range listeners {
		listener(event)
	}
}

func (s *CartStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.cart)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrSnapshotStorage, s.key, err)
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		logrus.Errorf("Failed to persist cart %s: %v", s.key, err)
		return fmt.Errorf("%w: save %s: %v", domain.ErrSnapshotStorage, s.key, err)
	}
	return nil
}
