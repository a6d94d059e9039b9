package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

const testCartKey = "cart:test"

func newTestStore(t *testing.T, storage *MockSnapshotStorage) *CartStore {
	t.Helper()
	store, err := NewCartStore(context.Background(), storage, testCartKey)
	if err != nil {
		t.Fatalf("expected no error creating store, got %v", err)
	}
	return store
}

// assertAggregates recomputes itemCount and cartTotal from the items
func assertAggregates(t *testing.T, store *CartStore) {
	t.Helper()
	snapshot := store.Snapshot()
	count := 0
	total := decimal.Zero
	for _, item := range snapshot.Items {
		count += item.Quantity
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if snapshot.ItemCount != count || store.ItemCount() != count {
		t.Errorf("expected itemCount %d, got %d", count, snapshot.ItemCount)
	}
	if !snapshot.CartTotal.Equal(total) || !store.CartTotal().Equal(total) {
		t.Errorf("expected cartTotal %s, got %s", total, snapshot.CartTotal)
	}
}

// TestCartStoreStartsEmptyWithoutSnapshot tests the missing entry case
func TestCartStoreStartsEmptyWithoutSnapshot(t *testing.T) {
	store := newTestStore(t, NewMockSnapshotStorage())

	snapshot := store.Snapshot()
	if len(snapshot.Items) != 0 || snapshot.ItemCount != 0 || !snapshot.CartTotal.IsZero() {
		t.Errorf("expected empty cart, got %+v", snapshot)
	}
}

// TestCartStoreFailsSoftOnMalformedSnapshot tests that unparsable storage yields an empty cart
func TestCartStoreFailsSoftOnMalformedSnapshot(t *testing.T) {
	storage := NewMockSnapshotStorage()
	_ = storage.Set(context.Background(), testCartKey, []byte(`{"broken":`))

	store := newTestStore(t, storage)
	if store.ItemCount() != 0 {
		t.Errorf("expected empty cart, got itemCount %d", store.ItemCount())
	}
}

// TestCartStoreReturnsStorageReadErrors tests that an unreachable storage is not mistaken for an empty cart
func TestCartStoreReturnsStorageReadErrors(t *testing.T) {
	storage := NewMockSnapshotStorage()
	storage.GetFunc = func(ctx context.Context, key string) ([]byte, error) {
		return nil, errors.New("connection refused")
	}

	_, err := NewCartStore(context.Background(), storage, testCartKey)
	if !errors.Is(err, domain.ErrSnapshotStorage) {
		t.Errorf("expected ErrSnapshotStorage, got %v", err)
	}
}

// TestCartStoreMergeScenario tests two adds of the same variant
func TestCartStoreMergeScenario(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, NewMockSnapshotStorage())

	if err := store.AddToCart(ctx, testItem("p1", "red", "m", 10, 1)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.AddToCart(ctx, testItem("p1", "red", "m", 10, 2)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	snapshot := store.Snapshot()
	if len(snapshot.Items) != 1 {
		t.Fatalf("expected exactly 1 entry, got %d", len(snapshot.Items))
	}
	if snapshot.Items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", snapshot.Items[0].Quantity)
	}
	if snapshot.ItemCount != 3 {
		t.Errorf("expected itemCount 3, got %d", snapshot.ItemCount)
	}
	if !snapshot.CartTotal.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected cartTotal 30, got %s", snapshot.CartTotal)
	}
}

// TestCartStoreUpdateToZeroScenario tests that updating to zero removes the entry
func TestCartStoreUpdateToZeroScenario(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, NewMockSnapshotStorage())

	_ = store.AddToCart(ctx, testItem("p1", "", "", 5, 2))
	_ = store.AddToCart(ctx, testItem("p2", "", "", 20, 1))

	if err := store.UpdateQuantity(ctx, testItem("p1", "", "", 5, 2), 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	snapshot := store.Snapshot()
	if len(snapshot.Items) != 1 || snapshot.Items[0].ProductID != "p2" {
		t.Fatalf("expected only p2 to remain, got %+v", snapshot.Items)
	}
	if snapshot.ItemCount != 1 {
		t.Errorf("expected itemCount 1, got %d", snapshot.ItemCount)
	}
	if !snapshot.CartTotal.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected cartTotal 20, got %s", snapshot.CartTotal)
	}
}

// TestCartStoreClearScenario tests that clear persists an empty array
func TestCartStoreClearScenario(t *testing.T) {
	ctx := context.Background()
	storage := NewMockSnapshotStorage()
	store := newTestStore(t, storage)

	_ = store.AddToCart(ctx, testItem("p1", "red", "m", 10, 2))
	_ = store.AddToCart(ctx, testItem("p2", "", "", 20, 1))

	if err := store.ClearCart(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if store.ItemCount() != 0 || !store.CartTotal().IsZero() {
		t.Errorf("expected itemCount 0 and cartTotal 0, got %d and %s", store.ItemCount(), store.CartTotal())
	}
	raw, ok := storage.Raw(testCartKey)
	if !ok || raw != "[]" {
		t.Errorf("expected storage to hold an empty array, got %q", raw)
	}
}

// TestCartStoreAggregatesAfterEveryMutation checks derived values after each operation
func TestCartStoreAggregatesAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, NewMockSnapshotStorage())

	shirt := testItem("p1", "red", "m", 10, 1)
	shirt.UnitPrice = decimal.RequireFromString("12.345")

	_ = store.AddToCart(ctx, shirt)
	assertAggregates(t, store)
	_ = store.AddToCart(ctx, testItem("p2", "", "", 7, 4))
	assertAggregates(t, store)
	_ = store.AddToCart(ctx, shirt)
	assertAggregates(t, store)
	_ = store.UpdateQuantity(ctx, shirt, 9)
	assertAggregates(t, store)
	_ = store.RemoveFromCart(ctx, testItem("p2", "", "", 0, 0))
	assertAggregates(t, store)
	_ = store.ClearCart(ctx)
	assertAggregates(t, store)
}

// TestCartStoreItemCountEqualsAddedMinusRemoved tests the quantity accounting property
func TestCartStoreItemCountEqualsAddedMinusRemoved(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, NewMockSnapshotStorage())

	added := 0
	for i, qty := range []int{1, 2, 3, 4, 5} {
		color := []string{"red", "blue"}[i%2]
		_ = store.AddToCart(ctx, testItem("p1", color, "m", 3, qty))
		added += qty
	}
	// red: 1+3+5, blue: 2+4
	if store.ItemCount() != added {
		t.Fatalf("expected itemCount %d, got %d", added, store.ItemCount())
	}
	if len(store.Snapshot().Items) != 2 {
		t.Errorf("expected 2 merged entries, got %d", len(store.Snapshot().Items))
	}

	_ = store.RemoveFromCart(ctx, testItem("p1", "blue", "m", 0, 0))
	if store.ItemCount() != added-6 {
		t.Errorf("expected itemCount %d, got %d", added-6, store.ItemCount())
	}
	_ = store.UpdateQuantity(ctx, testItem("p1", "red", "m", 0, 0), 2)
	if store.ItemCount() != 2 {
		t.Errorf("expected itemCount 2, got %d", store.ItemCount())
	}
}

// TestCartStoreRemoveIsIdempotent tests that a second remove changes nothing
func TestCartStoreRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	storage := NewMockSnapshotStorage()
	store := newTestStore(t, storage)

	_ = store.AddToCart(ctx, testItem("p1", "", "", 10, 1))
	_ = store.AddToCart(ctx, testItem("p2", "", "", 10, 1))

	_ = store.RemoveFromCart(ctx, testItem("p1", "", "", 0, 0))
	afterFirst := store.Snapshot()
	writes := len(storage.SetCalls)

	if err := store.RemoveFromCart(ctx, testItem("p1", "", "", 0, 0)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	afterSecond := store.Snapshot()

	if len(afterFirst.Items) != len(afterSecond.Items) || afterFirst.ItemCount != afterSecond.ItemCount {
		t.Errorf("expected second remove to be a no-op, got %+v then %+v", afterFirst, afterSecond)
	}
	if len(storage.SetCalls) != writes {
		t.Errorf("expected no storage write for a no-op remove, got %d extra", len(storage.SetCalls)-writes)
	}
}

// TestCartStoreRejectsInvalidQuantity tests that invalid adds neither persist nor notify
func TestCartStoreRejectsInvalidQuantity(t *testing.T) {
	ctx := context.Background()
	storage := NewMockSnapshotStorage()
	store := newTestStore(t, storage)

	notified := 0
	store.Subscribe(func(event CartEvent) { notified++ })

	err := store.AddToCart(ctx, testItem("p1", "", "", 10, 0))
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
	if notified != 0 || len(storage.SetCalls) != 0 {
		t.Errorf("expected no notification and no write, got %d and %d", notified, len(storage.SetCalls))
	}
}

// TestCartStoreRoundTrip tests that a reloaded store sees the same items
func TestCartStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMockSnapshotStorage()
	store := newTestStore(t, storage)

	_ = store.AddToCart(ctx, testItem("p1", "red", "m", 10, 2))
	_ = store.AddToCart(ctx, testItem("p2", "", "xl", 15, 1))
	_ = store.AddToCart(ctx, testItem("p3", "ivory", "", 129, 1))

	reloaded := newTestStore(t, storage)

	want, got := store.Snapshot(), reloaded.Snapshot()
	if len(want.Items) != len(got.Items) {
		t.Fatalf("expected %d items after reload, got %d", len(want.Items), len(got.Items))
	}
	for i := range want.Items {
		w, g := want.Items[i], got.Items[i]
		if w.Key() != g.Key() || w.Quantity != g.Quantity || w.Name != g.Name ||
			w.ImageRef != g.ImageRef || !w.UnitPrice.Equal(g.UnitPrice) {
			t.Errorf("item %d: expected %+v, got %+v", i, w, g)
		}
	}
	if !want.CartTotal.Equal(got.CartTotal) || want.ItemCount != got.ItemCount {
		t.Errorf("expected aggregates %d/%s, got %d/%s", want.ItemCount, want.CartTotal, got.ItemCount, got.CartTotal)
	}
}

// TestCartStoreNotifiesListeners tests the observer contract
func TestCartStoreNotifiesListeners(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, NewMockSnapshotStorage())

	var events []CartEvent
	unsubscribe := store.Subscribe(func(event CartEvent) {
		events = append(events, event)
	})

	_ = store.AddToCart(ctx, testItem("p1", "", "", 10, 2))

	// Snapshots handed out are immutable copies
	events[0].Snapshot.Items[0].Quantity = 99
	if store.ItemCount() != 2 {
		t.Errorf("expected listener snapshot edits not to leak, got itemCount %d", store.ItemCount())
	}

	_ = store.UpdateQuantity(ctx, testItem("p1", "", "", 0, 0), 5)
	_ = store.RemoveFromCart(ctx, testItem("missing", "", "", 0, 0))
	_ = store.ClearCart(ctx)

	if len(events) != 3 {
		t.Fatalf("expected 3 events (no-op remove skipped), got %d", len(events))
	}
	wantOps := []CartOperation{CartOperationAdd, CartOperationUpdate, CartOperationClear}
	for i, op := range wantOps {
		if events[i].Operation != op {
			t.Errorf("event %d: expected operation %s, got %s", i, op, events[i].Operation)
		}
		if events[i].Key != testCartKey {
			t.Errorf("event %d: expected key %s, got %s", i, testCartKey, events[i].Key)
		}
	}
	if events[1].Snapshot.ItemCount != 5 {
		t.Errorf("expected update event to carry itemCount 5, got %d", events[1].Snapshot.ItemCount)
	}

	unsubscribe()
	_ = store.AddToCart(ctx, testItem("p1", "", "", 10, 1))
	if len(events) != 3 {
		t.Errorf("expected no events after unsubscribe, got %d", len(events))
	}
}

// TestCartStoreRollsBackWhenPersistFails tests that a failed write leaves the previous items
func TestCartStoreRollsBackWhenPersistFails(t *testing.T) {
	ctx := context.Background()
	storage := NewMockSnapshotStorage()
	store := newTestStore(t, storage)
	_ = store.AddToCart(ctx, testItem("p1", "", "", 10, 1))

	notified := 0
	store.Subscribe(func(event CartEvent) { notified++ })
	storage.SetFunc = func(ctx context.Context, key string, value []byte) error {
		return errors.New("disk full")
	}

	err := store.AddToCart(ctx, testItem("p1", "", "", 10, 2))
	if !errors.Is(err, domain.ErrSnapshotStorage) {
		t.Errorf("expected ErrSnapshotStorage, got %v", err)
	}
	if store.ItemCount() != 1 {
		t.Errorf("expected failed add to be rolled back, got itemCount %d", store.ItemCount())
	}
	if notified != 0 {
		t.Errorf("expected no notification for a rolled back add, got %d", notified)
	}

	storage.SetFunc = nil
	if err := store.AddToCart(ctx, testItem("p1", "", "", 10, 2)); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if store.ItemCount() != 3 {
		t.Errorf("expected retried add to count once, got itemCount %d", store.ItemCount())
	}
}

// TestOpenCartStoreRequiresStoredEntry tests that only carts with a snapshot can be opened
func TestOpenCartStoreRequiresStoredEntry(t *testing.T) {
	ctx := context.Background()
	storage := NewMockSnapshotStorage()

	if _, err := OpenCartStore(ctx, storage, testCartKey); !errors.Is(err, domain.ErrCartNotFound) {
		t.Errorf("expected ErrCartNotFound, got %v", err)
	}

	_ = storage.Set(ctx, testCartKey, []byte("[]"))
	if _, err := OpenCartStore(ctx, storage, testCartKey); err != nil {
		t.Errorf("expected stored cart to open, got %v", err)
	}
}

// TestCartStoreCheckout tests that checkout hands over the items and empties the cart
func TestCartStoreCheckout(t *testing.T) {
	ctx := context.Background()
	storage := NewMockSnapshotStorage()
	store := newTestStore(t, storage)
	_ = store.AddToCart(ctx, testItem("p1", "red", "m", 10, 2))

	var events []CartEvent
	store.Subscribe(func(event CartEvent) { events = append(events, event) })

	var placed domain.CartSnapshot
	consumed, err := store.Checkout(ctx, func(snapshot domain.CartSnapshot) error {
		placed = snapshot
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if placed.ItemCount != 2 || consumed.ItemCount != 2 || !consumed.CartTotal.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected 2 items worth 20 to be placed, got %+v", consumed)
	}
	if store.ItemCount() != 0 {
		t.Errorf("expected empty cart, got itemCount %d", store.ItemCount())
	}
	if raw, _ := storage.Raw(testCartKey); raw != "[]" {
		t.Errorf("expected storage to hold an empty array, got %q", raw)
	}
	if len(events) != 1 || events[0].Operation != CartOperationCheckout {
		t.Errorf("expected one checkout event, got %+v", events)
	}
}

// TestCartStoreCheckoutRejected tests empty carts and failed order writes
func TestCartStoreCheckoutRejected(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, NewMockSnapshotStorage())

	called := false
	_, err := store.Checkout(ctx, func(snapshot domain.CartSnapshot) error {
		called = true
		return nil
	})
	if !errors.Is(err, domain.ErrEmptyCart) || called {
		t.Errorf("expected ErrEmptyCart without placing, got %v (called %v)", err, called)
	}

	_ = store.AddToCart(ctx, testItem("p1", "", "", 10, 1))
	placeErr := errors.New("database unavailable")
	if _, err := store.Checkout(ctx, func(snapshot domain.CartSnapshot) error { return placeErr }); !errors.Is(err, placeErr) {
		t.Errorf("expected place error, got %v", err)
	}
	if store.ItemCount() != 1 {
		t.Errorf("expected cart to be kept, got itemCount %d", store.ItemCount())
	}
}

// TestCartStoreDeliversEventsInOrder tests that concurrent mutations reach listeners in version order
func TestCartStoreDeliversEventsInOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, NewMockSnapshotStorage())

	var mu sync.Mutex
	var events []CartEvent
	store.Subscribe(func(event CartEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, event)
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.AddToCart(ctx, testItem("p1", "", "", 1, 1))
		}()
	}
	wg.Wait()

	if len(events) != 50 {
		t.Fatalf("expected 50 events, got %d", len(events))
	}
	for i, event := range events {
		if event.Version != uint64(i+1) || event.Snapshot.ItemCount != i+1 {
			t.Fatalf("event %d: expected version and itemCount %d, got %d and %d", i, i+1, event.Version, event.Snapshot.ItemCount)
		}
	}
	if last := events[len(events)-1]; last.Snapshot.ItemCount != store.ItemCount() {
		t.Errorf("expected last event to match the cart, got %d and %d", last.Snapshot.ItemCount, store.ItemCount())
	}
}
