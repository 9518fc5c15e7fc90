package state

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestStoreDispatchNotifiesWithPrevAndNext(t *testing.T) {
	store := NewStore(Default())

	var gotPrev, gotNext State
	var gotAction Action
	calls := 0
	store.Subscribe(func(prev, next State, a Action) {
		calls++
		gotPrev, gotNext, gotAction = prev, next, a
	})

	store.Dispatch(AddItem(item("p1", 1)))

	if calls != 1 {
		t.Fatalf("expected 1 notification, got %d", calls)
	}
	if len(gotPrev.Cart.CartItems) != 0 || len(gotNext.Cart.CartItems) != 1 {
		t.Errorf("unexpected prev/next %v / %v", gotPrev.Cart.CartItems, gotNext.Cart.CartItems)
	}
	if gotAction.Kind != KindCartAddItem {
		t.Errorf("unexpected action %s", gotAction.Kind)
	}
}

func TestStoreUnknownActionDoesNotNotify(t *testing.T) {
	store := NewStore(populated())
	calls := 0
	store.Subscribe(func(State, State, Action) { calls++ })

	before := store.State()
	after := store.Dispatch(Action{Kind: "NOPE"})

	if calls != 0 {
		t.Errorf("expected no notification, got %d", calls)
	}
	if !reflect.DeepEqual(before, after) {
		t.Error("expected unchanged state")
	}
}

func TestStoreUnsubscribe(t *testing.T) {
	store := NewStore(Default())
	calls := 0
	unsubscribe := store.Subscribe(func(State, State, Action) { calls++ })

	store.Dispatch(ClearCart())
	unsubscribe()
	unsubscribe()
	store.Dispatch(ClearCart())

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestStoreListenersRunInOrder(t *testing.T) {
	var order []int
	store := NewStore(Default(), WithListener(func(State, State, Action) { order = append(order, 1) }))
	store.Subscribe(func(State, State, Action) { order = append(order, 2) })

	store.Dispatch(ClearCart())
	if !reflect.DeepEqual(order, []int{1, 2}) {
		t.Errorf("unexpected order %v", order)
	}
}

func TestStoreSnapshotsAreIsolated(t *testing.T) {
	store := NewStore(Default())
	store.Dispatch(AddItem(item("p1", 1)))

	snap := store.State()
	snap.Cart.CartItems[0].Quantity = 99
	snap.Cart.CartItems = append(snap.Cart.CartItems, item("p9", 1))

	if got := store.State().Cart.CartItems; len(got) != 1 || got[0].Quantity != 1 {
		t.Errorf("store state leaked through snapshot: %v", got)
	}
}

func TestStoreListenerMayDispatch(t *testing.T) {
	store := NewStore(Default())
	store.Subscribe(func(_, next State, a Action) {
		if a.Kind == KindUserSignIn && len(next.Cart.CartItems) == 0 {
			store.Dispatch(SavePaymentMethod(PaymentPayPal))
		}
	})
	store.Dispatch(SignIn(UserInfo{ID: "u1"}))

	if store.State().Cart.PaymentMethod != PaymentPayPal {
		t.Error("expected nested dispatch to apply")
	}
}

func TestStoreConcurrentDispatch(t *testing.T) {
	store := NewStore(Default())
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(AddItem(item("p1", i+1)))
		}()
	}
	wg.Wait()

	if n := len(store.State().Cart.CartItems); n != 1 {
		t.Fatalf("expected exactly one line item, got %d", n)
	}
}

// gatedStorage blocks its first Set until release is closed.
type gatedStorage struct {
	*MemoryStorage
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedStorage() *gatedStorage {
	return &gatedStorage{
		MemoryStorage: NewMemoryStorage(),
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
	}
}

func (g *gatedStorage) Set(ctx context.Context, key, value string) error {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return g.MemoryStorage.Set(ctx, key, value)
}

func assertPersistedMatches(t *testing.T, store *Store, storage Storage) {
	t.Helper()
	restored, err := Hydrate(context.Background(), storage)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if want := store.State().Cart.CartItems; !reflect.DeepEqual(restored.Cart.CartItems, want) {
		t.Errorf("persisted cart %v, store holds %v", restored.Cart.CartItems, want)
	}
}

func TestStorePersistsInDispatchOrderWhileWriteIsSlow(t *testing.T) {
	storage := newGatedStorage()
	store := NewStore(Default(), WithListener(NewPersister(storage, nil).Listener()))

	first := make(chan struct{})
	go func() {
		defer close(first)
		store.Dispatch(AddItem(item("p1", 1)))
	}()
	<-storage.entered

	store.Dispatch(AddItem(item("p2", 1)))
	close(storage.release)
	<-first

	if n := len(store.State().Cart.CartItems); n != 2 {
		t.Fatalf("expected 2 items in store, got %d", n)
	}
	assertPersistedMatches(t, store, storage)
}

func TestStoreConcurrentDispatchPersistsLatest(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(Default(), WithListener(NewPersister(storage, nil).Listener()))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(AddItem(item(fmt.Sprintf("p%d", i), 1)))
		}()
	}
	wg.Wait()

	if n := len(store.State().Cart.CartItems); n != 20 {
		t.Fatalf("expected 20 items, got %d", n)
	}
	assertPersistedMatches(t, store, storage)
}

func TestStoreNestedDispatchIsDeliveredAfterCurrent(t *testing.T) {
	var seen []Kind
	store := NewStore(Default())
	store.Subscribe(func(_, _ State, a Action) {
		seen = append(seen, a.Kind)
		if a.Kind == KindUserSignIn {
			store.Dispatch(SavePaymentMethod(PaymentPayPal))
		}
	})
	store.Subscribe(func(_, _ State, a Action) { seen = append(seen, a.Kind) })

	store.Dispatch(SignIn(UserInfo{ID: "u1"}))

	want := []Kind{KindUserSignIn, KindUserSignIn, KindSavePaymentMethod, KindSavePaymentMethod}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("delivery order %v, want %v", seen, want)
	}
}
