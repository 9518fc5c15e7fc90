package state

import (
	"reflect"
	"testing"
)

func item(id string, qty int) CartItem {
	return CartItem{ProductID: id, Slug: id + "-slug", Name: id, Price: 10, Quantity: qty, CountInStock: 10}
}

func populated() State {
	s := Default()
	s.UserInfo = &UserInfo{ID: "u1", Name: "A", Email: "a@x.com", Token: "tok"}
	s.Cart.CartItems = []CartItem{item("p1", 2), item("p2", 1)}
	s.Cart.ShippingAddress = ShippingAddress{FullName: "A", Address: "1 Main", City: "X", PostalCode: "1", Country: "Y"}
	s.Cart.PaymentMethod = PaymentPayPal
	return s
}

func TestReduceAddItemReplacesSameProduct(t *testing.T) {
	s := Reduce(Default(), AddItem(item("p1", 1)))
	s = Reduce(s, AddItem(item("p1", 3)))

	if len(s.Cart.CartItems) != 1 {
		t.Fatalf("expected one line item, got %d", len(s.Cart.CartItems))
	}
	if s.Cart.CartItems[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", s.Cart.CartItems[0].Quantity)
	}
}

func TestReduceAddItemKeepsPosition(t *testing.T) {
	s := Default()
	s.Cart.CartItems = []CartItem{item("p1", 1), item("p2", 1), item("p3", 1)}
	s = Reduce(s, AddItem(item("p2", 5)))

	ids := []string{}
	for _, it := range s.Cart.CartItems {
		ids = append(ids, it.ProductID)
	}
	if !reflect.DeepEqual(ids, []string{"p1", "p2", "p3"}) {
		t.Errorf("unexpected order %v", ids)
	}
	if s.Cart.CartItems[1].Quantity != 5 {
		t.Errorf("expected replaced quantity 5, got %d", s.Cart.CartItems[1].Quantity)
	}
}

func TestReduceRemoveItemIsExact(t *testing.T) {
	s := Default()
	s.Cart.CartItems = []CartItem{item("p1", 2), item("p2", 1)}
	s = Reduce(s, RemoveItem(CartItem{ProductID: "p1"}))

	want := []CartItem{item("p2", 1)}
	if !reflect.DeepEqual(s.Cart.CartItems, want) {
		t.Errorf("expected %v, got %v", want, s.Cart.CartItems)
	}
}

func TestReduceRemoveLastItemLeavesEmptySlice(t *testing.T) {
	s := Default()
	s.Cart.CartItems = []CartItem{item("p1", 1)}
	s = Reduce(s, RemoveItem(item("p1", 1)))
	if s.Cart.CartItems == nil || len(s.Cart.CartItems) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", s.Cart.CartItems)
	}
}

func TestReduceSignOutClearsTransactionState(t *testing.T) {
	s := Reduce(populated(), SignOut())

	if s.UserInfo != nil {
		t.Error("expected userInfo nil")
	}
	if len(s.Cart.CartItems) != 0 {
		t.Errorf("expected empty cart, got %v", s.Cart.CartItems)
	}
	if !s.Cart.ShippingAddress.IsZero() {
		t.Errorf("expected empty address, got %+v", s.Cart.ShippingAddress)
	}
	if s.Cart.PaymentMethod != PaymentNone {
		t.Errorf("expected empty payment method, got %q", s.Cart.PaymentMethod)
	}
}

func TestReduceUnknownKindIsNoop(t *testing.T) {
	before := populated()
	after := Reduce(before, Action{Kind: "CART_EXPLODE"})
	if !reflect.DeepEqual(before, after) {
		t.Errorf("expected unchanged state\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestReduceWrongPayloadIsNoop(t *testing.T) {
	before := populated()
	after := Reduce(before, Action{Kind: KindCartAddItem, Payload: "p1"})
	if !reflect.DeepEqual(before, after) {
		t.Error("expected unchanged state for mistyped payload")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := populated()
	snapshot := before.Clone()

	Reduce(before, AddItem(item("p1", 9)))
	Reduce(before, RemoveItem(item("p2", 1)))
	Reduce(before, ClearCart())

	if !reflect.DeepEqual(before, snapshot) {
		t.Error("reducer mutated its input")
	}
}

func TestReduceTable(t *testing.T) {
	addr := ShippingAddress{FullName: "B", Address: "2 Side", City: "Z", PostalCode: "2", Country: "W"}
	user := UserInfo{ID: "u2", Name: "B", Email: "b@x.com", Token: "t2"}

	tests := []struct {
		name   string
		action Action
		check  func(t *testing.T, s State)
	}{
		{"clear keeps address", ClearCart(), func(t *testing.T, s State) {
			if len(s.Cart.CartItems) != 0 || s.Cart.ShippingAddress.IsZero() {
				t.Errorf("unexpected cart %+v", s.Cart)
			}
		}},
		{"sign in", SignIn(user), func(t *testing.T, s State) {
			if s.UserInfo == nil || *s.UserInfo != user {
				t.Errorf("unexpected user %+v", s.UserInfo)
			}
		}},
		{"save address", SaveShippingAddress(addr), func(t *testing.T, s State) {
			if s.Cart.ShippingAddress != addr {
				t.Errorf("unexpected address %+v", s.Cart.ShippingAddress)
			}
		}},
		{"save payment", SavePaymentMethod(PaymentPaytm), func(t *testing.T, s State) {
			if s.Cart.PaymentMethod != PaymentPaytm {
				t.Errorf("unexpected method %q", s.Cart.PaymentMethod)
			}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, Reduce(populated(), tc.action))
		})
	}
}

func TestCartTotals(t *testing.T) {
	c := Cart{CartItems: []CartItem{
		{ProductID: "p1", Price: 120, Quantity: 2},
		{ProductID: "p2", Price: 25.5, Quantity: 1},
	}}
	if c.ItemCount() != 3 {
		t.Errorf("expected 3 units, got %d", c.ItemCount())
	}
	if c.Subtotal() != 265.5 {
		t.Errorf("expected 265.5, got %v", c.Subtotal())
	}
	if _, ok := c.Find("p2"); !ok {
		t.Error("expected to find p2")
	}
}
