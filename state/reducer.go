package state

import "slices"

// Reduce returns the state that follows s after a. It never mutates s and
// never fails: unknown kinds and payloads of the wrong type return s.
func Reduce(s State, a Action) State {
	next, _ := reduce(s, a)
	return next
}

// reduce also reports whether a was applied.
func reduce(s State, a Action) (State, bool) {
	switch a.Kind {
	case KindCartAddItem:
		item, ok := a.Payload.(CartItem)
		if !ok {
			return s, false
		}
		items := slices.Clone(s.Cart.CartItems)
		if i := slices.IndexFunc(items, func(it CartItem) bool { return it.ProductID == item.ProductID }); i >= 0 {
			items[i] = item
		} else {
			items = append(items, item)
		}
		s.Cart.CartItems = items
		return s, true

	case KindCartRemoveItem:
		item, ok := a.Payload.(CartItem)
		if !ok {
			return s, false
		}
		s.Cart.CartItems = slices.DeleteFunc(slices.Clone(s.Cart.CartItems), func(it CartItem) bool {
			return it.ProductID == item.ProductID
		})
		if s.Cart.CartItems == nil {
			s.Cart.CartItems = []CartItem{}
		}
		return s, true

	case KindCartClear:
		s.Cart.CartItems = []CartItem{}
		return s, true

	case KindUserSignIn:
		user, ok := a.Payload.(UserInfo)
		if !ok {
			return s, false
		}
		s.UserInfo = &user
		return s, true

	case KindUserSignOut:
		s.UserInfo = nil
		s.Cart = Cart{CartItems: []CartItem{}}
		return s, true

	case KindSaveShippingAddress:
		addr, ok := a.Payload.(ShippingAddress)
		if !ok {
			return s, false
		}
		s.Cart.ShippingAddress = addr
		return s, true

	case KindSavePaymentMethod:
		m, ok := a.Payload.(PaymentMethod)
		if !ok {
			return s, false
		}
		s.Cart.PaymentMethod = m
		return s, true
	}
	return s, false
}
