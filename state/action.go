package state

// Kind names a state transition.
type Kind string

const (
	KindCartAddItem         Kind = "CART_ADD_ITEM"
	KindCartRemoveItem      Kind = "CART_REMOVE_ITEM"
	KindCartClear           Kind = "CART_CLEAR"
	KindUserSignIn          Kind = "USER_SIGNIN"
	KindUserSignOut         Kind = "USER_SIGNOUT"
	KindSaveShippingAddress Kind = "SAVE_SHIPPING_ADDRESS"
	KindSavePaymentMethod   Kind = "SAVE_PAYMENT_METHOD"
)

// Action is a transition request submitted to Store.Dispatch. Payload holds
// the value the kind expects; the constructors below build well-formed
// actions.
type Action struct {
	Kind    Kind
	Payload any
}

// AddItem inserts item or replaces the line item with the same ProductID.
// The caller is responsible for checking item.Quantity against stock.
func AddItem(item CartItem) Action {
	return Action{Kind: KindCartAddItem, Payload: item}
}

// RemoveItem drops the line item with item.ProductID.
func RemoveItem(item CartItem) Action {
	return Action{Kind: KindCartRemoveItem, Payload: item}
}

// ClearCart empties the cart items, keeping address and payment method.
func ClearCart() Action {
	return Action{Kind: KindCartClear}
}

// SignIn sets the session identity.
func SignIn(user UserInfo) Action {
	return Action{Kind: KindUserSignIn, Payload: user}
}

// SignOut clears the identity and all transaction state.
func SignOut() Action {
	return Action{Kind: KindUserSignOut}
}

// SaveShippingAddress replaces the shipping address.
func SaveShippingAddress(addr ShippingAddress) Action {
	return Action{Kind: KindSaveShippingAddress, Payload: addr}
}

// SavePaymentMethod replaces the payment method.
func SavePaymentMethod(m PaymentMethod) Action {
	return Action{Kind: KindSavePaymentMethod, Payload: m}
}
