package state

import "slices"

// PaymentMethod is the payment provider chosen at checkout.
type PaymentMethod string

const (
	PaymentNone   PaymentMethod = ""
	PaymentPayPal PaymentMethod = "PayPal"
	PaymentPaytm  PaymentMethod = "Paytm"
)

// Valid reports whether m is a supported provider.
func (m PaymentMethod) Valid() bool {
	return m == PaymentPayPal || m == PaymentPaytm
}

// UserInfo is the signed-in identity together with its bearer credential.
type UserInfo struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// CartItem is one line item of the cart.
type CartItem struct {
	ProductID    string  `json:"_id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	CountInStock int     `json:"countInStock"`
}

// ShippingAddress is where an order is delivered. The zero value is empty.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// IsZero reports whether no field is set.
func (a ShippingAddress) IsZero() bool {
	return a == ShippingAddress{}
}

// Cart is the transaction slice of the state.
type Cart struct {
	CartItems       []CartItem      `json:"cartItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
}

// Find returns the line item for productID.
func (c Cart) Find(productID string) (CartItem, bool) {
	for _, it := range c.CartItems {
		if it.ProductID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

// ItemCount is the total number of units in the cart.
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.CartItems {
		n += it.Quantity
	}
	return n
}

// Subtotal is Σ price·quantity over the cart.
func (c Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.CartItems {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// State is a snapshot of the client's session and cart.
// UserInfo is nil while signed out.
type State struct {
	UserInfo *UserInfo `json:"userInfo"`
	Cart     Cart      `json:"cart"`
}

// Default returns the signed-out, empty-cart state.
func Default() State {
	return State{Cart: Cart{CartItems: []CartItem{}}}
}

// SignedIn reports whether a user is signed in.
func (s State) SignedIn() bool {
	return s.UserInfo != nil
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	if s.UserInfo != nil {
		u := *s.UserInfo
		out.UserInfo = &u
	}
	out.Cart.CartItems = slices.Clone(s.Cart.CartItems)
	if out.Cart.CartItems == nil {
		out.Cart.CartItems = []CartItem{}
	}
	return out
}
