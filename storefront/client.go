package storefront

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	apperrors "github.com/kbukum/storefront/errors"
	"github.com/kbukum/storefront/httpclient"
	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/pricing"
	"github.com/kbukum/storefront/state"
	"github.com/kbukum/storefront/validation"
)

// Client drives the storefront API on behalf of one user.
type Client struct {
	api   *httpclient.Client
	store *state.Store
	calc  *pricing.Calculator
	log   *logger.Logger

	mu     sync.Mutex
	checks map[string]*stockCheck
	seq    uint64
}

type stockCheck struct {
	ticket uint64
	cancel context.CancelFunc
}

// Option configures a Client.
type Option func(*Client)

// WithCalculator replaces the default pricing rules used for the checkout
// summary.
func WithCalculator(calc *pricing.Calculator) Option {
	return func(c *Client) { c.calc = calc }
}

// New creates a client for the API described by cfg acting on store.
func New(cfg httpclient.Config, store *state.Store, log *logger.Logger, opts ...Option) (*Client, error) {
	api, err := httpclient.New(cfg)
	if err != nil {
		return nil, err
	}
	c := &Client{
		api:    api,
		store:  store,
		calc:   pricing.MustDefault(),
		log:    log.WithComponent("storefront"),
		checks: make(map[string]*stockCheck),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// State returns the current snapshot.
func (c *Client) State() state.State {
	return c.store.State()
}

// Products lists the catalog.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	return httpclient.Get[[]Product](c.api, ctx, "/api/products")
}

// Product returns the product with slug.
func (c *Client) Product(ctx context.Context, slug string) (Product, error) {
	return httpclient.Get[Product](c.api, ctx, "/api/products/slug/"+url.PathEscape(slug))
}

// PayPalClientID returns the PayPal client id configured on the server.
func (c *Client) PayPalClientID(ctx context.Context) (string, error) {
	return httpclient.Get[string](c.api, ctx, "/api/keys/paypal")
}

// AddToCart adds one unit of the product with slug, or one more unit when it
// is already in the cart, after checking current stock.
func (c *Client) AddToCart(ctx context.Context, slug string) (state.CartItem, error) {
	p, err := c.Product(ctx, slug)
	if err != nil {
		return state.CartItem{}, err
	}
	quantity := 1
	if existing, ok := c.store.State().Cart.Find(p.ID); ok {
		quantity = existing.Quantity + 1
	}
	return c.setQuantity(ctx, p.ID, quantity)
}

// UpdateQuantity sets the quantity of a cart line after checking current
// stock.
func (c *Client) UpdateQuantity(ctx context.Context, item state.CartItem, quantity int) (state.CartItem, error) {
	if quantity < 1 {
		return state.CartItem{}, apperrors.Validation("Quantity must be at least 1").WithDetail("field", "quantity")
	}
	return c.setQuantity(ctx, item.ProductID, quantity)
}

// RemoveItem drops a line from the cart.
func (c *Client) RemoveItem(item state.CartItem) {
	c.store.Dispatch(state.RemoveItem(item))
}

// setQuantity fetches the product by id and dispatches the cart line when
// the stock suffices and no newer check for the product has started.
func (c *Client) setQuantity(ctx context.Context, productID string, quantity int) (state.CartItem, error) {
	ctx, ticket, done := c.beginCheck(ctx, productID)
	defer done()

	p, err := httpclient.Get[Product](c.api, ctx, "/api/products/"+url.PathEscape(productID))

	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.checks[productID]; !ok || cur.ticket != ticket {
		c.log.Debug("stale stock check dropped", logger.Fields(logger.FieldProductID, productID))
		return state.CartItem{}, ErrSuperseded
	}
	if err != nil {
		return state.CartItem{}, err
	}
	if p.CountInStock < quantity {
		return state.CartItem{}, apperrors.OutOfStock(p.ID, quantity, p.CountInStock)
	}
	item := p.CartItem(quantity)
	c.store.Dispatch(state.AddItem(item))
	return item, nil
}

// beginCheck registers a new stock check for productID, cancelling the one
// in flight. done removes the registration if it is still the latest.
func (c *Client) beginCheck(ctx context.Context, productID string) (context.Context, uint64, func()) {
	ctx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if prev, ok := c.checks[productID]; ok {
		prev.cancel()
	}
	c.seq++
	ticket := c.seq
	c.checks[productID] = &stockCheck{ticket: ticket, cancel: cancel}
	c.mu.Unlock()

	return ctx, ticket, func() {
		cancel()
		c.mu.Lock()
		if cur, ok := c.checks[productID]; ok && cur.ticket == ticket {
			delete(c.checks, productID)
		}
		c.mu.Unlock()
	}
}

// Subtotal returns the number of units and their total price.
func (c *Client) Subtotal() (int, float64) {
	cart := c.store.State().Cart
	return cart.ItemCount(), pricing.Round2(cart.Subtotal())
}

// Summary prices the cart with the checkout rules.
func (c *Client) Summary() (pricing.Prices, error) {
	return c.calc.Calculate(lines(c.store.State().Cart.CartItems))
}

func lines(items []state.CartItem) []pricing.Line {
	out := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		out = append(out, pricing.Line{Price: it.Price, Quantity: it.Quantity})
	}
	return out
}

// SaveShippingAddress stores the delivery address. All fields are required.
func (c *Client) SaveShippingAddress(addr state.ShippingAddress) error {
	if !c.store.State().SignedIn() {
		return ErrSignInRequired
	}
	v := validation.New().
		Required("fullName", addr.FullName).
		Required("address", addr.Address).
		Required("city", addr.City).
		Required("postalCode", addr.PostalCode).
		Required("country", addr.Country)
	if err := v.Validate(); err != nil {
		return err
	}
	c.store.Dispatch(state.SaveShippingAddress(addr))
	return nil
}

// SavePaymentMethod stores the payment provider. A shipping address must be
// saved first.
func (c *Client) SavePaymentMethod(m state.PaymentMethod) error {
	if c.store.State().Cart.ShippingAddress.IsZero() {
		return ErrShippingRequired
	}
	if err := validation.New().OneOf("paymentMethod", string(m), []string{string(state.PaymentPayPal), string(state.PaymentPaytm)}).Validate(); err != nil {
		return err
	}
	c.store.Dispatch(state.SavePaymentMethod(m))
	return nil
}

// PlaceOrder submits the cart and clears it on success.
func (c *Client) PlaceOrder(ctx context.Context) (*Order, error) {
	s := c.store.State()
	switch {
	case !s.SignedIn():
		return nil, ErrSignInRequired
	case len(s.Cart.CartItems) == 0:
		return nil, ErrEmptyCart
	case s.Cart.ShippingAddress.IsZero():
		return nil, ErrShippingRequired
	case !s.Cart.PaymentMethod.Valid():
		return nil, ErrPaymentRequired
	}

	prices, err := c.calc.Calculate(lines(s.Cart.CartItems))
	if err != nil {
		return nil, fmt.Errorf("storefront: price cart: %w", err)
	}
	req := orderRequest{
		ShippingAddress: s.Cart.ShippingAddress,
		PaymentMethod:   s.Cart.PaymentMethod,
		ItemsPrice:      prices.ItemsPrice,
		ShippingPrice:   prices.ShippingPrice,
		TaxPrice:        prices.TaxPrice,
		TotalPrice:      prices.TotalPrice,
	}
	for _, it := range s.Cart.CartItems {
		req.OrderItems = append(req.OrderItems, orderItemRequest{
			ProductID: it.ProductID,
			Slug:      it.Slug,
			Name:      it.Name,
			Image:     it.Image,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	r, err := httpclient.Post[receipt](c.api, ctx, "/api/orders", req, c.bearer(s))
	if err != nil {
		return nil, err
	}
	c.store.Dispatch(state.ClearCart())
	c.log.Info("order placed", logger.Fields(logger.FieldOrderID, r.Order.ID, "total", r.Order.TotalPrice))
	return &r.Order, nil
}

// OrderHistory lists the signed-in user's orders.
func (c *Client) OrderHistory(ctx context.Context) ([]Order, error) {
	s := c.store.State()
	if !s.SignedIn() {
		return nil, ErrSignInRequired
	}
	return httpclient.Get[[]Order](c.api, ctx, "/api/orders/mine", c.bearer(s))
}

// Order returns one of the signed-in user's orders.
func (c *Client) Order(ctx context.Context, id string) (*Order, error) {
	s := c.store.State()
	if !s.SignedIn() {
		return nil, ErrSignInRequired
	}
	o, err := httpclient.Get[Order](c.api, ctx, "/api/orders/"+url.PathEscape(id), c.bearer(s))
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// PayOrder records a provider payment result for an order.
func (c *Client) PayOrder(ctx context.Context, id string, result PaymentResult) (*Order, error) {
	s := c.store.State()
	if !s.SignedIn() {
		return nil, ErrSignInRequired
	}
	r, err := httpclient.Put[receipt](c.api, ctx, "/api/orders/"+url.PathEscape(id)+"/pay", result, c.bearer(s))
	if err != nil {
		return nil, err
	}
	return &r.Order, nil
}

func (c *Client) bearer(s state.State) httpclient.RequestOption {
	return httpclient.WithRequestAuth(httpclient.BearerAuth(s.UserInfo.Token))
}
