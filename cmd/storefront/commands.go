package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/kbukum/storefront/errors"
	"github.com/kbukum/storefront/state"
	"github.com/kbukum/storefront/storefront"
)

type command struct {
	usage   string
	summary string
	minArgs int
	run     func(sh *shell, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"products": {"products", "list the catalog", 0, (*shell).products},
	"product":  {"product SLUG", "show one product", 1, (*shell).product},
	"add":      {"add SLUG", "add one unit to the cart", 1, (*shell).add},
	"qty":      {"qty SLUG N", "set the quantity of a cart line", 2, (*shell).qty},
	"remove":   {"remove SLUG", "remove a cart line", 1, (*shell).remove},
	"cart":     {"cart", "show the cart and its totals", 0, (*shell).cart},
	"signin":   {"signin EMAIL PASSWORD", "sign in", 2, (*shell).signIn},
	"signup":   {"signup NAME EMAIL PASSWORD CONFIRM", "create an account and sign in", 4, (*shell).signUp},
	"signout":  {"signout", "sign out and forget the cart", 0, (*shell).signOut},
	"profile":  {"profile NAME EMAIL [PASSWORD CONFIRM]", "update the signed-in account", 2, (*shell).profile},
	"whoami":   {"whoami", "show the signed-in account", 0, (*shell).whoami},
	"shipping": {"shipping FULLNAME ADDRESS CITY POSTALCODE COUNTRY", "save the shipping address", 5, (*shell).shipping},
	"payment":  {"payment PayPal|Paytm", "save the payment method", 1, (*shell).payment},
	"place":    {"place", "place an order for the cart", 0, (*shell).place},
	"orders":   {"orders", "list your orders", 0, (*shell).orders},
	"order":    {"order ID", "show one order", 1, (*shell).order},
	"pay":      {"pay ID", "pay an order through the sandbox provider", 1, (*shell).pay},
}

// shell runs commands against one client and prints to out.
type shell struct {
	client *storefront.Client
	out    io.Writer
}

func (sh *shell) exec(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		sh.help()
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, see %s help", args[0], serviceName)
	}
	if len(args)-1 < cmd.minArgs {
		return fmt.Errorf("usage: %s %s", serviceName, cmd.usage)
	}
	return cmd.run(sh, ctx, args[1:])
}

func (sh *shell) help() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(sh.out, "usage: %s [--config FILE] [--profile NAME] [--api URL] <command> [args...]\n\n", serviceName)
	w := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", commands[name].usage, commands[name].summary)
	}
	w.Flush()
}

func (sh *shell) products(ctx context.Context, _ []string) error {
	products, err := sh.client.Products(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tPRICE\tSTOCK\tRATING")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f (%d)\n", p.Slug, p.Name, money(p.Price), stock(p.CountInStock), p.Rating, p.NumReviews)
	}
	return w.Flush()
}

func (sh *shell) product(ctx context.Context, args []string) error {
	p, err := sh.client.Product(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "%s\n  brand:    %s\n  category: %s\n  price:    %s\n  status:   %s\n  rating:   %.1f (%d reviews)\n\n%s\n",
		p.Name, p.Brand, p.Category, money(p.Price), stock(p.CountInStock), p.Rating, p.NumReviews, p.Description)
	return nil
}

func (sh *shell) add(ctx context.Context, args []string) error {
	item, err := sh.client.AddToCart(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "%s x%d in cart\n", item.Name, item.Quantity)
	return nil
}

func (sh *shell) qty(ctx context.Context, args []string) error {
	item, err := sh.cartLine(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return apperrors.Validation("Quantity must be a number")
	}
	item, err = sh.client.UpdateQuantity(ctx, item, n)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "%s x%d in cart\n", item.Name, item.Quantity)
	return nil
}

func (sh *shell) remove(_ context.Context, args []string) error {
	item, err := sh.cartLine(args[0])
	if err != nil {
		return err
	}
	sh.client.RemoveItem(item)
	fmt.Fprintf(sh.out, "%s removed\n", item.Name)
	return nil
}

func (sh *shell) cartLine(slug string) (state.CartItem, error) {
	for _, it := range sh.client.State().Cart.CartItems {
		if it.Slug == slug {
			return it, nil
		}
	}
	return state.CartItem{}, apperrors.NotFound("Cart item", slug)
}

func (sh *shell) cart(_ context.Context, _ []string) error {
	s := sh.client.State()
	if len(s.Cart.CartItems) == 0 {
		fmt.Fprintln(sh.out, "Cart is empty")
		return nil
	}
	w := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tQTY\tPRICE")
	for _, it := range s.Cart.CartItems {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", it.Slug, it.Name, it.Quantity, money(it.Price))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	count, subtotal := sh.client.Subtotal()
	fmt.Fprintf(sh.out, "\nSubtotal (%d items): %s\n", count, money(subtotal))
	prices, err := sh.client.Summary()
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Shipping: %s\nTax:      %s\nTotal:    %s\n",
		money(prices.ShippingPrice), money(prices.TaxPrice), money(prices.TotalPrice))
	if !s.Cart.ShippingAddress.IsZero() {
		a := s.Cart.ShippingAddress
		fmt.Fprintf(sh.out, "Ship to:  %s, %s, %s %s, %s\n", a.FullName, a.Address, a.City, a.PostalCode, a.Country)
	}
	if s.Cart.PaymentMethod != state.PaymentNone {
		fmt.Fprintf(sh.out, "Payment:  %s\n", s.Cart.PaymentMethod)
	}
	return nil
}

func (sh *shell) signIn(ctx context.Context, args []string) error {
	u, err := sh.client.SignIn(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Signed in as %s <%s>\n", u.Name, u.Email)
	return nil
}

func (sh *shell) signUp(ctx context.Context, args []string) error {
	u, err := sh.client.SignUp(ctx, args[0], args[1], args[2], args[3])
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Welcome %s, you are signed in\n", u.Name)
	return nil
}

func (sh *shell) signOut(_ context.Context, _ []string) error {
	sh.client.SignOut()
	fmt.Fprintln(sh.out, "Signed out")
	return nil
}

func (sh *shell) profile(ctx context.Context, args []string) error {
	var password, confirm string
	if len(args) >= 4 {
		password, confirm = args[2], args[3]
	}
	u, err := sh.client.UpdateProfile(ctx, args[0], args[1], password, confirm)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "User updated successfully: %s <%s>\n", u.Name, u.Email)
	return nil
}

func (sh *shell) whoami(_ context.Context, _ []string) error {
	s := sh.client.State()
	if !s.SignedIn() {
		fmt.Fprintln(sh.out, "Not signed in")
		return nil
	}
	role := "customer"
	if s.UserInfo.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(sh.out, "%s <%s> (%s)\n", s.UserInfo.Name, s.UserInfo.Email, role)
	return nil
}

func (sh *shell) shipping(_ context.Context, args []string) error {
	err := sh.client.SaveShippingAddress(state.ShippingAddress{
		FullName:   args[0],
		Address:    args[1],
		City:       args[2],
		PostalCode: args[3],
		Country:    args[4],
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Shipping address saved")
	return nil
}

func (sh *shell) payment(_ context.Context, args []string) error {
	if err := sh.client.SavePaymentMethod(state.PaymentMethod(args[0])); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Payment method %s saved\n", args[0])
	return nil
}

func (sh *shell) place(ctx context.Context, _ []string) error {
	o, err := sh.client.PlaceOrder(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Order %s placed, total %s\n", o.ID, money(o.TotalPrice))
	return nil
}

func (sh *shell) orders(ctx context.Context, _ []string) error {
	orders, err := sh.client.OrderHistory(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(sh.out, "No orders")
		return nil
	}
	w := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTOTAL\tPAID\tDELIVERED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.CreatedAt.Format(time.DateOnly), money(o.TotalPrice), when(o.IsPaid, o.PaidAt), when(o.IsDelivered, o.DeliveredAt))
	}
	return w.Flush()
}

func (sh *shell) order(ctx context.Context, args []string) error {
	o, err := sh.client.Order(ctx, args[0])
	if err != nil {
		return err
	}
	sh.printOrder(o)
	return nil
}

// pay settles an order the way the sandbox PayPal button does: the provider
// approves immediately and reports a capture for the payer's email.
func (sh *shell) pay(ctx context.Context, args []string) error {
	clientID, err := sh.client.PayPalClientID(ctx)
	if err != nil {
		return err
	}
	result := storefront.PaymentResult{
		ID:           strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:17]),
		Status:       "COMPLETED",
		UpdateTime:   time.Now().UTC().Format(time.RFC3339),
		EmailAddress: sh.client.State().UserInfo.Email,
	}
	o, err := sh.client.PayOrder(ctx, args[0], result)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Order %s paid via %s (client %s)\n", o.ID, o.PaymentMethod, clientID)
	return nil
}

func (sh *shell) printOrder(o *storefront.Order) {
	a := o.ShippingAddress
	fmt.Fprintf(sh.out, "Order %s\n\nShipping\n  %s, %s, %s %s, %s\n  Delivered: %s\n\nPayment\n  Method: %s\n  Paid:   %s\n\nItems\n",
		o.ID, a.FullName, a.Address, a.City, a.PostalCode, a.Country, when(o.IsDelivered, o.DeliveredAt), o.PaymentMethod, when(o.IsPaid, o.PaidAt))
	w := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	for _, it := range o.OrderItems {
		fmt.Fprintf(w, "  %s\t%d\t%s\n", it.Name, it.Quantity, money(it.Price))
	}
	w.Flush()
	fmt.Fprintf(sh.out, "\nItems:    %s\nShipping: %s\nTax:      %s\nTotal:    %s\n",
		money(o.ItemsPrice), money(o.ShippingPrice), money(o.TaxPrice), money(o.TotalPrice))
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func stock(n int) string {
	if n > 0 {
		return "In Stock"
	}
	return "Unavailable"
}

func when(done bool, at *time.Time) string {
	if !done {
		return "No"
	}
	if at == nil {
		return "Yes"
	}
	return at.Format(time.DateOnly)
}
