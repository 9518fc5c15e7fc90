package storefront

import (
	"time"

	"github.com/kbukum/storefront/state"
)

// Product is a catalog entry as served by the API.
type Product struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Image        string  `json:"image"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"countInStock"`
	Rating       float64 `json:"rating"`
	NumReviews   int     `json:"numReviews"`
}

// CartItem builds a cart line for quantity units of p.
func (p Product) CartItem(quantity int) state.CartItem {
	return state.CartItem{
		ProductID:    p.ID,
		Slug:         p.Slug,
		Name:         p.Name,
		Image:        p.Image,
		Price:        p.Price,
		Quantity:     quantity,
		CountInStock: p.CountInStock,
	}
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	Product  string  `json:"product"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PaymentResult is what the payment provider reported.
type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

// Order is a placed order.
type Order struct {
	ID              string                `json:"_id"`
	OrderItems      []OrderItem           `json:"orderItems"`
	ShippingAddress state.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   state.PaymentMethod   `json:"paymentMethod"`
	PaymentResult   PaymentResult         `json:"paymentResult"`
	ItemsPrice      float64               `json:"itemsPrice"`
	ShippingPrice   float64               `json:"shippingPrice"`
	TaxPrice        float64               `json:"taxPrice"`
	TotalPrice      float64               `json:"totalPrice"`
	User            string                `json:"user"`
	IsPaid          bool                  `json:"isPaid"`
	PaidAt          *time.Time            `json:"paidAt,omitempty"`
	IsDelivered     bool                  `json:"isDelivered"`
	DeliveredAt     *time.Time            `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

type receipt struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

type orderItemRequest struct {
	ProductID string  `json:"_id"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type orderRequest struct {
	OrderItems      []orderItemRequest    `json:"orderItems"`
	ShippingAddress state.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   state.PaymentMethod   `json:"paymentMethod"`
	ItemsPrice      float64               `json:"itemsPrice"`
	ShippingPrice   float64               `json:"shippingPrice"`
	TaxPrice        float64               `json:"taxPrice"`
	TotalPrice      float64               `json:"totalPrice"`
}
