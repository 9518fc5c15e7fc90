package orders

import (
	"time"

	"github.com/kbukum/storefront/database"
)

// Order is a placed order.
type Order struct {
	database.BaseModel
	OrderItems      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	PaymentMethod   string          `gorm:"not null" json:"paymentMethod"`
	PaymentResult   PaymentResult   `gorm:"embedded;embeddedPrefix:payment_" json:"paymentResult"`
	ItemsPrice      float64         `gorm:"not null" json:"itemsPrice"`
	ShippingPrice   float64         `gorm:"not null" json:"shippingPrice"`
	TaxPrice        float64         `gorm:"not null" json:"taxPrice"`
	TotalPrice      float64         `gorm:"not null" json:"totalPrice"`
	UserID          string          `gorm:"size:36;index;not null" json:"user"`
	IsPaid          bool            `gorm:"not null;default:false" json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `gorm:"not null;default:false" json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
}

// OrderItem is one line of an order. ProductID references the catalog entry.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"size:36;index;not null" json:"-"`
	ProductID string  `gorm:"size:36;not null" json:"product"`
	Slug      string  `gorm:"not null" json:"slug"`
	Name      string  `gorm:"not null" json:"name"`
	Image     string  `gorm:"not null" json:"image"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

// ShippingAddress is the delivery address of an order.
type ShippingAddress struct {
	FullName   string `json:"fullName" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// PaymentResult is what the payment provider reported to the client.
type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

// ItemRequest is a cart line sent by the client. Only ProductID and
// Quantity are trusted; the rest is taken from the catalog.
type ItemRequest struct {
	ProductID string  `json:"_id" validate:"required"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
}

// CreateRequest is the body of POST /api/orders. Client-computed prices are
// accepted for compatibility and ignored.
type CreateRequest struct {
	OrderItems      []ItemRequest   `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod" validate:"required,oneof=PayPal Paytm"`
	ItemsPrice      float64         `json:"itemsPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TaxPrice        float64         `json:"taxPrice"`
	TotalPrice      float64         `json:"totalPrice"`
}

// PayRequest is the body of PUT /api/orders/:id/pay.
type PayRequest struct {
	ID           string `json:"id" validate:"required"`
	Status       string `json:"status" validate:"required"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address" validate:"omitempty,email"`
}

// Receipt wraps an order with a confirmation message.
type Receipt struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}
