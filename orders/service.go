package orders

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/kbukum/storefront/auth/token"
	"github.com/kbukum/storefront/catalog"
	"github.com/kbukum/storefront/database"
	apperrors "github.com/kbukum/storefront/errors"
	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/observability"
	"github.com/kbukum/storefront/pricing"
	"github.com/kbukum/storefront/validation"
)

const resourceOrder = "Order"

// Confirmation messages.
const (
	MessageCreated = "New Order Created"
	MessagePaid    = "Order Paid"
)

// Service implements order placement and payment.
type Service struct {
	db       *database.DB
	products *catalog.Repository
	calc     *pricing.Calculator
	metrics  *observability.Metrics
	log      *logger.Logger
	now      func() time.Time
}

// NewService creates an order service. metrics may be nil.
func NewService(db *database.DB, products *catalog.Repository, calc *pricing.Calculator, metrics *observability.Metrics, log *logger.Logger) *Service {
	return &Service{
		db:       db,
		products: products,
		calc:     calc,
		metrics:  metrics,
		log:      log.WithComponent("orders"),
		now:      time.Now,
	}
}

// Create places an order for the caller. Every item must reference an
// existing product with enough stock.
func (s *Service) Create(ctx context.Context, caller token.Identity, req CreateRequest) (*Receipt, error) {
	ctx, span := observability.StartSpan(ctx, "orders.Create")
	defer span.End()
	span.SetAttributes(attribute.String(observability.AttrUserID, caller.ID))

	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	items, lines, err := s.resolveItems(ctx, req.OrderItems)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	prices, err := s.calc.Calculate(lines)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	order := &Order{
		OrderItems:      items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ItemsPrice:      prices.ItemsPrice,
		ShippingPrice:   prices.ShippingPrice,
		TaxPrice:        prices.TaxPrice,
		TotalPrice:      prices.TotalPrice,
		UserID:          caller.ID,
	}
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		observability.SetSpanError(ctx, err)
		return nil, database.FromDatabase(err, resourceOrder, "")
	}

	span.SetAttributes(attribute.String(observability.AttrOrderID, order.ID))
	s.metrics.OrderPlaced(ctx, len(items))
	s.log.WithContext(ctx).Info("order created", logger.Fields(
		logger.FieldOrderID, order.ID,
		logger.FieldUserID, caller.ID,
		"total", order.TotalPrice,
	))
	return &Receipt{Message: MessageCreated, Order: order}, nil
}

// resolveItems replaces client-supplied item data with catalog data and
// checks stock. Lines naming the same product are merged first so stock is
// checked against the combined quantity.
func (s *Service) resolveItems(ctx context.Context, reqs []ItemRequest) ([]OrderItem, []pricing.Line, error) {
	reqs = mergeLines(reqs)
	ids := make([]string, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ProductID)
	}
	products, err := s.products.ByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	items := make([]OrderItem, 0, len(reqs))
	lines := make([]pricing.Line, 0, len(reqs))
	for _, r := range reqs {
		p, ok := products[r.ProductID]
		if !ok {
			return nil, nil, apperrors.NotFound("Product", r.ProductID)
		}
		if !p.InStock(r.Quantity) {
			return nil, nil, apperrors.OutOfStock(p.ID, r.Quantity, p.CountInStock)
		}
		items = append(items, OrderItem{
			ProductID: p.ID,
			Slug:      p.Slug,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  r.Quantity,
		})
		lines = append(lines, pricing.Line{Price: p.Price, Quantity: r.Quantity})
	}
	return items, lines, nil
}

// Mine returns the caller's orders, newest first.
func (s *Service) Mine(ctx context.Context, caller token.Identity) ([]Order, error) {
	ctx, span := observability.StartSpan(ctx, "orders.Mine")
	defer span.End()

	orders := []Order{}
	err := s.db.WithContext(ctx).
		Preload("OrderItems").
		Where("user_id = ?", caller.ID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, database.FromDatabase(err, resourceOrder, "")
	}
	return orders, nil
}

// Get returns the order with id. Orders of other users are reported as not
// found unless the caller is an admin.
func (s *Service) Get(ctx context.Context, caller token.Identity, id string) (*Order, error) {
	ctx, span := observability.StartSpan(ctx, "orders.Get")
	defer span.End()
	span.SetAttributes(attribute.String(observability.AttrOrderID, id))

	return s.load(ctx, s.db.WithContext(ctx), caller, id)
}

// Pay records the provider's payment result and marks the order paid.
func (s *Service) Pay(ctx context.Context, caller token.Identity, id string, req PayRequest) (*Receipt, error) {
	ctx, span := observability.StartSpan(ctx, "orders.Pay")
	defer span.End()
	span.SetAttributes(attribute.String(observability.AttrOrderID, id))

	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	var order *Order
	err := s.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		if order, err = s.load(ctx, tx, caller, id); err != nil {
			return err
		}
		paidAt := s.now().UTC()
		order.IsPaid = true
		order.PaidAt = &paidAt
		order.PaymentResult = PaymentResult(req)
		return tx.Omit("OrderItems").Save(order).Error
	})
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, database.FromDatabase(err, resourceOrder, id)
	}

	s.metrics.OrderPaid(ctx, order.PaymentMethod)
	s.log.WithContext(ctx).Info("order paid", logger.Fields(
		logger.FieldOrderID, order.ID,
		logger.FieldStatus, req.Status,
	))
	return &Receipt{Message: MessagePaid, Order: order}, nil
}

func (s *Service) load(ctx context.Context, db *gorm.DB, caller token.Identity, id string) (*Order, error) {
	var order Order
	err := gorm.ErrRecordNotFound
	if database.ValidID(id) {
		err = db.WithContext(ctx).Preload("OrderItems").Where("id = ?", id).First(&order).Error
	}
	if err != nil {
		return nil, database.FromDatabase(err, resourceOrder, id)
	}
	if order.UserID != caller.ID && !caller.IsAdmin {
		return nil, apperrors.NotFound(resourceOrder, id)
	}
	return &order, nil
}

// mergeLines sums the quantities of lines with the same product, keeping the
// position of the first occurrence.
func mergeLines(reqs []ItemRequest) []ItemRequest {
	merged := make([]ItemRequest, 0, len(reqs))
	index := make(map[string]int, len(reqs))
	for _, r := range reqs {
		if i, ok := index[r.ProductID]; ok {
			merged[i].Quantity += r.Quantity
			continue
		}
		index[r.ProductID] = len(merged)
		merged = append(merged, r)
	}
	return merged
}
