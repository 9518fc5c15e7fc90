package catalog

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/kbukum/storefront/database"
	"github.com/kbukum/storefront/observability"
)

const resourceProduct = "Product"

// Repository reads and writes products.
type Repository struct {
	db *database.DB
}

// NewRepository creates a product repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// List returns every product ordered by name.
func (r *Repository) List(ctx context.Context) ([]Product, error) {
	ctx, span := observability.StartSpan(ctx, "catalog.List")
	defer span.End()

	var products []Product
	if err := r.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		observability.SetSpanError(ctx, err)
		return nil, database.FromDatabase(err, resourceProduct, "")
	}
	return products, nil
}

// BySlug returns the product with slug.
func (r *Repository) BySlug(ctx context.Context, slug string) (*Product, error) {
	ctx, span := observability.StartSpan(ctx, "catalog.BySlug")
	defer span.End()

	var p Product
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		observability.SetSpanError(ctx, err)
		return nil, database.FromDatabase(err, resourceProduct, "")
	}
	return &p, nil
}

// ByID returns the product with id. Malformed ids are reported as not found.
func (r *Repository) ByID(ctx context.Context, id string) (*Product, error) {
	ctx, span := observability.StartSpan(ctx, "catalog.ByID")
	defer span.End()
	span.SetAttributes(attribute.String(observability.AttrProductID, id))

	var p Product
	err := gorm.ErrRecordNotFound
	if database.ValidID(id) {
		err = r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	}
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, database.FromDatabase(err, resourceProduct, id)
	}
	return &p, nil
}

// ByIDs returns the products with the given ids keyed by id. Unknown ids are
// absent from the result.
func (r *Repository) ByIDs(ctx context.Context, ids []string) (map[string]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, database.FromDatabase(err, resourceProduct, "")
	}
	out := make(map[string]Product, len(products))
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

// ReplaceAll deletes every product and inserts products within tx.
func ReplaceAll(tx *gorm.DB, products []Product) error {
	if err := tx.Where("1 = 1").Delete(&Product{}).Error; err != nil {
		return database.FromDatabase(err, resourceProduct, "")
	}
	if len(products) == 0 {
		return nil
	}
	if err := tx.Create(&products).Error; err != nil {
		return database.FromDatabase(err, resourceProduct, "")
	}
	return nil
}
