package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kbukum/storefront/database"
	"github.com/kbukum/storefront/database/dbtest"
	apperrors "github.com/kbukum/storefront/errors"
	"github.com/kbukum/storefront/logger"
)

func seedProducts(t *testing.T, db *database.DB, products ...Product) {
	t.Helper()
	err := db.WithTransaction(context.Background(), func(tx *gorm.DB) error {
		return ReplaceAll(tx, products)
	})
	if err != nil {
		t.Fatalf("seed products: %v", err)
	}
}

func fixture() []Product {
	return []Product{
		{Name: "sink-tshirt", Slug: "sink-tshirt", Image: "/images/p4.jpg", Brand: "AP", Category: "Shirts", Price: 65, CountInStock: 5},
		{Name: "aastin-tshirt", Slug: "aastin-tshirt", Image: "/images/p1.jpg", Brand: "AP", Category: "Shirts", Price: 120, CountInStock: 10},
	}
}

func newRouter(t *testing.T, db *database.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewRepository(db), logger.Nop()).Register(r.Group("/api/products"))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return rr
}

func TestRepositoryListOrdersByName(t *testing.T) {
	db := dbtest.New(t, &Product{})
	seedProducts(t, db, fixture()...)

	products, err := NewRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) != 2 || products[0].Name != "aastin-tshirt" {
		t.Fatalf("unexpected products %+v", products)
	}
	if !database.ValidID(products[0].ID) {
		t.Errorf("expected generated id, got %q", products[0].ID)
	}
}

func TestRepositoryByID(t *testing.T) {
	db := dbtest.New(t, &Product{})
	seedProducts(t, db, fixture()...)
	repo := NewRepository(db)
	ctx := context.Background()

	p, err := repo.BySlug(ctx, "sink-tshirt")
	if err != nil {
		t.Fatalf("BySlug: %v", err)
	}
	got, err := repo.ByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.CountInStock != 5 {
		t.Errorf("expected stock 5, got %d", got.CountInStock)
	}

	for _, id := range []string{"not-a-uuid", "00000000-0000-0000-0000-000000000000"} {
		_, err := repo.ByID(ctx, id)
		if !apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
			t.Errorf("ByID(%q): expected NOT_FOUND, got %v", id, err)
		}
	}
}

func TestRepositoryByIDs(t *testing.T) {
	db := dbtest.New(t, &Product{})
	seedProducts(t, db, fixture()...)
	repo := NewRepository(db)
	ctx := context.Background()

	p, _ := repo.BySlug(ctx, "aastin-tshirt")
	found, err := repo.ByIDs(ctx, []string{p.ID, "missing"})
	if err != nil {
		t.Fatalf("ByIDs: %v", err)
	}
	if len(found) != 1 || found[p.ID].Price != 120 {
		t.Errorf("unexpected result %+v", found)
	}
}

func TestReplaceAllRemovesPreviousProducts(t *testing.T) {
	db := dbtest.New(t, &Product{})
	seedProducts(t, db, fixture()...)
	seedProducts(t, db, Product{Name: "Denial-cap", Slug: "denial-cap", Price: 250, CountInStock: 20})

	products, err := NewRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) != 1 || products[0].Slug != "denial-cap" {
		t.Errorf("expected only the new product, got %+v", products)
	}
}

func TestProductInStock(t *testing.T) {
	p := Product{CountInStock: 3}
	tests := []struct {
		qty  int
		want bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{4, false},
	}
	for _, tc := range tests {
		if got := p.InStock(tc.qty); got != tc.want {
			t.Errorf("InStock(%d) = %v, want %v", tc.qty, got, tc.want)
		}
	}
}

func TestHandlerRoutes(t *testing.T) {
	db := dbtest.New(t, &Product{})
	seedProducts(t, db, fixture()...)
	r := newRouter(t, db)

	rr := get(r, "/api/products")
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rr.Code)
	}
	var list struct {
		Data []Product `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil || len(list.Data) != 2 {
		t.Fatalf("list: unexpected body %s", rr.Body.String())
	}

	rr = get(r, "/api/products/slug/sink-tshirt")
	var one struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &one); err != nil {
		t.Fatalf("slug: decode: %v", err)
	}
	id, _ := one.Data["_id"].(string)
	if rr.Code != http.StatusOK || id == "" || one.Data["countInStock"] != float64(5) {
		t.Fatalf("slug: unexpected response %d %s", rr.Code, rr.Body.String())
	}

	rr = get(r, "/api/products/"+id)
	if rr.Code != http.StatusOK {
		t.Errorf("by id: expected 200, got %d", rr.Code)
	}
}

func TestHandlerNotFound(t *testing.T) {
	db := dbtest.New(t, &Product{})
	r := newRouter(t, db)

	for _, path := range []string{"/api/products/slug/nope", "/api/products/nope"} {
		rr := get(r, path)
		if rr.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, rr.Code)
			continue
		}
		var body apperrors.ErrorResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Error.Message != "Product Not Found" {
			t.Errorf("%s: unexpected message %q", path, body.Error.Message)
		}
	}
}
