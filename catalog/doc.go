// Package catalog serves the product catalog: listing, lookup by slug and
// lookup by id. The by-id route is what clients call to read the current
// stock count before adding a product to the cart.
package catalog
