// Package seed resets the catalog and the user table to a known sample data
// set. It backs GET /api/seed and the -seed flag of storefront-api.
package seed
