// Package orders places and pays orders. Prices are recomputed on the server
// from catalog prices with the pricing rules; an order is only visible to the
// user who placed it and to admins.
package orders
