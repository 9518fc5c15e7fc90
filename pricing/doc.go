// Package pricing computes order prices from a cart. Each price is an
// expr-lang expression so the shipping threshold and tax rate can be changed
// from configuration without a release.
//
// Defaults:
//
//	itemsPrice    = round2(subtotal)
//	shippingPrice = itemsPrice > 100 ? 0 : 10
//	taxPrice      = round2(0.15 * itemsPrice)
//	totalPrice    = itemsPrice + shippingPrice + taxPrice
package pricing
