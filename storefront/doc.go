// Package storefront is the headless client of the storefront API. A Client
// turns user intents (add to cart, sign in, place order) into API calls and
// state.Store dispatches. Its state is hydrated from and mirrored to a
// state.Storage so a session survives restarts.
//
// Stock checks are last-writer-wins per product: starting a new check for a
// product cancels the one in flight, and a response that arrives after a
// newer check started is dropped with ErrSuperseded.
package storefront
