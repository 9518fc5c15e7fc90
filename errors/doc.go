// Package errors provides the storefront's structured error type.
//
// Every failure that crosses an HTTP boundary is an *AppError carrying a
// machine-readable code, the HTTP status to answer with and a message safe
// to show to the shopper. Handlers pass errors to server.RespondWithError,
// which renders the ErrorResponse envelope.
package errors
