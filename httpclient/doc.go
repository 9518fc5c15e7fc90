// Package httpclient is the storefront's outbound HTTP client: JSON request
// encoding, bearer authentication, status classification and extraction of
// the server's error envelope.
//
//	client, err := httpclient.New(httpclient.Config{BaseURL: "http://localhost:5000"})
//
//	product, err := httpclient.Get[catalog.Product](client, ctx, "/api/products/"+id)
//
//	_, err = httpclient.Post[orders.Order](client, ctx, "/api/orders", req,
//	    httpclient.WithRequestAuth(httpclient.BearerAuth(token)))
//
// Errors for 4xx/5xx responses are *Error values whose Message is the
// server's "error.message" when the body carries one.
package httpclient
