// Package resilience retries transient failures with exponential backoff.
//
//	cfg := resilience.RetryConfig{MaxAttempts: 3, RetryIf: httpclient.IsRetryable}
//	products, err := resilience.Retry(ctx, cfg, func(attempt int) ([]Product, error) {
//	    return fetch(ctx)
//	})
package resilience
