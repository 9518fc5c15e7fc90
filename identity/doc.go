// Package identity manages storefront accounts: sign-in, sign-up and profile
// updates. Each successful call returns a Session carrying a freshly issued
// bearer credential.
package identity
