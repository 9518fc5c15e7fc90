// Package auth holds the bearer credential contract shared by the API and
// its clients.
//
//   - auth/token    issues and verifies the signed 30 day session credential
//   - auth/password bcrypt hashing for stored passwords
//   - auth/authctx  request context propagation of verified claims
//
// Config composes the subpackage configs for loading from YAML/env:
//
//	auth:
//	  jwt:
//	    secret: "change-me"
//	    ttl: "720h"
//	  password:
//	    bcrypt_cost: 10
package auth
