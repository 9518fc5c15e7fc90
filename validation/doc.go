// Package validation checks request payloads.
//
// Struct tags are checked with go-playground/validator and reported under
// their JSON field names:
//
//	type SignInRequest struct {
//	    Email    string `json:"email" validate:"required,email"`
//	    Password string `json:"password" validate:"required"`
//	}
//	err := validation.Validate(req)
//
// Checks that do not fit a tag are collected with a Validator:
//
//	v := validation.New()
//	v.Custom(password == confirm, "confirmPassword", "Passwords do not match")
//	err := v.Validate()
package validation
