package entity

import "errors"

// Domain errors. Handlers map each of these to exactly one HTTP status and
// machine-readable code; anything unrecognized becomes a 500 without leaking
// store internals.
var (
	ErrEmailExists        = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("email or password is not correct")
	ErrAccessDenied       = errors.New("access denied")
	ErrNotAuthorized      = errors.New("insufficient role for this resource")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrProductMismatch    = errors.New("item name or price does not match the catalog")
	ErrInvalidResetLink   = errors.New("invalid link or expired")
)
