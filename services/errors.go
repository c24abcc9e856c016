package services

import "errors"

// Domain errors raised by the cart engine. Handlers map these onto the
// response envelope; anything else is treated as a store failure.
var (
	ErrUserNotFound      = errors.New("user data not found")
	ErrVenueNotFound     = errors.New("venue not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrProductInactive   = errors.New("product out of stock or inactive")
	ErrOrderNotFound     = errors.New("order not found")
	ErrZeroTotal         = errors.New("price total is 0")
	ErrProductIDRequired = errors.New("productId is required")
	ErrCartConflict      = errors.New("cart was modified concurrently")
)
