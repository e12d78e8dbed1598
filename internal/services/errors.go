// internal/services/errors.go
package services

import "errors"

var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrDuplicateEmail           = errors.New("email already in use")
	ErrDuplicateBrand           = errors.New("brand name or slug already exists")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrItemsRequired            = errors.New("at least one item is required")
	ErrItemProductRequired      = errors.New("product id is required for each item")
	ErrInvalidUserID            = errors.New("userId is invalid")
	ErrInvalidStatus            = errors.New("invalid order status")
)

// ProductNotFoundError names the offending identifier so the caller can tell
// which line of a multi-item order was rejected.
type ProductNotFoundError struct {
	ID string
}

func (e *ProductNotFoundError) Error() string {
	return "product not found: " + e.ID
}
