package entities

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("permission denied")
	ErrNotFound     = errors.New("not found")
)

var (
	ErrProductNotFound    = fmt.Errorf("product %w", ErrNotFound)
	ErrOrderNotFound      = fmt.Errorf("order %w", ErrNotFound)
	ErrReviewNotFound     = fmt.Errorf("review %w", ErrNotFound)
	ErrCollectionNotFound = fmt.Errorf("collection %w", ErrNotFound)
)

// ValidationError reports a broken business rule. It is returned to the caller as is.
type ValidationError struct {
	Message string
	cause   error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

var (
	ErrDuplicateProduct     = &ValidationError{Message: "duplicate product"}
	ErrInvalidQuantity      = &ValidationError{Message: "quantity must be between 1 and 2147483647"}
	ErrTotalOutOfRange      = &ValidationError{Message: "order total must not exceed 99999999.99"}
	ErrValueOutOfRange      = &ValidationError{Message: "numeric value out of range"}
	ErrStatusChangeDenied   = &ValidationError{Message: "only administrators may change order status"}
	ErrInvalidStatus        = &ValidationError{Message: "unknown order status"}
	ErrUnknownProduct       = &ValidationError{Message: "product does not exist"}
	ErrDuplicateReview      = &ValidationError{Message: "user already reviewed this product"}
	ErrInvalidRating        = &ValidationError{Message: "rating must be between 1 and 5"}
	ErrDuplicateInSelection = &ValidationError{Message: "product must not repeat in a collection"}
	ErrInvalidPrice         = &ValidationError{Message: "price must be non-negative with at most 2 decimal places"}
)

// UnknownProductError reports the missing product id. It matches both
// ErrUnknownProduct and ErrProductNotFound.
func UnknownProductError(id int64) error {
	return &ValidationError{
		Message: fmt.Sprintf("product with id %d does not exist", id),
		cause:   errors.Join(ErrUnknownProduct, ErrProductNotFound),
	}
}
