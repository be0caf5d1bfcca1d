package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product does not exist or is not
	// visible (inactive or unapproved).
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidLimit is returned for negative result limits.
	ErrInvalidLimit = errors.New("limit must not be negative")
)
