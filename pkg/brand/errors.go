package brand

import "errors"

var (
	// ErrBrandNotFound is returned when no brand file exists for an id.
	ErrBrandNotFound = errors.New("brand: not found")
	// ErrInvalidBrand is returned when a brand file exists but fails to
	// parse or validate.
	ErrInvalidBrand = errors.New("brand: invalid config")
)
