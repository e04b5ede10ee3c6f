package services

import "errors"

var (
	// ErrNotFound indicates the referenced entity does not exist
	ErrNotFound = errors.New("entity not found")

	// ErrUnsupportedCurrency indicates the currency is not in the supported set
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrNoApplicablePricing indicates no pricing row qualifies for the
	// requested date. This must surface to callers: defaulting the price
	// would silently produce zero-cost carts.
	ErrNoApplicablePricing = errors.New("no applicable pricing configuration")

	// ErrInvalidQuantity indicates a non-positive point quantity
	ErrInvalidQuantity = errors.New("invalid point quantity")

	// ErrPersistence indicates a generic lower-layer storage failure
	ErrPersistence = errors.New("persistence failure")
)
