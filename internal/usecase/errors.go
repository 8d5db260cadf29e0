package usecase

import "errors"

// Sentinel errors shared by the usecases. Handlers map these onto HTTP
// status codes; anything not listed here is treated as a 500.
var (
	ErrValidation          = errors.New("validation failed")
	ErrEmptyStore          = errors.New("no items to check out")
	ErrProductUnavailable  = errors.New("product is not available")
	ErrBundleItemForbidden = errors.New("bundles cannot contain other bundles")
	ErrBundleConstraint    = errors.New("bundle item count out of bounds")
	ErrMinOrderAmount      = errors.New("order total below minimum")
	ErrStatusTransition    = errors.New("order status cannot move backwards")
	ErrForbidden           = errors.New("forbidden")
)
