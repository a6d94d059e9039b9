package domain

import "errors"

// Cart error types

var (
	// ErrInvalidQuantity indicates a quantity below one was supplied to an add
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrInvalidPrice indicates a negative unit price
	ErrInvalidPrice = errors.New("unit price must not be negative")

	// ErrCartNotFound indicates an unknown or malformed cart id
	ErrCartNotFound = errors.New("cart not found")

	// ErrEmptyCart indicates a checkout was attempted on a cart without items
	ErrEmptyCart = errors.New("cart is empty")

	// ErrSnapshotStorage indicates the durable cart storage could not be read or written
	ErrSnapshotStorage = errors.New("cart snapshot storage failure")
)

// Catalog and order error types

var (
	// ErrProductNotFound indicates the requested product does not exist
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidRequest indicates an invalid request was made
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotifierUnavailable indicates order notifications are not configured
	ErrNotifierUnavailable = errors.New("order notifier unavailable")
)
