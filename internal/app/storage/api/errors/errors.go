package storage

import "errors"

var (
	ErrLoginExists   = errors.New("given login already exists in storage")
	ErrLoginNotFound = errors.New("given login doesn't exist in storage")
	ErrUserNotFound  = errors.New("user with given id doesn't exist in storage")

	ErrListingNotFound = errors.New("listing with given id doesn't exist in storage")

	ErrOrderNotFound       = errors.New("order with given id doesn't exist in storage")
	ErrOrderStatusMismatch = errors.New("order status doesn't match the expected one")
)
