package service

import "errors"

var (
	// ErrDuplicateSKU means a product with the requested SKU already exists.
	ErrDuplicateSKU = errors.New("duplicate sku")

	// ErrNoFields means an update carried no updatable field at all. Distinct
	// from a schema validation failure on purpose.
	ErrNoFields = errors.New("no fields to update")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
