// Package common defines shared sentinel errors used across the import
// pipeline. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrStoreNotInitialized = errors.New("store is not initialized")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")
)
