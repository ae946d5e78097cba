// Package common defines shared constants and sentinel errors used across
// micro-log components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage adapter errors.
	ErrNotConfigured = errors.New("storage location not configured")
	ErrInvalidPath   = errors.New("invalid path")
	ErrNotFound      = errors.New("not found")
	ErrIO            = errors.New("storage i/o failure")

	// Encryption / session errors.
	ErrDecryption        = errors.New("decryption failed")
	ErrNoKey             = errors.New("no encryption key held")
	ErrInvalidPassphrase = errors.New("invalid passphrase")

	// Mutation boundary errors.
	ErrInvalidStatus   = errors.New("invalid idea status")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date")
)
