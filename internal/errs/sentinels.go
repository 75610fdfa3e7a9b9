// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a record with the same business key is present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrTokenExpired indicates the assertion is past its expiry window.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("token invalid")
)
