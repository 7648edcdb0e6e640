package services

import "errors"

var (
	// ErrNotFound covers both a missing record and one that is no longer
	// pending; callers cannot tell the cases apart and that is deliberate.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is authenticated but its role does not
	// permit the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials is returned on any login mismatch without
	// saying which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers missing, malformed, expired and revoked tokens.
	ErrInvalidToken = errors.New("invalid token")
)
