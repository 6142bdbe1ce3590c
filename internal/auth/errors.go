package auth

import "errors"

// Authentication errors.
var (
	// ErrMissingAuthHeader indicates the Authorization header is absent or
	// not in "Bearer <token>" form.
	ErrMissingAuthHeader = errors.New("not authenticated")

	// ErrInvalidToken indicates the token failed signature or expiry
	// verification. The message is the same for both cases.
	ErrInvalidToken = errors.New("could not validate credentials")
)
