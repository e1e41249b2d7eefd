package adapter

import "errors"

var (
	// ErrUnauthorized marks a 401 response: the provider rejected the
	// supplied credentials.
	ErrUnauthorized = errors.New("provider rejected credentials")

	// ErrEmailTaken marks a 409 response on account creation.
	ErrEmailTaken = errors.New("email already registered")

	// ErrProviderUnavailable marks a health probe failure.
	ErrProviderUnavailable = errors.New("provider unavailable")
)
