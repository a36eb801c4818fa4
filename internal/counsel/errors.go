package counsel

import "errors"

var (
	// ErrValidation marks request input failures. Handlers translate it to
	// a 400 response.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidInput is returned by Normalize when the provider text is
	// empty or whitespace-only.
	ErrInvalidInput = errors.New("recommendation text is empty")

	// ErrNoDataParsed is returned by Parse when no recognized section
	// produced a single item.
	ErrNoDataParsed = errors.New("no recommendation data parsed")

	// ErrNoProviders is returned when the service has no generators wired.
	ErrNoProviders = errors.New("no recommendation providers configured")
)
