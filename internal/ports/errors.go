package ports

import "errors"

// Standard application-level errors.
// Adapters wrap the underlying transport or decoding error with one of these.
var (
	// General Errors
	ErrUnknown            = errors.New("unknown error occurred")
	ErrInvalidRequest     = errors.New("invalid request parameters or format")
	ErrTimeout            = errors.New("operation timed out")
	ErrContextCanceled    = errors.New("operation canceled via context")
	ErrConfigurationError = errors.New("invalid or missing configuration")

	// External fetch errors
	ErrFetchFailed      = errors.New("external fetch failed")
	ErrConnectionFailed = errors.New("failed to connect to the data source")
	ErrUnexpectedStatus = errors.New("data source returned a non-2xx status")
	ErrRateLimited      = errors.New("data source rate limit exceeded")
	ErrMalformedPayload = errors.New("malformed response payload")
	ErrMissingField     = errors.New("expected field missing from response")

	// Output errors
	ErrRenderFailed = errors.New("failed to render page")
	ErrWriteFailed  = errors.New("failed to write output file")
)
