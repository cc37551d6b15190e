package prizeconfig

import "errors"

var (
	// ErrNotFound is returned when the document does not exist at the source
	ErrNotFound = errors.New("prize configuration not found")

	// ErrUnexpectedStatus is returned for non-2xx HTTP responses
	ErrUnexpectedStatus = errors.New("unexpected status fetching prize configuration")

	// ErrDocumentTooLarge is returned when a response body exceeds the read limit
	ErrDocumentTooLarge = errors.New("prize configuration too large")
)
