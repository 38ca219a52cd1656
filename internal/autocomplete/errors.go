package autocomplete

import "errors"

var (
	// ErrEngineUnavailable is returned when the engine is queried before a
	// successful load, or when every configured source failed to load.
	// Recoverable by reload.
	ErrEngineUnavailable = errors.New("autocomplete engine unavailable")
	// ErrQueryTooLong is returned when the query exceeds the configured
	// maximum length.
	ErrQueryTooLong = errors.New("query exceeds maximum length")
)
