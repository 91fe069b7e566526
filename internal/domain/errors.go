package domain

import "errors"

var (
	// ErrInvalidCode means the short code does not match the allowed format.
	ErrInvalidCode = errors.New("invalid short code")

	// ErrLinkNotFound means no active link exists for the code in cache or store.
	ErrLinkNotFound = errors.New("link not found")

	// ErrStoreUnavailable means the persistent store failed while the cache
	// could not answer either. This is the only resolution failure that is
	// operator-visible.
	ErrStoreUnavailable = errors.New("link store unavailable")
)
