package domain

import "context"

// LinkRepository defines the authoritative persistence operations the
// resolution path relies on. It is defined in the domain layer and
// implemented in the data layer.
type LinkRepository interface {
	// Save persists a Link. If the Link is new (ID == 0), it creates a
	// new record, otherwise it updates the existing one.
	Save(ctx context.Context, link *Link) error

	// FindActiveByCode retrieves an active link by its short code.
	// Returns nil, nil when no active link matches.
	FindActiveByCode(ctx context.Context, code ShortCode) (*Link, error)

	// IncrementClick atomically increments the click counter for a code.
	// It is independent of resolution and never called on the response's
	// critical path.
	IncrementClick(ctx context.Context, code ShortCode) error
}

// LinkCache is the fast code -> long URL tier consulted before the
// store. It is an accelerator, never a source of truth: an entry may be
// absent for an existing link or stale for a deactivated one.
type LinkCache interface {
	// Get looks up the long URL for a code. The three outcomes are
	// hit (url, true, nil), miss (_, false, nil), and cache
	// unavailable (_, false, err).
	Get(ctx context.Context, code ShortCode) (string, bool, error)

	// Set stores a code -> long URL mapping. Best-effort.
	Set(ctx context.Context, code ShortCode, longURL string) error
}

// VisitRepository persists resolved visits for analytics. Write-only.
type VisitRepository interface {
	Record(ctx context.Context, v *Visit) error
}
