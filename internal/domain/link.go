package domain

import "time"

// LinkState marks whether a link may be resolved.
type LinkState string

const (
	StateActive   LinkState = "active"
	StateInactive LinkState = "inactive"
)

// Link is the aggregate root representing a shortened link.
// Links are created and mutated by the admin console (an external
// collaborator); the resolution path only reads them and increments
// the click counter through the repository.
type Link struct {
	id           int64
	shortCode    ShortCode
	longURL      string
	state        LinkState
	clickCount   int64
	contactEmail string
	description  string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewLink creates a new active Link.
func NewLink(shortCode ShortCode, longURL string) *Link {
	now := time.Now().UTC()
	return &Link{
		shortCode: shortCode,
		longURL:   longURL,
		state:     StateActive,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructLink reconstructs a Link from persistence.
func ReconstructLink(
	id int64,
	shortCode ShortCode,
	longURL string,
	state LinkState,
	clickCount int64,
	contactEmail string,
	description string,
	createdAt time.Time,
	updatedAt time.Time,
) *Link {
	return &Link{
		id:           id,
		shortCode:    shortCode,
		longURL:      longURL,
		state:        state,
		clickCount:   clickCount,
		contactEmail: contactEmail,
		description:  description,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the link's unique identifier.
func (l *Link) ID() int64 {
	return l.id
}

// ShortCode returns the link's short code.
func (l *Link) ShortCode() ShortCode {
	return l.shortCode
}

// LongURL returns the destination URL.
func (l *Link) LongURL() string {
	return l.longURL
}

// State returns the link's state.
func (l *Link) State() LinkState {
	return l.state
}

// ClickCount returns the number of times this link has been resolved.
func (l *Link) ClickCount() int64 {
	return l.clickCount
}

// ContactEmail returns the optional owner contact.
func (l *Link) ContactEmail() string {
	return l.contactEmail
}

// Description returns the optional description.
func (l *Link) Description() string {
	return l.description
}

// CreatedAt returns when the link was created.
func (l *Link) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns when the link was last updated.
func (l *Link) UpdatedAt() time.Time {
	return l.updatedAt
}

// IsActive reports whether the link may be resolved.
func (l *Link) IsActive() bool {
	return l.state == StateActive
}

// Deactivate takes the link out of resolution. A cached copy may keep
// redirecting until its TTL lapses; that staleness window is accepted.
func (l *Link) Deactivate() {
	l.state = StateInactive
	l.updatedAt = time.Now().UTC()
}

// SetID sets the link's ID. Called by the repository after persistence.
func (l *Link) SetID(id int64) {
	l.id = id
}

// Visit is a single recorded resolution of a link.
type Visit struct {
	ShortCode string
	LongURL   string
	UserAgent string
	IPAddress string
	Referer   string
	VisitedAt time.Time
}
