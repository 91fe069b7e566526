package event

// LinkVisited is raised when a short link resolves to a destination,
// whatever the response shape (redirect or transition page) was.
type LinkVisited struct {
	Base
	ShortCode string
	LongURL   string
	UserAgent string
	IPAddress string
	Referer   string
}

// NewLinkVisited creates a new LinkVisited event.
func NewLinkVisited(shortCode, longURL, userAgent, ipAddress, referer string) LinkVisited {
	return LinkVisited{
		Base:      NewBase(shortCode),
		ShortCode: shortCode,
		LongURL:   longURL,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		Referer:   referer,
	}
}

// EventName returns the event name.
func (e LinkVisited) EventName() string {
	return "link.visited"
}
