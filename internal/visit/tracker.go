// Package visit tracks which short codes a browser has already been
// redirected through, via a client-held cookie. The server never stores
// this state.
package visit

import (
	"encoding/base64"
	"encoding/json"

	"github.com/samber/lo"
)

// Tracker reads and rewrites the visit-state cookie value. Both methods
// are pure: MarkVisited receives the previous cookie value and returns
// the new one.
//
// For any tracker, HasVisited(MarkVisited(v, c), c) is true.
type Tracker interface {
	HasVisited(cookieValue, code string) bool
	MarkVisited(cookieValue, code string) string
}

// Compile-time interface checks
var (
	_ Tracker = SetTracker{}
	_ Tracker = FlagTracker{}
)

// SetTracker keeps the ordered set of visited codes, encoded as a
// base64url JSON array. Unreadable cookie values are treated as empty.
type SetTracker struct{}

// HasVisited reports whether code is in the cookie's visited set.
func (SetTracker) HasVisited(cookieValue, code string) bool {
	return lo.Contains(decodeCodes(cookieValue), code)
}

// MarkVisited appends code to the visited set if absent.
func (SetTracker) MarkVisited(cookieValue, code string) string {
	codes := decodeCodes(cookieValue)
	if lo.Contains(codes, code) {
		return cookieValue
	}
	return encodeCodes(append(codes, code))
}

// FlagTracker only remembers that the browser passed the transition
// page at least once, for any link. The code argument is ignored.
type FlagTracker struct{}

// HasVisited reports whether the marker is set.
func (FlagTracker) HasVisited(cookieValue, _ string) bool {
	return cookieValue != ""
}

// MarkVisited sets the marker.
func (FlagTracker) MarkVisited(_, _ string) string {
	return "1"
}

func decodeCodes(cookieValue string) []string {
	if cookieValue == "" {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookieValue)
	if err != nil {
		return nil
	}

	var codes []string
	if err := json.Unmarshal(raw, &codes); err != nil {
		return nil
	}
	return codes
}

func encodeCodes(codes []string) string {
	raw, err := json.Marshal(codes)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}
