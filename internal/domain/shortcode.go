package domain

import (
	"regexp"
	"strings"
)

const MaxShortCodeLength = 32

// Codes are matched case-insensitively; the canonical form is lowercase.
var shortCodeRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ShortCode is a value object representing a link short code.
// It is immutable, lowercase-normalized, and validated on creation.
type ShortCode struct {
	value string
}

// NewShortCode creates a ShortCode from a string, normalizing the case
// and validating the format.
func NewShortCode(code string) (ShortCode, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if err := validateShortCode(code); err != nil {
		return ShortCode{}, err
	}
	return ShortCode{value: code}, nil
}

// String returns the canonical string representation of the ShortCode.
func (s ShortCode) String() string {
	return s.value
}

// IsEmpty returns true if the ShortCode is empty.
func (s ShortCode) IsEmpty() bool {
	return s.value == ""
}

// Equals compares two ShortCodes for equality.
func (s ShortCode) Equals(other ShortCode) bool {
	return s.value == other.value
}

func validateShortCode(code string) error {
	if code == "" {
		return ErrInvalidCode
	}

	if len(code) > MaxShortCodeLength {
		return ErrInvalidCode
	}

	if !shortCodeRegex.MatchString(code) {
		return ErrInvalidCode
	}

	return nil
}
