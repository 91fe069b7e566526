package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLink(t *testing.T) {
	sc, err := NewShortCode("abc123")
	require.NoError(t, err)

	l := NewLink(sc, "https://example.com")

	assert.Zero(t, l.ID())
	assert.Equal(t, "abc123", l.ShortCode().String())
	assert.Equal(t, "https://example.com", l.LongURL())
	assert.Equal(t, StateActive, l.State())
	assert.True(t, l.IsActive())
	assert.Zero(t, l.ClickCount())
	assert.False(t, l.CreatedAt().IsZero())
}

func TestLink_Deactivate(t *testing.T) {
	sc, _ := NewShortCode("abc123")
	l := NewLink(sc, "https://example.com")

	l.Deactivate()

	assert.Equal(t, StateInactive, l.State())
	assert.False(t, l.IsActive())
}

func TestReconstructLink(t *testing.T) {
	sc, _ := NewShortCode("abc123")
	now := time.Now().UTC()

	l := ReconstructLink(42, sc, "https://example.com", StateActive, 7, "owner@example.com", "docs link", now, now)

	assert.Equal(t, int64(42), l.ID())
	assert.Equal(t, int64(7), l.ClickCount())
	assert.Equal(t, "owner@example.com", l.ContactEmail())
	assert.Equal(t, "docs link", l.Description())
}
