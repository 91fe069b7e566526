package visit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTracker(t *testing.T) {
	tracker := SetTracker{}

	t.Run("empty cookie means unvisited", func(t *testing.T) {
		assert.False(t, tracker.HasVisited("", "aaa"))
	})

	t.Run("marking makes a code visited", func(t *testing.T) {
		v := tracker.MarkVisited("", "aaa")
		assert.True(t, tracker.HasVisited(v, "aaa"))
		assert.False(t, tracker.HasVisited(v, "bbb"))
	})

	t.Run("marks accumulate per code", func(t *testing.T) {
		v := tracker.MarkVisited("", "aaa")
		v = tracker.MarkVisited(v, "bbb")

		assert.True(t, tracker.HasVisited(v, "aaa"))
		assert.True(t, tracker.HasVisited(v, "bbb"))
		assert.False(t, tracker.HasVisited(v, "ccc"))
	})

	t.Run("marking twice does not change the value", func(t *testing.T) {
		v := tracker.MarkVisited("", "aaa")
		assert.Equal(t, v, tracker.MarkVisited(v, "aaa"))
	})

	t.Run("garbage cookie value is treated as empty", func(t *testing.T) {
		assert.False(t, tracker.HasVisited("%%%not-base64%%%", "aaa"))

		v := tracker.MarkVisited("%%%not-base64%%%", "aaa")
		assert.True(t, tracker.HasVisited(v, "aaa"))
	})
}

func TestFlagTracker(t *testing.T) {
	tracker := FlagTracker{}

	t.Run("empty cookie means unvisited", func(t *testing.T) {
		assert.False(t, tracker.HasVisited("", "aaa"))
	})

	t.Run("any marker covers every code", func(t *testing.T) {
		v := tracker.MarkVisited("", "aaa")
		assert.True(t, tracker.HasVisited(v, "aaa"))
		assert.True(t, tracker.HasVisited(v, "bbb"))
	})
}

// The capability contract: once marked, a code reads as visited,
// whatever the previous cookie value was.
func TestTracker_MarkThenHasVisited(t *testing.T) {
	trackers := map[string]Tracker{
		"set":  SetTracker{},
		"flag": FlagTracker{},
	}
	previous := []string{"", "1", SetTracker{}.MarkVisited("", "zzz"), "garbage"}
	codes := []string{"aaa", "some-code", "a_b_c"}

	for name, tracker := range trackers {
		for _, prev := range previous {
			for _, code := range codes {
				assert.True(t, tracker.HasVisited(tracker.MarkVisited(prev, code), code),
					"tracker=%s prev=%q code=%q", name, prev, code)
			}
		}
	}
}
