package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-shortlink/internal/domain/event"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingHandler struct {
	mu        sync.Mutex
	name      string
	eventName string
	envelopes []*EventEnvelope
}

func (h *capturingHandler) HandlerName() string { return h.name }
func (h *capturingHandler) EventName() string   { return h.eventName }

func (h *capturingHandler) Handle(_ context.Context, envelope *EventEnvelope) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.envelopes = append(h.envelopes, envelope)
	return nil
}

func (h *capturingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.envelopes)
}

func TestRouter_DeliversMatchingEvents(t *testing.T) {
	logger := watermill.NopLogger{}
	bus := NewEventBus(logger)
	defer bus.Close()

	router, err := NewRouter(bus, logger)
	require.NoError(t, err)
	defer router.Close()

	matching := &capturingHandler{name: "visit-capture", eventName: "link.visited"}
	other := &capturingHandler{name: "other-capture", eventName: "link.created"}
	router.AddHandler(matching)
	router.AddHandler(other)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = router.Run(ctx)
	}()
	<-router.Running()

	evt := event.NewLinkVisited("aaa", "https://example.com", "Mozilla/5.0", "127.0.0.1", "")
	require.NoError(t, bus.Publish(ctx, evt))

	assert.Eventually(t, func() bool {
		return matching.count() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Handlers with a different event name see the message but skip it.
	assert.Never(t, func() bool {
		return other.count() > 0
	}, 200*time.Millisecond, 10*time.Millisecond)

	matching.mu.Lock()
	defer matching.mu.Unlock()
	assert.Equal(t, evt.EventID(), matching.envelopes[0].EventID)
	assert.Equal(t, "aaa", matching.envelopes[0].AggregateID)
}
