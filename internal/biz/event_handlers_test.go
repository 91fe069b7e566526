package biz

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go-shortlink/internal/domain"
	"go-shortlink/internal/domain/event"
	"go-shortlink/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVisitRepo struct {
	mu        sync.Mutex
	visits    []*domain.Visit
	recordErr error
}

func (f *fakeVisitRepo) Record(ctx context.Context, v *domain.Visit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recordErr != nil {
		return f.recordErr
	}
	f.visits = append(f.visits, v)
	return nil
}

func visitEnvelope(t *testing.T, evt event.LinkVisited) *eventbus.EventEnvelope {
	t.Helper()
	msg, err := eventbus.EventToMessage(evt)
	require.NoError(t, err)
	envelope, err := eventbus.MessageToEnvelope(msg)
	require.NoError(t, err)
	return envelope
}

func TestVisitSinkHandler_Handle(t *testing.T) {
	repo := &fakeVisitRepo{}
	handler := NewVisitSinkHandler(repo, log.DefaultLogger)

	evt := event.NewLinkVisited("aaa", "https://example.com", "Mozilla/5.0", "127.0.0.1", "https://referrer.example")
	err := handler.Handle(context.Background(), visitEnvelope(t, evt))
	require.NoError(t, err)

	require.Len(t, repo.visits, 1)
	v := repo.visits[0]
	assert.Equal(t, "aaa", v.ShortCode)
	assert.Equal(t, "https://example.com", v.LongURL)
	assert.Equal(t, "Mozilla/5.0", v.UserAgent)
	assert.Equal(t, "127.0.0.1", v.IPAddress)
	assert.Equal(t, "https://referrer.example", v.Referer)
	assert.False(t, v.VisitedAt.IsZero())
}

func TestVisitSinkHandler_SwallowsRepositoryErrors(t *testing.T) {
	repo := &fakeVisitRepo{recordErr: errors.New("db down")}
	handler := NewVisitSinkHandler(repo, log.DefaultLogger)

	evt := event.NewLinkVisited("aaa", "https://example.com", "", "", "")
	err := handler.Handle(context.Background(), visitEnvelope(t, evt))

	assert.NoError(t, err, "a lost analytics row must not trigger redelivery")
}

func TestVisitLogHandler_Handle(t *testing.T) {
	handler := NewVisitLogHandler(log.DefaultLogger)

	evt := event.NewLinkVisited("aaa", "https://example.com", "", "", "")
	err := handler.Handle(context.Background(), visitEnvelope(t, evt))

	assert.NoError(t, err)
}
