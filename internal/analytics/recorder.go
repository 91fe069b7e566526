// Package analytics provides the fire-and-forget visit recorder.
package analytics

import (
	"context"

	"go-shortlink/internal/domain/event"
	"go-shortlink/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is analytics providers.
var ProviderSet = wire.NewSet(NewBusRecorder)

// Recorder records resolved visits. Implementations must never block
// the response path; callers invoke Record off the critical path and
// isolate any error it returns.
type Recorder interface {
	Record(ctx context.Context, e event.LinkVisited) error
}

// Compile-time interface checks
var (
	_ Recorder = (*BusRecorder)(nil)
	_ Recorder = NopRecorder{}
)

// BusRecorder publishes visits as link.visited events on the event bus.
type BusRecorder struct {
	bus *eventbus.EventBus
	log *log.Helper
}

// NewBusRecorder creates a bus-backed recorder.
func NewBusRecorder(bus *eventbus.EventBus, logger log.Logger) Recorder {
	return &BusRecorder{
		bus: bus,
		log: log.NewHelper(logger),
	}
}

// Record publishes the visit event.
func (r *BusRecorder) Record(ctx context.Context, e event.LinkVisited) error {
	return r.bus.Publish(ctx, e)
}

// NopRecorder discards visits.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, event.LinkVisited) error {
	return nil
}
