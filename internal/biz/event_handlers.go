package biz

import (
	"context"
	"encoding/json"

	"go-shortlink/internal/domain"
	"go-shortlink/internal/domain/event"
	"go-shortlink/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
)

// Compile-time interface checks
var (
	_ eventbus.EventHandler = (*VisitLogHandler)(nil)
	_ eventbus.EventHandler = (*VisitSinkHandler)(nil)
)

// RegisterEventHandlers wires the visit event consumers onto the router.
func RegisterEventHandlers(router *eventbus.Router, visits domain.VisitRepository, logger log.Logger) {
	router.AddHandler(NewVisitLogHandler(logger))
	router.AddHandler(NewVisitSinkHandler(visits, logger))
}

// VisitLogHandler logs resolved visits.
type VisitLogHandler struct {
	log *log.Helper
}

// NewVisitLogHandler creates a new visit logging handler.
func NewVisitLogHandler(logger log.Logger) *VisitLogHandler {
	return &VisitLogHandler{log: log.NewHelper(logger)}
}

func (h *VisitLogHandler) HandlerName() string {
	return "visit_log_handler"
}

func (h *VisitLogHandler) EventName() string {
	return "link.visited"
}

// Handle logs the visit details.
func (h *VisitLogHandler) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	var evt event.LinkVisited
	if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
		return err
	}
	h.log.Infof("[Event] link visited: %s -> %s (ip: %s)", evt.ShortCode, evt.LongURL, evt.IPAddress)
	return nil
}

// VisitSinkHandler persists link.visited events as analytics rows.
type VisitSinkHandler struct {
	visits domain.VisitRepository
	log    *log.Helper
}

// NewVisitSinkHandler creates a new visit persistence handler.
func NewVisitSinkHandler(visits domain.VisitRepository, logger log.Logger) *VisitSinkHandler {
	return &VisitSinkHandler{
		visits: visits,
		log:    log.NewHelper(logger),
	}
}

func (h *VisitSinkHandler) HandlerName() string {
	return "visit_sink_handler"
}

func (h *VisitSinkHandler) EventName() string {
	return "link.visited"
}

// Handle writes the visit row. Errors are logged and swallowed; a lost
// analytics row must never trigger redelivery storms or affect serving.
func (h *VisitSinkHandler) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	var evt event.LinkVisited
	if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
		h.log.Warnf("failed to unmarshal LinkVisited event: %v", err)
		return nil
	}

	v := &domain.Visit{
		ShortCode: evt.ShortCode,
		LongURL:   evt.LongURL,
		UserAgent: evt.UserAgent,
		IPAddress: evt.IPAddress,
		Referer:   evt.Referer,
		VisitedAt: evt.OccurredAtT,
	}

	if err := h.visits.Record(ctx, v); err != nil {
		h.log.Warnf("failed to record visit for %q: %v", evt.ShortCode, err)
	}
	return nil
}
