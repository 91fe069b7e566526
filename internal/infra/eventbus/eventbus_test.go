package eventbus

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-shortlink/internal/domain/event"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/suite"
)

type EventBusTestSuite struct {
	suite.Suite
	bus *EventBus
}

func TestEventBusTestSuite(t *testing.T) {
	suite.Run(t, new(EventBusTestSuite))
}

func (s *EventBusTestSuite) SetupTest() {
	s.bus = NewEventBus(watermill.NopLogger{})
}

func (s *EventBusTestSuite) TearDownTest() {
	s.bus.Close()
}

func (s *EventBusTestSuite) TestPublishAndSubscribe() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := s.bus.Subscriber().Subscribe(ctx, LinkEventsTopic)
	s.Require().NoError(err)

	evt := event.NewLinkVisited("aaa", "https://example.com", "Mozilla/5.0", "127.0.0.1", "")
	s.Require().NoError(s.bus.Publish(ctx, evt))

	select {
	case msg := <-messages:
		envelope, err := MessageToEnvelope(msg)
		s.Require().NoError(err)
		s.Equal("link.visited", envelope.EventName)
		s.Equal("aaa", envelope.AggregateID)
		s.Equal(evt.EventID(), envelope.EventID)
		msg.Ack()
	case <-ctx.Done():
		s.Fail("timed out waiting for published event")
	}
}

func (s *EventBusTestSuite) TestEventToMessage() {
	evt := event.NewLinkVisited("aaa", "https://example.com", "Mozilla/5.0", "127.0.0.1", "https://referrer.example")

	msg, err := EventToMessage(evt)
	s.Require().NoError(err)

	s.Equal(evt.EventID(), msg.UUID)
	s.Equal("link.visited", msg.Metadata.Get("event_name"))
	s.Equal("aaa", msg.Metadata.Get("aggregate_id"))

	envelope, err := MessageToEnvelope(msg)
	s.Require().NoError(err)
	s.Equal(evt.EventID(), envelope.EventID)
	s.Equal("link.visited", envelope.EventName)
	s.WithinDuration(evt.OccurredAt(), envelope.OccurredAt, time.Second)

	var payload event.LinkVisited
	s.Require().NoError(json.Unmarshal(envelope.Payload, &payload))
	s.Equal("aaa", payload.ShortCode)
	s.Equal("https://example.com", payload.LongURL)
	s.Equal("Mozilla/5.0", payload.UserAgent)
	s.Equal("127.0.0.1", payload.IPAddress)
	s.Equal("https://referrer.example", payload.Referer)
}

func (s *EventBusTestSuite) TestMessageToEnvelope_InvalidPayload() {
	msg, err := EventToMessage(event.NewLinkVisited("aaa", "https://example.com", "", "", ""))
	s.Require().NoError(err)

	msg.Payload = []byte("not json")
	_, err = MessageToEnvelope(msg)
	s.Error(err)
}
