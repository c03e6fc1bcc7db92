package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"shareit/config"
	"shareit/infras/kafka"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/shared/constant"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TypeCreated  = "booking.created"
	TypeApproved = "booking.approved"
	TypeRejected = "booking.rejected"

	headerEventID   = "event_id"
	headerEventType = "event_type"
)

// Event is the payload published on every booking status change.
type Event struct {
	ID         string    `json:"event_id"`
	Type       string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	BookerID   int64     `json:"booker_id"`
	OwnerID    int64     `json:"owner_id"`
	Status     string    `json:"status"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

func New(eventType string, booking model.Booking, now time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: now,
		BookingID:  booking.ID,
		ItemID:     booking.ItemID,
		BookerID:   booking.BookerID,
		OwnerID:    booking.ItemOwnerID,
		Status:     booking.Status.String(),
		Start:      booking.Start,
		End:        booking.End,
	}
}

// TypeFor returns the event type announcing a booking entering status.
func TypeFor(status model.Status) string {
	switch status {
	case model.StatusApproved:
		return TypeApproved
	case model.StatusRejected:
		return TypeRejected
	default:
		return TypeCreated
	}
}

// Publisher sends events in the background. Delivery failures are logged and never reach the caller.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topics.Booking,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event Event) {
	go func() {
		c, scope := p.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.Publish")
		defer scope.End()

		scope.SetAttribute("event.type", event.Type)

		err := p.client.SendMessages(c, p.topic, ToMessage(event))
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("eventType", event.Type).Int64("bookingID", event.BookingID).Msg("failed to publish booking event")
		}
	}()
}

// ToMessage keys the message by booking id so that events of one booking stay ordered.
func ToMessage(event Event) kafka.Message {
	return kafka.Message{
		Key:   strconv.FormatInt(event.BookingID, 10),
		Value: event,
		Headers: map[string]string{
			headerEventID:   event.ID,
			headerEventType: event.Type,
		},
	}
}
