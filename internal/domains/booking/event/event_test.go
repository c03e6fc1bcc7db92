package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shareit/config"
	"shareit/infras/kafka"
	kafkaMocks "shareit/infras/kafka/mocks"
	"shareit/infras/otel/mocks"
	"shareit/internal/domains/booking/event"
	"shareit/internal/domains/booking/model"
)

func sampleBooking() model.Booking {
	return model.Booking{
		ID:          42,
		ItemID:      7,
		BookerID:    3,
		ItemOwnerID: 9,
		Status:      model.StatusApproved,
		Start:       time.Date(2030, time.June, 1, 10, 0, 0, 0, time.UTC),
		End:         time.Date(2030, time.June, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC)

	evt := event.New(event.TypeApproved, sampleBooking(), now)

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, event.TypeApproved, evt.Type)
	assert.Equal(t, now, evt.OccurredAt)
	assert.Equal(t, int64(9), evt.OwnerID)
	assert.Equal(t, "APPROVED", evt.Status)
}

func TestTypeFor(t *testing.T) {
	assert.Equal(t, event.TypeCreated, event.TypeFor(model.StatusWaiting))
	assert.Equal(t, event.TypeApproved, event.TypeFor(model.StatusApproved))
	assert.Equal(t, event.TypeRejected, event.TypeFor(model.StatusRejected))
}

func TestToMessage(t *testing.T) {
	evt := event.New(event.TypeCreated, sampleBooking(), time.Now())

	msg := event.ToMessage(evt)

	assert.Equal(t, "42", msg.Key)
	assert.Equal(t, evt.ID, msg.Headers["event_id"])
	assert.Equal(t, event.TypeCreated, msg.Headers["event_type"])
	assert.Equal(t, evt, msg.Value)
}

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
	}{
		{name: "delivered", sendErr: nil},
		{name: "delivery failure is swallowed", sendErr: errors.New("broker down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)

			cfg := &config.Config{}
			cfg.Kafka.Topics.Booking = "shareit.bookings"

			sent := make(chan kafka.Message, 1)

			client.EXPECT().
				SendMessages(gomock.Any(), "shareit.bookings", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
					sent <- messages[0]

					return tt.sendErr
				})

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			publisher := event.NewPublisher(client, cfg, mocks.NewOtel())
			publisher.Publish(ctx, event.New(event.TypeCreated, sampleBooking(), time.Now()))

			select {
			case msg := <-sent:
				require.Equal(t, "42", msg.Key)
			case <-time.After(2 * time.Second):
				t.Fatal("event was not published")
			}
		})
	}
}
