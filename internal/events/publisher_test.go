package events

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &kafkaPublisher{writer: w}

	err := p.Publish(context.Background(), Event{
		Type:    TypePaymentIntentCreated,
		Key:     "sess-1",
		Payload: map[string]any{"amount": 1999, "currency": "ron"},
	})

	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("sess-1"), w.msgs[0].Key)
	assert.JSONEq(t, `{"amount":1999,"currency":"ron"}`, string(w.msgs[0].Value))
	require.Len(t, w.msgs[0].Headers, 1)
	assert.Equal(t, "event_type", w.msgs[0].Headers[0].Key)
	assert.Equal(t, []byte(TypePaymentIntentCreated), w.msgs[0].Headers[0].Value)
}

func TestPublishBestEffort(t *testing.T) {
	t.Run("nil_publisher_is_noop", func(t *testing.T) {
		PublishBestEffort(context.Background(), nil, Event{Type: "x"})
	})

	t.Run("publish_error_is_swallowed", func(t *testing.T) {
		p := &kafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}
		PublishBestEffort(context.Background(), p, Event{Type: "x", Payload: struct{}{}})
	})
}
