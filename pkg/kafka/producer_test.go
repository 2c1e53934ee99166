package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	written []kafka.Message
	err     error
	closed  bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func buildMessage(t *testing.T) Message {
	t.Helper()
	msg, err := NewMessage().
		WithKey("r41").
		WithEventType("reservation.created").
		WithCorrelationID("req-1").
		WithValue(map[string]any{"id": "r41", "total": 16240.0}).
		Build()
	require.NoError(t, err)
	return msg
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestMessageBuilder(t *testing.T) {
	msg := buildMessage(t)

	assert.Equal(t, "r41", msg.Key)
	assert.NotEmpty(t, msg.GetEventID())
	assert.Equal(t, "reservation.created", msg.GetEventType())
	assert.Equal(t, "req-1", msg.GetCorrelationID())
	assert.NotEmpty(t, msg.Headers[HeaderTimestamp])

	var decoded map[string]any
	require.NoError(t, msg.DecodeValue(&decoded))
	assert.Equal(t, 16240.0, decoded["total"])
}

func TestMessageBuilder_EncodingError(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	assert.Error(t, err)
}

func TestProducer_Publish(t *testing.T) {
	writer := &fakeWriter{}
	p := newProducer(writer, nil, "freezestore.events")

	var seen []string
	p.Use(func(ctx context.Context, msg Message, next func(ctx context.Context, msg Message) error) error {
		seen = append(seen, msg.GetEventType())
		return next(ctx, msg)
	})

	require.NoError(t, p.Publish(context.Background(), buildMessage(t)))
	require.Len(t, writer.written, 1)
	assert.Equal(t, "r41", string(writer.written[0].Key))
	assert.Equal(t, "reservation.created", headerValue(writer.written[0], HeaderEventType))
	assert.Equal(t, []string{"reservation.created"}, seen)
}

func TestProducer_RejectsInvalidMessages(t *testing.T) {
	p := newProducer(&fakeWriter{}, nil, "freezestore.events")

	assert.ErrorIs(t, p.Publish(context.Background(), Message{Value: []byte("{}")}), ErrEmptyKey)
	assert.ErrorIs(t, p.Publish(context.Background(), Message{Key: "k"}), ErrEmptyValue)
}

func TestProducer_FailedWriteGoesToDLQ(t *testing.T) {
	writeErr := errors.New("connection refused")
	dlq := &fakeWriter{}
	p := newProducer(&fakeWriter{err: writeErr}, dlq, "freezestore.events")

	err := p.Publish(context.Background(), buildMessage(t))
	assert.ErrorIs(t, err, writeErr)
	require.Len(t, dlq.written, 1)
	assert.Equal(t, "freezestore.events", headerValue(dlq.written[0], HeaderOriginalTopic))
	assert.Equal(t, "connection refused", headerValue(dlq.written[0], HeaderDLQError))
}

func TestProducer_Close(t *testing.T) {
	writer, dlq := &fakeWriter{}, &fakeWriter{}
	p := newProducer(writer, dlq, "freezestore.events")

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, writer.closed)
	assert.True(t, dlq.closed)
	assert.ErrorIs(t, p.Publish(context.Background(), buildMessage(t)), ErrProducerClosed)
}

func TestNewProducer_RequiresBrokers(t *testing.T) {
	_, err := NewProducer(nil, nil)
	assert.ErrorIs(t, err, ErrNilConfig)
}
