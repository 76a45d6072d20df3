package kafka

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "deposit.events", zerolog.Nop())

	err := p.Publish(context.Background(), "dep-1", []byte(`{"type":"DEPOSIT_APPROVED"}`), map[string]string{
		"event-type": "DEPOSIT_APPROVED",
		"signature":  "abc",
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, []byte("dep-1"), msg.Key)
	assert.JSONEq(t, `{"type":"DEPOSIT_APPROVED"}`, string(msg.Value))
	assert.WithinDuration(t, time.Now(), msg.Time, time.Minute)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "DEPOSIT_APPROVED", headers["event-type"])
	assert.Equal(t, "abc", headers["signature"])
}

func TestPublisher_PublishError(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	p := newPublisher(w, "deposit.events", zerolog.Nop())

	err := p.Publish(context.Background(), "dep-1", []byte("{}"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deposit.events")
}

func TestPublisher_Close(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, newPublisher(w, "t", zerolog.Nop()).Close())
	assert.True(t, w.closed)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.Publish(context.Background(), "k", nil, nil))
	assert.NoError(t, p.Close())
}

func TestHealthCheck_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	hc := NewHealthCheck([]string{addr})
	assert.Equal(t, "kafka", hc.Name())
	assert.Error(t, hc.Ping(ctx))
}

func TestHealthCheck_NoBrokers(t *testing.T) {
	assert.Error(t, NewHealthCheck(nil).Ping(context.Background()))
}
