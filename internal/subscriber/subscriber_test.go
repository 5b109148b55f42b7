package subscriber_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/config"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/subscriber"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	pending   []kafka.Message
	committed []kafka.Message
	done      chan struct{}
	want      int
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	return &fakeReader{pending: msgs, done: make(chan struct{}), want: len(msgs)}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.pending) > 0 {
		msg := r.pending[0]
		r.pending = r.pending[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	if len(r.committed) == r.want {
		close(r.done)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeDLQ struct {
	mu       sync.Mutex
	messages []models.DLQMessage
	topics   []string
}

func (d *fakeDLQ) Publish(ctx context.Context, topic string, key string, message interface{}) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.topics = append(d.topics, topic)
	d.messages = append(d.messages, message.(models.DLQMessage))
	return nil
}

var fastRetry = config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

func listenUntilCommitted(t *testing.T, reader *fakeReader, dlq *fakeDLQ, handler subscriber.Handler) {
	t.Helper()
	consumer := subscriber.NewWithReaders([]subscriber.MessageReader{reader}, dlq, models.PaymentCallbacksDLQ, fastRetry)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		consumer.Listen(ctx, handler)
		close(stopped)
	}()

	select {
	case <-reader.done:
	case <-time.After(2 * time.Second):
		t.Fatal("messages were not committed")
	}
	cancel()
	<-stopped
}

func TestListen_CommitsHandledMessagesInOrder(t *testing.T) {
	reader := newFakeReader(
		kafka.Message{Topic: models.PaymentCallbacksTopic, Key: []byte("pi_1"), Value: []byte("1"), Offset: 1},
		kafka.Message{Topic: models.PaymentCallbacksTopic, Key: []byte("pi_1"), Value: []byte("2"), Offset: 2},
	)
	dlq := &fakeDLQ{}
	var seen []string

	listenUntilCommitted(t, reader, dlq, func(ctx context.Context, topic string, value []byte) error {
		seen = append(seen, string(value))
		return nil
	})

	assert.Equal(t, []string{"1", "2"}, seen)
	require.Len(t, reader.committed, 2)
	assert.Equal(t, int64(2), reader.committed[1].Offset)
	assert.Empty(t, dlq.messages)
}

func TestListen_RetriesTransientErrors(t *testing.T) {
	reader := newFakeReader(kafka.Message{Topic: models.PaymentCallbacksTopic, Key: []byte("pi_1"), Value: []byte("v")})
	dlq := &fakeDLQ{}
	calls := 0

	listenUntilCommitted(t, reader, dlq, func(ctx context.Context, topic string, value []byte) error {
		calls++
		if calls < 3 {
			return errors.New("database unavailable")
		}
		return nil
	})

	assert.Equal(t, 3, calls)
	assert.Empty(t, dlq.messages)
}

func TestListen_ParksAfterExhaustingRetries(t *testing.T) {
	reader := newFakeReader(kafka.Message{Topic: models.PaymentCallbacksTopic, Key: []byte("pi_1"), Value: []byte("v")})
	dlq := &fakeDLQ{}
	calls := 0

	listenUntilCommitted(t, reader, dlq, func(ctx context.Context, topic string, value []byte) error {
		calls++
		return errors.New("database unavailable")
	})

	assert.Equal(t, 3, calls)
	require.Len(t, dlq.messages, 1)
	assert.Equal(t, models.PaymentCallbacksDLQ, dlq.topics[0])
	assert.Equal(t, "pi_1", dlq.messages[0].Key)
	assert.Equal(t, 3, dlq.messages[0].Attempts)
	assert.False(t, dlq.messages[0].Permanent)
	assert.Len(t, reader.committed, 1)
}

func TestListen_ParksPermanentErrorsImmediately(t *testing.T) {
	reader := newFakeReader(kafka.Message{Topic: models.PaymentCallbacksTopic, Key: []byte("re_1"), Value: []byte("v")})
	dlq := &fakeDLQ{}
	calls := 0

	listenUntilCommitted(t, reader, dlq, func(ctx context.Context, topic string, value []byte) error {
		calls++
		return models.Permanent(errors.New("refund amount mismatch"))
	})

	assert.Equal(t, 1, calls)
	require.Len(t, dlq.messages, 1)
	assert.True(t, dlq.messages[0].Permanent)
	assert.Contains(t, dlq.messages[0].Error, "refund amount mismatch")
}
