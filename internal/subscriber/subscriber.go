package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/config"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/metrics"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// MessageReader is the subset of *kafka.Reader the consumer needs. Offsets are
// committed explicitly after a message is handled or parked.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type DLQPublisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

type Handler func(ctx context.Context, topic string, value []byte) error

type KafkaConsumer struct {
	Readers      []MessageReader
	DLQPublisher DLQPublisher
	DLQTopic     string
	RetryConfig  config.RetryConfig
}

// NewMultiTopicConsumer starts workers readers per topic, all in the same group, so
// partitions are spread across them and each partition is read in order.
func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	workers int,
	dlq DLQPublisher,
	dlqTopic string,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	if workers < 1 {
		workers = 1
	}
	var readers []MessageReader
	for _, topic := range topics {
		for i := 0; i < workers; i++ {
			readers = append(readers, kafka.NewReader(kafka.ReaderConfig{
				Brokers:     brokers,
				GroupID:     groupID,
				Topic:       topic,
				MinBytes:    1,
				MaxBytes:    10e6,
				StartOffset: kafka.FirstOffset,
			}))
		}
	}

	return NewWithReaders(readers, dlq, dlqTopic, retryConfig)
}

func NewWithReaders(readers []MessageReader, dlq DLQPublisher, dlqTopic string, retryConfig config.RetryConfig) *KafkaConsumer {
	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		DLQTopic:     dlqTopic,
		RetryConfig:  retryConfig.WithDefaults(),
	}
}

// Listen consumes until ctx is cancelled and then returns once every reader stopped.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	var wg sync.WaitGroup
	for _, reader := range c.Readers {
		wg.Add(1)
		go func(r MessageReader) {
			defer wg.Done()
			for {
				msg, err := r.FetchMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					logrus.Errorf("Kafka fetch error: %v", err)
					if !sleep(ctx, c.RetryConfig.BaseDelay) {
						return
					}
					continue
				}
				if !c.processMessage(ctx, msg, handler) {
					return
				}
				if err := r.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
					logrus.WithFields(logrus.Fields{
						"topic":     msg.Topic,
						"partition": msg.Partition,
						"offset":    msg.Offset,
					}).Errorf("Failed to commit offset: %v", err)
				}
			}
		}(reader)
	}
	wg.Wait()
}

func (c *KafkaConsumer) Close() error {
	var errs []error
	for _, r := range c.Readers {
		errs = append(errs, r.Close())
	}
	return errors.Join(errs...)
}

// processMessage retries transient handler errors and parks the message when they
// persist or the error is permanent. It returns false when ctx was cancelled before
// the message was settled, in which case its offset must not be committed.
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler Handler) bool {
	log := logrus.WithFields(logrus.Fields{
		"topic": msg.Topic,
		"key":   string(msg.Key),
	})

	var err error
	attempts := 0
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		attempts++
		err = handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return true
		}
		if models.IsPermanent(err) {
			log.Errorf("Permanent handler error, parking message: %v", err)
			break
		}
		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := c.RetryConfig.Backoff(attempt)
		log.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		if !sleep(ctx, backoff) {
			return false
		}
	}

	log.Errorf("Message failed after %d attempts", attempts)
	return c.park(ctx, msg, err, attempts)
}

// park retries the DLQ publish until it succeeds or ctx is cancelled.
func (c *KafkaConsumer) park(ctx context.Context, msg kafka.Message, cause error, attempts int) bool {
	if c.DLQPublisher == nil {
		return true
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Error:         cause.Error(),
		Permanent:     models.IsPermanent(cause),
		Timestamp:     time.Now().UTC(),
		Attempts:      attempts,
	}
	reason := "retries_exhausted"
	if dlqMessage.Permanent {
		reason = "permanent"
	}

	for attempt := 0; ; attempt++ {
		err := c.DLQPublisher.Publish(ctx, c.DLQTopic, string(msg.Key), dlqMessage)
		if err == nil {
			metrics.DLQMessages.WithLabelValues(msg.Topic, reason).Inc()
			logrus.Warnf("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
			return true
		}
		logrus.Errorf("Failed to send message to DLQ: %v", err)
		if !sleep(ctx, c.RetryConfig.Backoff(min(attempt, 10))) {
			return false
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}
