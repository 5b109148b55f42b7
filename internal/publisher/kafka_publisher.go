package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/config"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	Writers     map[string]MessageWriter
	RetryConfig config.RetryConfig
}

// NewKafkaPublisher creates one writer per topic. Messages are hashed by key so all
// messages for one key land on the same partition.
func NewKafkaPublisher(brokers []string, topics []string, retryConfig config.RetryConfig) *KafkaPublisher {
	writers := make(map[string]MessageWriter)
	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  t,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		}
	}

	return NewWithWriters(writers, retryConfig)
}

func NewWithWriters(writers map[string]MessageWriter, retryConfig config.RetryConfig) *KafkaPublisher {
	return &KafkaPublisher{
		Writers:     writers,
		RetryConfig: retryConfig.WithDefaults(),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key string, message interface{}) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now().UTC(),
	}

	return p.publishWithRetry(ctx, writer, msg, topic)
}

func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer MessageWriter, msg kafka.Message, topic string) error {
	var lastErr error

	for attempt := 0; attempt < p.RetryConfig.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				logrus.WithField("topic", topic).Infof("Message published after %d attempts", attempt+1)
			}
			return nil
		}

		lastErr = err

		if attempt == p.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := p.RetryConfig.Backoff(attempt)

		logrus.WithFields(logrus.Fields{
			"topic": topic,
			"key":   string(msg.Key),
		}).Warnf("Publish retry %d/%d after %v: %v", attempt+1, p.RetryConfig.MaxAttempts, delay, err)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

func (p *KafkaPublisher) Close() error {
	var errs []error
	for topic, w := range p.Writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing writer for %s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}
