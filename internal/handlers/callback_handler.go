package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/metrics"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/service"
	"github.com/sirupsen/logrus"
)

type CallbackProcessor interface {
	ProcessCallback(ctx context.Context, event *models.PaymentCallbackEvent) (service.Outcome, error)
}

// CallbackHandler feeds callback topic messages into the saga.
type CallbackHandler struct {
	Processor CallbackProcessor
	Topic     string
}

func NewCallbackHandler(processor CallbackProcessor, topic string) *CallbackHandler {
	if topic == "" {
		topic = models.PaymentCallbacksTopic
	}
	return &CallbackHandler{Processor: processor, Topic: topic}
}

// HandleEvents returns nil for messages that can never succeed so the subscriber
// commits them. Processing errors are returned for retry or parking.
func (h *CallbackHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	if topic != h.Topic {
		logrus.Errorf("topic not allowed %s", topic)
		return nil
	}

	var event models.PaymentCallbackEvent
	if err := json.Unmarshal(value, &event); err != nil {
		metrics.CallbacksMalformed.Inc()
		logrus.Errorf("Error parsing payment callback event %s", err.Error())
		return nil
	}
	if !event.CallbackType.IsValid() {
		metrics.CallbacksMalformed.Inc()
		logrus.Errorf("Dropping payment callback %s with unknown type %q", event.CorrelationID, event.CallbackType)
		return nil
	}

	if event.Amount.Valid {
		amount, _ := event.Amount.Decimal.Float64()
		metrics.CallbackAmounts.WithLabelValues(event.Currency).Observe(amount)
	}

	start := time.Now()
	outcome, err := h.Processor.ProcessCallback(ctx, &event)
	metrics.CallbackDuration.WithLabelValues(string(event.CallbackType)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CallbacksProcessed.WithLabelValues(string(event.CallbackType), "error").Inc()
		return err
	}
	metrics.CallbacksProcessed.WithLabelValues(string(event.CallbackType), string(outcome)).Inc()
	return nil
}
