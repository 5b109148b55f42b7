package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/metrics"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/normalizer"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v79/webhook"
)

type CallbackPublisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// gatewayHeaders maps each gateway's transport headers to metadata keys.
var gatewayHeaders = map[string]map[string]string{
	models.GatewayCardProcessor: {
		"Stripe-Signature": "signature",
	},
	models.GatewayWalletProcessor: {
		"Paypal-Transmission-Sig": "signature",
		"Paypal-Transmission-Id":  "request_id",
	},
	models.GatewayBankTransfer: {
		"X-Signature":  "signature",
		"X-Request-Id": "request_id",
	},
}

type WebhookResponse struct {
	Success       bool                `json:"success"`
	Message       string              `json:"message"`
	CorrelationID string              `json:"correlation_id,omitempty"`
	CallbackType  models.CallbackType `json:"callback_type,omitempty"`
}

// WebhookHandler turns gateway webhooks into canonical callbacks on the callback
// topic. Nothing here touches payment state, the consumer does that.
type WebhookHandler struct {
	Registry          *normalizer.Registry
	Publisher         CallbackPublisher
	Topic             string
	PublishTimeout    time.Duration
	CardWebhookSecret string

	validate *validator.Validate
}

func NewWebhookHandler(registry *normalizer.Registry, publisher CallbackPublisher, topic string, publishTimeout time.Duration, cardWebhookSecret string) *WebhookHandler {
	if topic == "" {
		topic = models.PaymentCallbacksTopic
	}
	if publishTimeout <= 0 {
		publishTimeout = 5 * time.Second
	}
	return &WebhookHandler{
		Registry:          registry,
		Publisher:         publisher,
		Topic:             topic,
		PublishTimeout:    publishTimeout,
		CardWebhookSecret: cardWebhookSecret,
		validate:          NewEventValidator(),
	}
}

// NewEventValidator returns a validator that knows the callback_type tag.
func NewEventValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("callback_type", func(fl validator.FieldLevel) bool {
		return models.CallbackType(fl.Field().String()).IsValid()
	})
	return v
}

// POST /webhooks/:gateway
func (h *WebhookHandler) ReceiveGateway(c *gin.Context) {
	gateway := c.Param("gateway")
	n, ok := h.Registry.ForGateway(gateway)
	if !ok {
		c.JSON(http.StatusNotFound, WebhookResponse{Message: fmt.Sprintf("Unknown gateway %s", gateway)})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.reject(c, gateway, http.StatusBadRequest, fmt.Errorf("reading body: %w", err))
		return
	}
	h.receive(c, n, body)
}

// POST /webhooks
func (h *WebhookHandler) ReceiveAny(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.reject(c, "unknown", http.StatusBadRequest, fmt.Errorf("reading body: %w", err))
		return
	}

	n, err := h.Registry.Detect(body)
	if err != nil {
		h.reject(c, "unknown", http.StatusBadRequest, err)
		return
	}
	h.receive(c, n, body)
}

func (h *WebhookHandler) receive(c *gin.Context, n normalizer.Normalizer, body []byte) {
	gateway := n.Gateway()

	verified, err := h.verify(gateway, c.Request.Header, body)
	if err != nil {
		h.reject(c, gateway, http.StatusBadRequest, err)
		return
	}

	event, err := n.Parse(body)
	if err != nil {
		h.reject(c, gateway, http.StatusBadRequest, err)
		return
	}

	event.ReceivedAt = time.Now().UTC()
	for header, key := range gatewayHeaders[gateway] {
		if value := c.GetHeader(header); value != "" {
			event.SetMetadata(key, value)
		}
	}
	event.SetMetadata("signature_verified", fmt.Sprintf("%t", verified))
	event.SetMetadata("remote_ip", c.ClientIP())
	event.SetMetadata("endpoint", c.FullPath())

	if err := h.validate.Struct(event); err != nil {
		h.reject(c, gateway, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.PublishTimeout)
	defer cancel()
	if err := h.Publisher.Publish(ctx, h.Topic, event.PartitionKey(), event); err != nil {
		h.reject(c, gateway, http.StatusServiceUnavailable, err)
		return
	}

	metrics.WebhooksReceived.WithLabelValues(gateway, "accepted").Inc()
	logrus.WithFields(logrus.Fields{
		"gateway":        gateway,
		"correlation_id": event.CorrelationID,
		"callback_type":  event.CallbackType,
		"event_type":     event.GatewayEventType,
	}).Info("Webhook accepted")

	c.JSON(http.StatusOK, WebhookResponse{
		Success:       true,
		Message:       fmt.Sprintf("%s webhook accepted", gateway),
		CorrelationID: event.CorrelationID,
		CallbackType:  event.CallbackType,
	})
}

// verify checks the card processor signature when a secret is configured. Other
// gateways are accepted unverified.
func (h *WebhookHandler) verify(gateway string, header http.Header, body []byte) (bool, error) {
	if gateway != models.GatewayCardProcessor || h.CardWebhookSecret == "" {
		return false, nil
	}
	if err := webhook.ValidatePayload(body, header.Get("Stripe-Signature"), h.CardWebhookSecret); err != nil {
		return false, fmt.Errorf("signature verification failed: %w", err)
	}
	return true, nil
}

func (h *WebhookHandler) reject(c *gin.Context, gateway string, status int, err error) {
	outcome := "rejected"
	if status == http.StatusServiceUnavailable {
		outcome = "publish_failed"
	}
	metrics.WebhooksReceived.WithLabelValues(gateway, outcome).Inc()
	logrus.WithField("gateway", gateway).Errorf("Failed to process webhook: %v", err)

	c.JSON(status, WebhookResponse{
		Message: fmt.Sprintf("Failed to process %s webhook: %v", gateway, err),
	})
}
