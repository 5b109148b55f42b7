package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/normalizer"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// CardQuerier looks up payment intents and refunds on the card processor.
type CardQuerier struct {
	api        *client.API
	normalizer *normalizer.Card
}

// NewCardQuerier builds a querier with the processor's secret key. A nil backends
// uses the processor's production endpoints.
func NewCardQuerier(secretKey string, backends *stripe.Backends) *CardQuerier {
	return &CardQuerier{
		api:        client.New(secretKey, backends),
		normalizer: normalizer.NewCard(),
	}
}

func (q *CardQuerier) Gateway() string {
	return models.GatewayCardProcessor
}

func (q *CardQuerier) QueryTransaction(ctx context.Context, tx models.PaymentTransaction) (*models.PaymentCallbackEvent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	intent, err := q.api.PaymentIntents.Get(tx.ExternalID, params)
	if err != nil {
		return nil, fmt.Errorf("fetching payment intent %s: %w", tx.ExternalID, err)
	}

	eventType := intentEventType(intent)
	if eventType == "" {
		return nil, nil
	}
	return q.parse(eventType, intent.LastResponse, intent)
}

func (q *CardQuerier) QueryRefund(ctx context.Context, refund models.PaymentRefund) (*models.PaymentCallbackEvent, error) {
	params := &stripe.RefundParams{}
	params.Context = ctx
	r, err := q.api.Refunds.Get(refund.ExternalRefundID, params)
	if err != nil {
		return nil, fmt.Errorf("fetching refund %s: %w", refund.ExternalRefundID, err)
	}

	var eventType string
	switch r.Status {
	case stripe.RefundStatusSucceeded:
		eventType = "charge.refunded"
	case stripe.RefundStatusFailed, stripe.RefundStatusCanceled:
		eventType = "refund.failed"
	default:
		return nil, nil
	}
	return q.parse(eventType, r.LastResponse, r)
}

// intentEventType maps a settled intent status to its webhook event type. Statuses
// still waiting on the customer or the network map to "".
func intentEventType(intent *stripe.PaymentIntent) string {
	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return "payment_intent.succeeded"
	case stripe.PaymentIntentStatusCanceled:
		return "payment_intent.canceled"
	case stripe.PaymentIntentStatusRequiresPaymentMethod:
		if intent.LastPaymentError != nil {
			return "payment_intent.payment_failed"
		}
	}
	return ""
}

func (q *CardQuerier) parse(eventType string, resp *stripe.APIResponse, object interface{}) (*models.PaymentCallbackEvent, error) {
	var raw []byte
	if resp != nil && len(resp.RawJSON) > 0 {
		raw = resp.RawJSON
	} else {
		encoded, err := json.Marshal(object)
		if err != nil {
			return nil, err
		}
		raw = encoded
	}

	data, err := envelope(nil, "object", raw)
	if err != nil {
		return nil, err
	}
	body, err := envelope(map[string]interface{}{"type": eventType}, "data", data)
	if err != nil {
		return nil, err
	}

	event, err := q.normalizer.Parse(body)
	if err != nil {
		return nil, err
	}
	return markReconciled(event), nil
}
