package normalizer

import (
	"fmt"
	"strings"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

var cardEventTypes = map[string]models.CallbackType{
	"payment_intent.succeeded":      models.CallbackPaymentSuccess,
	"payment_intent.payment_failed": models.CallbackPaymentFailed,
	"payment_intent.canceled":       models.CallbackPaymentFailed,
	"payment_intent.processing":     models.CallbackPaymentPending,
	"charge.succeeded":              models.CallbackPaymentSuccess,
	"charge.failed":                 models.CallbackPaymentFailed,
	"charge.pending":                models.CallbackPaymentPending,
	"charge.refunded":               models.CallbackRefundSuccess,
	"refund.failed":                 models.CallbackRefundFailed,
}

// Card handles the card processor's {id, type, data: {object}} envelope.
// Amounts arrive as integer minor units.
type Card struct{}

func NewCard() *Card {
	return &Card{}
}

func (c *Card) Gateway() string {
	return models.GatewayCardProcessor
}

func (c *Card) Supports(raw []byte) bool {
	root, err := parseObject(raw)
	if err != nil {
		return false
	}
	return isCardShape(root)
}

func (c *Card) Parse(raw []byte) (*models.PaymentCallbackEvent, error) {
	root, err := parseObject(raw)
	if err != nil {
		return nil, err
	}
	if !isCardShape(root) {
		return nil, fmt.Errorf("not a %s payload: %w", c.Gateway(), models.ErrUnsupportedPayload)
	}

	eventType := root.Get("type").String()
	obj := root.Get("data.object")
	event := newEvent(c.Gateway(), root, firstString(root.Get("id")), eventType, lookup(cardEventTypes, eventType))

	switch obj.Get("object").String() {
	case "refund":
		event.ExternalRefundID = firstString(obj.Get("id"))
		event.ExternalTransactionID = firstString(obj.Get("payment_intent"), obj.Get("charge"))
		event.Amount = minorUnits(obj.Get("amount"))
	case "charge":
		event.ExternalTransactionID = firstString(obj.Get("payment_intent"), obj.Get("id"))
		event.Amount = c.amount(obj)
	default:
		event.ExternalTransactionID = firstString(obj.Get("id"))
		event.Amount = c.amount(obj)
	}

	if eventType == "charge.refunded" && obj.Get("object").String() == "charge" {
		// refunds.data is newest first; amount_refunded is the charge's running total.
		event.ExternalRefundID = firstString(obj.Get("refunds.data.0.id"))
		if refunded := minorUnits(obj.Get("refunds.data.0.amount")); refunded.Valid {
			event.Amount = refunded
		} else if refunded := minorUnits(obj.Get("amount_refunded")); refunded.Valid {
			event.Amount = refunded
		}
	}

	event.Currency = strings.ToUpper(obj.Get("currency").String())
	event.PaymentToken = firstString(obj.Get("metadata.payment_token"))
	event.RequestCode = firstString(obj.Get("metadata.request_code"))
	event.RequestID = firstString(obj.Get("metadata.request_id"))

	if lastErr := obj.Get("last_payment_error"); lastErr.IsObject() {
		event.ErrorCode = firstString(lastErr.Get("code"), lastErr.Get("decline_code"))
		event.ErrorMessage = firstString(lastErr.Get("message"))
	}
	if event.ErrorCode == "" {
		event.ErrorCode = firstString(obj.Get("failure_code"), obj.Get("failure_reason"))
	}
	if event.ErrorMessage == "" {
		event.ErrorMessage = firstString(obj.Get("failure_message"))
	}

	return event, nil
}

// amount prefers what was actually received and falls back to the requested amount.
func (c *Card) amount(obj gjson.Result) decimal.NullDecimal {
	if received := minorUnits(obj.Get("amount_received")); received.Valid && !received.Decimal.IsZero() {
		return received
	}
	return minorUnits(obj.Get("amount"))
}
