package normalizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

func parseObject(raw []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("invalid JSON payload: %w", models.ErrUnsupportedPayload)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("payload is not a JSON object: %w", models.ErrUnsupportedPayload)
	}
	return root, nil
}

func isString(r gjson.Result) bool {
	return r.Type == gjson.String
}

func isCardShape(root gjson.Result) bool {
	return isString(root.Get("type")) && root.Get("data.object").IsObject()
}

func isWalletShape(root gjson.Result) bool {
	return isString(root.Get("event_type")) && root.Get("resource").IsObject()
}

// firstString returns the first non-blank string among the results.
func firstString(results ...gjson.Result) string {
	for _, r := range results {
		if r.Type == gjson.String || r.Type == gjson.Number {
			if s := strings.TrimSpace(r.String()); s != "" {
				return s
			}
		}
	}
	return ""
}

// decimalAmount reads a decimal string or the literal text of a JSON number.
func decimalAmount(r gjson.Result) decimal.NullDecimal {
	var text string
	switch r.Type {
	case gjson.String:
		text = strings.TrimSpace(r.Str)
	case gjson.Number:
		text = r.Raw
	default:
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// minorUnits converts an integer amount in cents to major units.
func minorUnits(r gjson.Result) decimal.NullDecimal {
	amount := decimalAmount(r)
	if !amount.Valid {
		return amount
	}
	return decimal.NewNullDecimal(amount.Decimal.Shift(-2))
}

func payloadMap(root gjson.Result) map[string]interface{} {
	if m, ok := root.Value().(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func newEvent(gateway string, root gjson.Result, eventID, eventType string, callbackType models.CallbackType) *models.PaymentCallbackEvent {
	correlationID := eventID
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return &models.PaymentCallbackEvent{
		CallbackType:     callbackType,
		CorrelationID:    correlationID,
		Gateway:          gateway,
		GatewayEventID:   eventID,
		GatewayEventType: eventType,
		ReceivedAt:       time.Now().UTC(),
		GatewayResponse:  payloadMap(root),
		Metadata:         map[string]string{},
	}
}

func lookup(table map[string]models.CallbackType, eventType string) models.CallbackType {
	if callbackType, ok := table[eventType]; ok {
		return callbackType
	}
	return models.CallbackPaymentFailed
}
