package normalizer

import (
	"fmt"
	"strings"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/tidwall/gjson"
)

// Keys are upper case, bank networks are inconsistent about casing.
var bankEventTypes = map[string]models.CallbackType{
	"TRANSFER.COMPLETED": models.CallbackPaymentSuccess,
	"COMPLETED":          models.CallbackPaymentSuccess,
	"SUCCESS":            models.CallbackPaymentSuccess,
	"TRANSFER.FAILED":    models.CallbackPaymentFailed,
	"REJECTED":           models.CallbackPaymentFailed,
	"FAILED":             models.CallbackPaymentFailed,
	"TRANSFER.PENDING":   models.CallbackPaymentPending,
	"PENDING":            models.CallbackPaymentPending,
	"REFUND.COMPLETED":   models.CallbackRefundSuccess,
	"REFUND.FAILED":      models.CallbackRefundFailed,
	"MANDATE.APPROVED":   models.CallbackRequestApproved,
	"MANDATE.REJECTED":   models.CallbackRequestRejected,
}

// Bank handles flat bank-transfer notifications. It is the fallback and accepts
// any object carrying a status that is neither card nor wallet shaped.
type Bank struct{}

func NewBank() *Bank {
	return &Bank{}
}

func (b *Bank) Gateway() string {
	return models.GatewayBankTransfer
}

func (b *Bank) Supports(raw []byte) bool {
	root, err := parseObject(raw)
	if err != nil {
		return false
	}
	return isBankShape(root)
}

func isBankShape(root gjson.Result) bool {
	if isCardShape(root) || isWalletShape(root) {
		return false
	}
	return root.Get("status").Exists() || root.Get("event").Exists() || root.Get("event_type").Exists()
}

func (b *Bank) Parse(raw []byte) (*models.PaymentCallbackEvent, error) {
	root, err := parseObject(raw)
	if err != nil {
		return nil, err
	}
	if !isBankShape(root) {
		return nil, fmt.Errorf("not a %s payload: %w", b.Gateway(), models.ErrUnsupportedPayload)
	}

	eventType := firstString(root.Get("status"), root.Get("event"), root.Get("event_type"))
	callbackType := lookup(bankEventTypes, strings.ToUpper(eventType))

	transactionID := firstString(root.Get("transaction_id"), root.Get("id"))
	eventID := firstString(root.Get("event_id"))
	if eventID == "" && root.Get("transaction_id").Exists() {
		eventID = firstString(root.Get("id"))
	}

	event := newEvent(b.Gateway(), root, eventID, eventType, callbackType)
	event.ExternalTransactionID = transactionID
	event.ExternalRefundID = firstString(root.Get("refund_id"))
	if callbackType.IsRefund() && event.ExternalRefundID == "" && root.Get("transaction_id").Exists() {
		event.ExternalRefundID = firstString(root.Get("id"))
	}
	event.RequestID = firstString(root.Get("request_id"))
	event.PaymentToken = firstString(root.Get("payment_token"))
	event.RequestCode = firstString(root.Get("reference"))

	if amount := root.Get("amount"); amount.IsObject() {
		event.Amount = decimalAmount(amount.Get("value"))
		event.Currency = strings.ToUpper(firstString(amount.Get("currency"), root.Get("currency")))
	} else {
		event.Amount = decimalAmount(amount)
		event.Currency = strings.ToUpper(firstString(root.Get("currency")))
	}

	if errField := root.Get("error"); errField.IsObject() {
		event.ErrorCode = firstString(errField.Get("code"))
		event.ErrorMessage = firstString(errField.Get("message"))
	} else {
		event.ErrorMessage = firstString(errField)
	}

	return event, nil
}

// Recognizes reports whether eventType has an explicit mapping, as opposed to the
// failed fallback.
func (b *Bank) Recognizes(eventType string) bool {
	_, ok := bankEventTypes[strings.ToUpper(eventType)]
	return ok
}
