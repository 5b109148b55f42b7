package normalizer

import (
	"fmt"
	"strings"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
)

var walletEventTypes = map[string]models.CallbackType{
	"PAYMENT.CAPTURE.COMPLETED": models.CallbackPaymentSuccess,
	"PAYMENT.CAPTURE.DENIED":    models.CallbackPaymentFailed,
	"PAYMENT.CAPTURE.DECLINED":  models.CallbackPaymentFailed,
	"PAYMENT.CAPTURE.PENDING":   models.CallbackPaymentPending,
	"PAYMENT.CAPTURE.REFUNDED":  models.CallbackRefundSuccess,
	"PAYMENT.CAPTURE.REVERSED":  models.CallbackRefundSuccess,
	"PAYMENT.REFUND.FAILED":     models.CallbackRefundFailed,
	"CHECKOUT.ORDER.APPROVED":   models.CallbackRequestApproved,
	"CHECKOUT.ORDER.VOIDED":     models.CallbackRequestRejected,
}

// Wallet handles the wallet processor's {id, event_type, resource} envelope.
type Wallet struct{}

func NewWallet() *Wallet {
	return &Wallet{}
}

func (w *Wallet) Gateway() string {
	return models.GatewayWalletProcessor
}

func (w *Wallet) Supports(raw []byte) bool {
	root, err := parseObject(raw)
	if err != nil {
		return false
	}
	return isWalletShape(root)
}

func (w *Wallet) Parse(raw []byte) (*models.PaymentCallbackEvent, error) {
	root, err := parseObject(raw)
	if err != nil {
		return nil, err
	}
	if !isWalletShape(root) {
		return nil, fmt.Errorf("not a %s payload: %w", w.Gateway(), models.ErrUnsupportedPayload)
	}

	eventType := root.Get("event_type").String()
	callbackType := lookup(walletEventTypes, eventType)
	resource := root.Get("resource")
	event := newEvent(w.Gateway(), root, firstString(root.Get("id")), eventType, callbackType)

	if callbackType.IsRefund() {
		event.ExternalRefundID = firstString(resource.Get("id"))
		event.ExternalTransactionID = firstString(resource.Get("supplementary_data.related_ids.capture_id"))
	} else {
		event.ExternalTransactionID = firstString(resource.Get("id"))
	}

	amount := resource.Get("amount")
	if !amount.Exists() {
		amount = resource.Get("purchase_units.0.amount")
	}
	event.Amount = decimalAmount(amount.Get("value"))
	event.Currency = strings.ToUpper(firstString(amount.Get("currency_code")))

	event.PaymentToken = firstString(resource.Get("custom_id"), resource.Get("purchase_units.0.custom_id"))
	event.RequestCode = firstString(resource.Get("invoice_id"), resource.Get("purchase_units.0.invoice_id"))
	event.RequestID = firstString(resource.Get("purchase_units.0.reference_id"))

	if isWalletFailure(callbackType) {
		event.ErrorCode = firstString(resource.Get("status_details.reason"))
		event.ErrorMessage = firstString(root.Get("summary"))
	}

	return event, nil
}

func isWalletFailure(callbackType models.CallbackType) bool {
	return callbackType == models.CallbackPaymentFailed ||
		callbackType == models.CallbackRefundFailed ||
		callbackType == models.CallbackRequestRejected
}
