package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	GatewayCardProcessor   = "card-processor"
	GatewayWalletProcessor = "wallet-processor"
	GatewayBankTransfer    = "bank-transfer"
)

type CallbackType string

const (
	CallbackPaymentSuccess  CallbackType = "PAYMENT_SUCCESS"
	CallbackPaymentFailed   CallbackType = "PAYMENT_FAILED"
	CallbackPaymentPending  CallbackType = "PAYMENT_PENDING"
	CallbackRefundSuccess   CallbackType = "REFUND_SUCCESS"
	CallbackRefundFailed    CallbackType = "REFUND_FAILED"
	CallbackRequestApproved CallbackType = "REQUEST_APPROVED"
	CallbackRequestRejected CallbackType = "REQUEST_REJECTED"
)

func (c CallbackType) IsValid() bool {
	switch c {
	case CallbackPaymentSuccess, CallbackPaymentFailed, CallbackPaymentPending,
		CallbackRefundSuccess, CallbackRefundFailed,
		CallbackRequestApproved, CallbackRequestRejected:
		return true
	default:
		return false
	}
}

func (c CallbackType) IsPayment() bool {
	return c == CallbackPaymentSuccess || c == CallbackPaymentFailed || c == CallbackPaymentPending
}

func (c CallbackType) IsRefund() bool {
	return c == CallbackRefundSuccess || c == CallbackRefundFailed
}

func (c CallbackType) IsRequest() bool {
	return c == CallbackRequestApproved || c == CallbackRequestRejected
}

// DomainEventType turns PAYMENT_SUCCESS into payment.success.
func (c CallbackType) DomainEventType() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), "_", ".")
}

// PaymentCallbackEvent is the canonical, gateway-agnostic webhook notification.
type PaymentCallbackEvent struct {
	CallbackType          CallbackType           `json:"callback_type" validate:"required,callback_type"`
	CorrelationID         string                 `json:"correlation_id" validate:"required"`
	Gateway               string                 `json:"gateway" validate:"required,oneof=card-processor wallet-processor bank-transfer"`
	GatewayEventID        string                 `json:"gateway_event_id,omitempty"`
	GatewayEventType      string                 `json:"gateway_event_type,omitempty"`
	ExternalTransactionID string                 `json:"external_transaction_id,omitempty"`
	ExternalRefundID      string                 `json:"external_refund_id,omitempty"`
	PaymentToken          string                 `json:"payment_token,omitempty"`
	RequestCode           string                 `json:"request_code,omitempty"`
	RequestID             string                 `json:"request_id,omitempty"`
	Amount                decimal.NullDecimal    `json:"amount"`
	Currency              string                 `json:"currency,omitempty"`
	ErrorCode             string                 `json:"error_code,omitempty"`
	ErrorMessage          string                 `json:"error_message,omitempty"`
	ReceivedAt            time.Time              `json:"received_at" validate:"required"`
	GatewayResponse       map[string]interface{} `json:"gateway_response,omitempty"`
	Metadata              map[string]string      `json:"metadata,omitempty"`
}

// PartitionKey is the Kafka message key. Events about the same transaction share it
// so they are consumed in the order they were received.
func (e *PaymentCallbackEvent) PartitionKey() string {
	for _, key := range []string{
		e.ExternalTransactionID,
		e.ExternalRefundID,
		e.PaymentToken,
		e.RequestCode,
		e.RequestID,
		e.CorrelationID,
	} {
		if key != "" {
			return key
		}
	}
	return ""
}

// HasError reports whether the gateway sent failure details.
func (e *PaymentCallbackEvent) HasError() bool {
	return e.ErrorCode != "" || e.ErrorMessage != ""
}

// FailureReason composes "{code}: {message}", tolerating either side being empty.
func (e *PaymentCallbackEvent) FailureReason() string {
	switch {
	case e.ErrorCode != "" && e.ErrorMessage != "":
		return e.ErrorCode + ": " + e.ErrorMessage
	case e.ErrorCode != "":
		return e.ErrorCode
	default:
		return e.ErrorMessage
	}
}

func (e *PaymentCallbackEvent) SetMetadata(key, value string) {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
}
