package gateway

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/normalizer"
	"github.com/tidwall/gjson"
)

var walletCaptureEvents = map[string]string{
	"COMPLETED":          "PAYMENT.CAPTURE.COMPLETED",
	"REFUNDED":           "PAYMENT.CAPTURE.COMPLETED",
	"PARTIALLY_REFUNDED": "PAYMENT.CAPTURE.COMPLETED",
	"DECLINED":           "PAYMENT.CAPTURE.DECLINED",
	"FAILED":             "PAYMENT.CAPTURE.DENIED",
}

var walletRefundEvents = map[string]string{
	"COMPLETED": "PAYMENT.CAPTURE.REFUNDED",
	"FAILED":    "PAYMENT.REFUND.FAILED",
	"CANCELLED": "PAYMENT.REFUND.FAILED",
}

// WalletQuerier reads captures and refunds from the wallet processor REST API.
type WalletQuerier struct {
	client     *restClient
	normalizer *normalizer.Wallet
}

func NewWalletQuerier(baseURL, token string, timeout time.Duration) *WalletQuerier {
	return &WalletQuerier{
		client: newRestClient(baseURL, timeout, map[string]string{
			"Authorization": "Bearer " + token,
		}),
		normalizer: normalizer.NewWallet(),
	}
}

func (q *WalletQuerier) Gateway() string {
	return models.GatewayWalletProcessor
}

func (q *WalletQuerier) QueryTransaction(ctx context.Context, tx models.PaymentTransaction) (*models.PaymentCallbackEvent, error) {
	return q.query(ctx, "/v2/payments/captures/"+url.PathEscape(tx.ExternalID), walletCaptureEvents)
}

func (q *WalletQuerier) QueryRefund(ctx context.Context, refund models.PaymentRefund) (*models.PaymentCallbackEvent, error) {
	return q.query(ctx, "/v2/payments/refunds/"+url.PathEscape(refund.ExternalRefundID), walletRefundEvents)
}

func (q *WalletQuerier) query(ctx context.Context, path string, events map[string]string) (*models.PaymentCallbackEvent, error) {
	body, err := q.client.get(ctx, path)
	if err != nil {
		return nil, err
	}

	eventType, ok := events[strings.ToUpper(gjson.GetBytes(body, "status").String())]
	if !ok {
		return nil, nil
	}

	wrapped, err := envelope(map[string]interface{}{"event_type": eventType}, "resource", body)
	if err != nil {
		return nil, err
	}
	event, err := q.normalizer.Parse(wrapped)
	if err != nil {
		return nil, err
	}
	return markReconciled(event), nil
}
