package gateway

import (
	"context"
	"net/url"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/normalizer"
)

// BankQuerier reads transfers and refunds from the bank-transfer API. Its bodies
// have the same flat shape as the bank webhooks.
type BankQuerier struct {
	client     *restClient
	normalizer *normalizer.Bank
}

func NewBankQuerier(baseURL, apiKey string, timeout time.Duration) *BankQuerier {
	return &BankQuerier{
		client:     newRestClient(baseURL, timeout, map[string]string{"X-API-Key": apiKey}),
		normalizer: normalizer.NewBank(),
	}
}

func (q *BankQuerier) Gateway() string {
	return models.GatewayBankTransfer
}

func (q *BankQuerier) QueryTransaction(ctx context.Context, tx models.PaymentTransaction) (*models.PaymentCallbackEvent, error) {
	event, err := q.query(ctx, "/transfers/"+url.PathEscape(tx.ExternalID))
	if err != nil || event == nil {
		return nil, err
	}
	if !event.CallbackType.IsPayment() || event.CallbackType == models.CallbackPaymentPending {
		return nil, nil
	}
	if event.ExternalTransactionID == "" {
		event.ExternalTransactionID = tx.ExternalID
	}
	return event, nil
}

// QueryRefund reads the refund status. The refund endpoint reports plain transfer
// statuses, which are mapped to their refund counterparts here.
func (q *BankQuerier) QueryRefund(ctx context.Context, refund models.PaymentRefund) (*models.PaymentCallbackEvent, error) {
	event, err := q.query(ctx, "/refunds/"+url.PathEscape(refund.ExternalRefundID))
	if err != nil || event == nil {
		return nil, err
	}
	switch event.CallbackType {
	case models.CallbackPaymentSuccess, models.CallbackRefundSuccess:
		event.CallbackType = models.CallbackRefundSuccess
	case models.CallbackPaymentFailed, models.CallbackRefundFailed:
		event.CallbackType = models.CallbackRefundFailed
	default:
		return nil, nil
	}
	event.ExternalRefundID = refund.ExternalRefundID
	return event, nil
}

func (q *BankQuerier) query(ctx context.Context, path string) (*models.PaymentCallbackEvent, error) {
	body, err := q.client.get(ctx, path)
	if err != nil {
		return nil, err
	}
	event, err := q.normalizer.Parse(body)
	if err != nil {
		return nil, err
	}
	if !q.normalizer.Recognizes(event.GatewayEventType) {
		return nil, nil
	}
	return markReconciled(event), nil
}
