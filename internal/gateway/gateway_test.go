package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/gateway"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
)

func serve(t *testing.T, routes map[string]string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such object"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func cardQuerier(srv *httptest.Server) *gateway.CardQuerier {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return gateway.NewCardQuerier("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestCardQuerier_SucceededIntent(t *testing.T) {
	srv := serve(t, map[string]string{
		"/v1/payment_intents/pi_1": `{"id":"pi_1","object":"payment_intent","status":"succeeded","amount":2500,"amount_received":2500,"currency":"usd","metadata":{"payment_token":"tok_1"}}`,
	}, nil)

	event, err := cardQuerier(srv).QueryTransaction(context.Background(), models.PaymentTransaction{ExternalID: "pi_1"})

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.CallbackPaymentSuccess, event.CallbackType)
	assert.Equal(t, models.GatewayCardProcessor, event.Gateway)
	assert.Equal(t, "pi_1", event.ExternalTransactionID)
	assert.Equal(t, "tok_1", event.PaymentToken)
	assert.Equal(t, "25", event.Amount.Decimal.String())
	assert.Equal(t, "USD", event.Currency)
	assert.NotEmpty(t, event.CorrelationID)
	assert.Equal(t, gateway.SourceReconciliation, event.Metadata["source"])
}

func TestCardQuerier_DeclinedIntent(t *testing.T) {
	srv := serve(t, map[string]string{
		"/v1/payment_intents/pi_2": `{"id":"pi_2","object":"payment_intent","status":"requires_payment_method","amount":1000,"currency":"usd","last_payment_error":{"code":"card_declined","message":"Your card was declined."}}`,
	}, nil)

	event, err := cardQuerier(srv).QueryTransaction(context.Background(), models.PaymentTransaction{ExternalID: "pi_2"})

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.CallbackPaymentFailed, event.CallbackType)
	assert.Equal(t, "card_declined: Your card was declined.", event.FailureReason())
}

func TestCardQuerier_ProcessingIntentIsPending(t *testing.T) {
	srv := serve(t, map[string]string{
		"/v1/payment_intents/pi_3": `{"id":"pi_3","object":"payment_intent","status":"processing","amount":1000,"currency":"usd"}`,
	}, nil)

	event, err := cardQuerier(srv).QueryTransaction(context.Background(), models.PaymentTransaction{ExternalID: "pi_3"})

	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestCardQuerier_SucceededRefund(t *testing.T) {
	srv := serve(t, map[string]string{
		"/v1/refunds/re_1": `{"id":"re_1","object":"refund","status":"succeeded","amount":1000,"currency":"usd","payment_intent":"pi_1"}`,
	}, nil)

	event, err := cardQuerier(srv).QueryRefund(context.Background(), models.PaymentRefund{ExternalRefundID: "re_1"})

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.CallbackRefundSuccess, event.CallbackType)
	assert.Equal(t, "re_1", event.ExternalRefundID)
	assert.Equal(t, "pi_1", event.ExternalTransactionID)
	assert.Equal(t, "10", event.Amount.Decimal.String())
}

func TestCardQuerier_UnknownIntent(t *testing.T) {
	srv := serve(t, map[string]string{}, nil)

	event, err := cardQuerier(srv).QueryTransaction(context.Background(), models.PaymentTransaction{ExternalID: "pi_missing"})

	assert.Error(t, err)
	assert.Nil(t, event)
}

func TestWalletQuerier_CompletedCapture(t *testing.T) {
	var auth string
	srv := serve(t, map[string]string{
		"/v2/payments/captures/CAP-1": `{"id":"CAP-1","status":"COMPLETED","amount":{"value":"42.50","currency_code":"usd"},"custom_id":"tok_9"}`,
	}, func(r *http.Request) { auth = r.Header.Get("Authorization") })

	q := gateway.NewWalletQuerier(srv.URL+"/", "wallet-token", 0)
	event, err := q.QueryTransaction(context.Background(), models.PaymentTransaction{ExternalID: "CAP-1"})

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Bearer wallet-token", auth)
	assert.Equal(t, models.CallbackPaymentSuccess, event.CallbackType)
	assert.Equal(t, models.GatewayWalletProcessor, event.Gateway)
	assert.Equal(t, "CAP-1", event.ExternalTransactionID)
	assert.Equal(t, "42.5", event.Amount.Decimal.String())
	assert.Equal(t, "USD", event.Currency)
	assert.Equal(t, "tok_9", event.PaymentToken)
}

func TestWalletQuerier_PendingCapture(t *testing.T) {
	srv := serve(t, map[string]string{
		"/v2/payments/captures/CAP-2": `{"id":"CAP-2","status":"PENDING"}`,
	}, nil)

	event, err := gateway.NewWalletQuerier(srv.URL, "t", 0).QueryTransaction(context.Background(), models.PaymentTransaction{ExternalID: "CAP-2"})

	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestWalletQuerier_CompletedRefund(t *testing.T) {
	srv := serve(t, map[string]string{
		"/v2/payments/refunds/RF-1": `{"id":"RF-1","status":"COMPLETED","amount":{"value":"5.00","currency_code":"USD"}}`,
	}, nil)

	event, err := gateway.NewWalletQuerier(srv.URL, "t", 0).QueryRefund(context.Background(), models.PaymentRefund{ExternalRefundID: "RF-1"})

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.CallbackRefundSuccess, event.CallbackType)
	assert.Equal(t, "RF-1", event.ExternalRefundID)
}

func TestWalletQuerier_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	event, err := gateway.NewWalletQuerier(srv.URL, "t", 0).QueryTransaction(context.Background(), models.PaymentTransaction{ExternalID: "CAP-3"})

	assert.ErrorContains(t, err, "status 500")
	assert.Nil(t, event)
}

func TestBankQuerier_CompletedTransfer(t *testing.T) {
	var apiKey string
	srv := serve(t, map[string]string{
		"/transfers/TR-1": `{"id":"TR-1","status":"COMPLETED","amount":{"value":"100.00","currency":"mxn"},"reference":"REQ-7"}`,
	}, func(r *http.Request) { apiKey = r.Header.Get("X-API-Key") })

	event, err := gateway.NewBankQuerier(srv.URL, "bank-key", 0).QueryTransaction(context.Background(), models.PaymentTransaction{ExternalID: "TR-1"})

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "bank-key", apiKey)
	assert.Equal(t, models.CallbackPaymentSuccess, event.CallbackType)
	assert.Equal(t, "TR-1", event.ExternalTransactionID)
	assert.Equal(t, "REQ-7", event.RequestCode)
	assert.Equal(t, "MXN", event.Currency)
}

func TestBankQuerier_UnrecognizedStatusIsPending(t *testing.T) {
	srv := serve(t, map[string]string{
		"/transfers/TR-2": `{"id":"TR-2","status":"IN_FLIGHT"}`,
	}, nil)

	event, err := gateway.NewBankQuerier(srv.URL, "k", 0).QueryTransaction(context.Background(), models.PaymentTransaction{ExternalID: "TR-2"})

	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestBankQuerier_FailedRefund(t *testing.T) {
	srv := serve(t, map[string]string{
		"/refunds/RF-9": `{"id":"RF-9","transaction_id":"TR-1","status":"FAILED","error":{"code":"R01","message":"insufficient funds"}}`,
	}, nil)

	event, err := gateway.NewBankQuerier(srv.URL, "k", 0).QueryRefund(context.Background(), models.PaymentRefund{ExternalRefundID: "RF-9"})

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.CallbackRefundFailed, event.CallbackType)
	assert.Equal(t, "RF-9", event.ExternalRefundID)
	assert.Equal(t, "TR-1", event.ExternalTransactionID)
	assert.Equal(t, "R01: insufficient funds", event.FailureReason())
}
