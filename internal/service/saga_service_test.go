package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/service"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sagaFixture struct {
	requests     *mocks.MockRequestService
	transactions *mocks.MockTransactionService
	refunds      *mocks.MockRefundService
	audit        *mocks.MockAuditService
	publisher    *mocks.MockPublisher
	journal      *service.MemoryJournal
	saga         *service.SagaService
}

func newSagaFixture(t *testing.T) *sagaFixture {
	f := &sagaFixture{
		requests:     mocks.NewMockRequestService(t),
		transactions: mocks.NewMockTransactionService(t),
		refunds:      mocks.NewMockRefundService(t),
		audit:        mocks.NewMockAuditService(t),
		publisher:    mocks.NewMockPublisher(t),
		journal:      service.NewMemoryJournal(),
	}
	f.saga = service.NewSagaService(f.requests, f.transactions, f.refunds, f.audit, f.publisher, f.journal, models.PaymentEventsTopic)
	return f
}

func pendingTransaction() *models.PaymentTransaction {
	return &models.PaymentTransaction{
		ID:               "tx-1",
		PaymentRequestID: "req-1",
		Status:           models.StatusPending,
		Amount:           decimal.RequireFromString("100.00"),
		Currency:         models.CurrencyUSD,
		Gateway:          models.GatewayCardProcessor,
		ExternalID:       "pi_1",
	}
}

func pendingRequest() *models.PaymentRequest {
	return &models.PaymentRequest{
		ID:           "req-1",
		PaymentToken: "tok_abc",
		RequestCode:  "REQ-1",
		Amount:       decimal.RequireFromString("100.00"),
		Currency:     models.CurrencyUSD,
		Status:       models.RequestPending,
	}
}

func paymentEvent(callbackType models.CallbackType) *models.PaymentCallbackEvent {
	return &models.PaymentCallbackEvent{
		CallbackType:          callbackType,
		CorrelationID:         "evt_1",
		Gateway:               models.GatewayCardProcessor,
		GatewayEventID:        "evt_1",
		ExternalTransactionID: "pi_1",
		Amount:                decimal.NewNullDecimal(decimal.RequireFromString("100.00")),
		Currency:              "USD",
		ReceivedAt:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		GatewayResponse:       map[string]interface{}{"id": "evt_1"},
	}
}

func domainEventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e models.PaymentDomainEvent) bool {
		return e.Type == eventType && e.ID != ""
	})
}

func TestProcessCallback_PaymentSuccess(t *testing.T) {
	f := newSagaFixture(t)
	ctx := context.Background()
	event := paymentEvent(models.CallbackPaymentSuccess)

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(pendingTransaction(), nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Once()
	f.transactions.EXPECT().MarkAsProcessed(mock.Anything, "tx-1", "pi_1", event.GatewayResponse).Return(nil).Once()
	f.requests.EXPECT().MarkAsPaid(mock.Anything, "req-1", event.ReceivedAt).Return(nil).Once()

	auditCall := f.audit.EXPECT().
		LogTransactionAction(mock.Anything, mock.MatchedBy(func(entry *models.PaymentAuditLog) bool {
			return entry.Action == "PAYMENT_SUCCESS" &&
				entry.OldStatus == "PENDING" &&
				entry.NewStatus == "SUCCESS" &&
				*entry.TransactionID == "tx-1" &&
				*entry.PaymentRequestID == "req-1" &&
				entry.RefundID == nil &&
				entry.UserID == nil
		})).
		Return(nil).
		Once()
	publishCall := f.publisher.EXPECT().
		Publish(mock.Anything, models.PaymentEventsTopic, "req-1", mock.MatchedBy(func(e models.PaymentDomainEvent) bool {
			return e.Type == "payment.success" && e.TransactionID == "tx-1" && e.RequestID == "req-1" && e.CorrelationID == "evt_1"
		})).
		Return(nil).
		Once()
	mock.InOrder(auditCall, publishCall)

	outcome, err := f.saga.ProcessCallback(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeProcessed, outcome)
	assert.Equal(t, models.StepPublished, f.journal.State("PAYMENT_SUCCESS:tx-1"))
}

func TestProcessCallback_UncorrelatedPaymentIsIgnored(t *testing.T) {
	f := newSagaFixture(t)
	event := paymentEvent(models.CallbackPaymentSuccess)

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(nil, models.ErrNotFound).Once()

	outcome, err := f.saga.ProcessCallback(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeUncorrelated, outcome)
	f.transactions.AssertNotCalled(t, "MarkAsProcessed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.requests.AssertNotCalled(t, "MarkAsPaid", mock.Anything, mock.Anything, mock.Anything)
	f.audit.AssertNotCalled(t, "LogTransactionAction", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCallback_MissingExternalIDIsUncorrelated(t *testing.T) {
	f := newSagaFixture(t)
	event := paymentEvent(models.CallbackPaymentFailed)
	event.ExternalTransactionID = ""

	outcome, err := f.saga.ProcessCallback(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeUncorrelated, outcome)
}

func TestProcessCallback_LookupFailureIsReturned(t *testing.T) {
	f := newSagaFixture(t)
	dbErr := errors.New("connection refused")

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(nil, dbErr).Once()

	_, err := f.saga.ProcessCallback(context.Background(), paymentEvent(models.CallbackPaymentSuccess))

	assert.ErrorIs(t, err, dbErr)
	assert.False(t, models.IsPermanent(err))
}

func TestProcessCallback_DuplicateDeliveryAppliesOnce(t *testing.T) {
	f := newSagaFixture(t)
	ctx := context.Background()
	event := paymentEvent(models.CallbackPaymentSuccess)

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(pendingTransaction(), nil).Times(2)
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Times(2)
	f.transactions.EXPECT().MarkAsProcessed(mock.Anything, "tx-1", "pi_1", mock.Anything).Return(nil).Once()
	f.requests.EXPECT().MarkAsPaid(mock.Anything, "req-1", mock.Anything).Return(nil).Once()
	f.audit.EXPECT().LogTransactionAction(mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, models.PaymentEventsTopic, "req-1", domainEventOfType("payment.success")).Return(nil).Once()

	first, err := f.saga.ProcessCallback(ctx, event)
	require.NoError(t, err)
	second, err := f.saga.ProcessCallback(ctx, event)
	require.NoError(t, err)

	assert.Equal(t, service.OutcomeProcessed, first)
	assert.Equal(t, service.OutcomeDuplicate, second)
}

func TestProcessCallback_CardPaymentFailed(t *testing.T) {
	f := newSagaFixture(t)
	event := paymentEvent(models.CallbackPaymentFailed)
	event.ErrorCode = "card_declined"
	event.ErrorMessage = "Insufficient funds"

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(pendingTransaction(), nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Once()
	f.transactions.EXPECT().MarkAsFailed(mock.Anything, "tx-1", "card_declined", "Insufficient funds").Return(nil).Once()
	f.requests.EXPECT().UpdateStatus(mock.Anything, "req-1", models.RequestFailed, "card_declined: Insufficient funds").Return(nil).Once()
	f.audit.EXPECT().
		LogTransactionAction(mock.Anything, mock.MatchedBy(func(entry *models.PaymentAuditLog) bool {
			return entry.NewStatus == "FAILED" &&
				entry.Description == "card_declined: Insufficient funds" &&
				entry.ChangeDetails["error_code"] == "card_declined"
		})).
		Return(nil).
		Once()
	f.publisher.EXPECT().Publish(mock.Anything, models.PaymentEventsTopic, "req-1", domainEventOfType("payment.failed")).Return(nil).Once()

	outcome, err := f.saga.ProcessCallback(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeProcessed, outcome)
}

func TestProcessCallback_SiblingFailureLeavesPaidRequest(t *testing.T) {
	for _, status := range []models.RequestStatus{models.RequestPaid, models.RequestPartiallyRefunded, models.RequestRefunded} {
		t.Run(string(status), func(t *testing.T) {
			f := newSagaFixture(t)
			sibling := pendingTransaction()
			sibling.ID = "tx-2"
			sibling.ExternalID = "pi_2"
			request := pendingRequest()
			request.Status = status
			event := paymentEvent(models.CallbackPaymentFailed)
			event.ExternalTransactionID = "pi_2"
			event.ErrorCode = "card_declined"

			f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_2").Return(sibling, nil).Once()
			f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(request, nil).Once()
			f.transactions.EXPECT().MarkAsFailed(mock.Anything, "tx-2", "card_declined", "").Return(nil).Once()
			f.audit.EXPECT().
				LogTransactionAction(mock.Anything, mock.MatchedBy(func(entry *models.PaymentAuditLog) bool {
					return *entry.TransactionID == "tx-2" && entry.NewStatus == "FAILED"
				})).
				Return(nil).
				Once()
			f.publisher.EXPECT().Publish(mock.Anything, models.PaymentEventsTopic, "req-1", domainEventOfType("payment.failed")).Return(nil).Once()

			outcome, err := f.saga.ProcessCallback(context.Background(), event)

			require.NoError(t, err)
			assert.Equal(t, service.OutcomeProcessed, outcome)
			f.requests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestProcessCallback_PaymentPendingMovesTransactionOnly(t *testing.T) {
	f := newSagaFixture(t)
	event := paymentEvent(models.CallbackPaymentPending)

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(pendingTransaction(), nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Once()
	f.transactions.EXPECT().MarkAsProcessing(mock.Anything, "tx-1").Return(nil).Once()
	f.audit.EXPECT().LogTransactionAction(mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, models.PaymentEventsTopic, "req-1", domainEventOfType("payment.pending")).Return(nil).Once()

	outcome, err := f.saga.ProcessCallback(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeProcessed, outcome)
	f.requests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCallback_RejectedTransitionIsSkipped(t *testing.T) {
	f := newSagaFixture(t)
	tx := pendingTransaction()
	tx.Status = models.StatusSuccess

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(tx, nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Once()

	outcome, err := f.saga.ProcessCallback(context.Background(), paymentEvent(models.CallbackPaymentFailed))

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeSkipped, outcome)
	assert.Equal(t, models.StepSkipped, f.journal.State("PAYMENT_FAILED:tx-1"))
	f.audit.AssertNotCalled(t, "LogTransactionAction", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCallback_AlreadyAtTargetOnFreshStepIsSkipped(t *testing.T) {
	f := newSagaFixture(t)
	tx := pendingTransaction()
	tx.Status = models.StatusSuccess

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(tx, nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Once()

	outcome, err := f.saga.ProcessCallback(context.Background(), paymentEvent(models.CallbackPaymentSuccess))

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeSkipped, outcome)
	f.requests.AssertNotCalled(t, "MarkAsPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCallback_FailedUpdateWritesNeitherAuditNorEvent(t *testing.T) {
	f := newSagaFixture(t)
	dbErr := errors.New("deadlock detected")

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(pendingTransaction(), nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Once()
	f.transactions.EXPECT().MarkAsProcessed(mock.Anything, "tx-1", "pi_1", mock.Anything).Return(dbErr).Once()

	_, err := f.saga.ProcessCallback(context.Background(), paymentEvent(models.CallbackPaymentSuccess))

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, models.StepStarted, f.journal.State("PAYMENT_SUCCESS:tx-1"))
	f.audit.AssertNotCalled(t, "LogTransactionAction", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCallback_ResumesAfterAuditFailure(t *testing.T) {
	f := newSagaFixture(t)
	ctx := context.Background()
	event := paymentEvent(models.CallbackPaymentSuccess)
	appliedTx := pendingTransaction()
	appliedTx.Status = models.StatusSuccess
	paidRequest := pendingRequest()
	paidRequest.Status = models.RequestPaid

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(pendingTransaction(), nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Once()
	f.transactions.EXPECT().MarkAsProcessed(mock.Anything, "tx-1", "pi_1", mock.Anything).Return(nil).Once()
	f.requests.EXPECT().MarkAsPaid(mock.Anything, "req-1", mock.Anything).Return(nil).Once()
	f.audit.EXPECT().LogTransactionAction(mock.Anything, mock.Anything).Return(errors.New("audit table locked")).Once()

	_, err := f.saga.ProcessCallback(ctx, event)
	require.Error(t, err)
	assert.Equal(t, models.StepApplied, f.journal.State("PAYMENT_SUCCESS:tx-1"))

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(appliedTx, nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(paidRequest, nil).Once()
	f.audit.EXPECT().
		LogTransactionAction(mock.Anything, mock.MatchedBy(func(entry *models.PaymentAuditLog) bool {
			return entry.OldStatus == "PENDING" && entry.NewStatus == "SUCCESS"
		})).
		Return(nil).
		Once()
	f.publisher.EXPECT().Publish(mock.Anything, models.PaymentEventsTopic, "req-1", domainEventOfType("payment.success")).Return(nil).Once()

	outcome, err := f.saga.ProcessCallback(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeProcessed, outcome)
	assert.Equal(t, models.StepPublished, f.journal.State("PAYMENT_SUCCESS:tx-1"))
}

func TestProcessCallback_ResumesAfterPublishFailure(t *testing.T) {
	f := newSagaFixture(t)
	ctx := context.Background()
	event := paymentEvent(models.CallbackPaymentSuccess)

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(pendingTransaction(), nil).Times(2)
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Times(2)
	f.transactions.EXPECT().MarkAsProcessed(mock.Anything, "tx-1", "pi_1", mock.Anything).Return(nil).Once()
	f.requests.EXPECT().MarkAsPaid(mock.Anything, "req-1", mock.Anything).Return(nil).Once()
	f.audit.EXPECT().LogTransactionAction(mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, models.PaymentEventsTopic, "req-1", mock.Anything).Return(errors.New("broker down")).Once()
	f.publisher.EXPECT().Publish(mock.Anything, models.PaymentEventsTopic, "req-1", mock.Anything).Return(nil).Once()

	_, err := f.saga.ProcessCallback(ctx, event)
	require.Error(t, err)
	assert.Equal(t, models.StepAudited, f.journal.State("PAYMENT_SUCCESS:tx-1"))

	outcome, err := f.saga.ProcessCallback(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeProcessed, outcome)
}

func refundFixture(amount string) (*models.PaymentRefund, *models.PaymentTransaction, *models.PaymentRequest) {
	refund := &models.PaymentRefund{
		ID:               "rf-1",
		TransactionID:    "tx-1",
		PaymentRequestID: "req-1",
		RefundAmount:     decimal.RequireFromString(amount),
		Status:           models.StatusPending,
		ExternalRefundID: "re_1",
		Gateway:          models.GatewayCardProcessor,
	}
	tx := pendingTransaction()
	tx.Status = models.StatusSuccess
	request := pendingRequest()
	request.Status = models.RequestPaid
	return refund, tx, request
}

func refundEvent(callbackType models.CallbackType) *models.PaymentCallbackEvent {
	event := paymentEvent(callbackType)
	event.ExternalRefundID = "re_1"
	return event
}

func TestProcessCallback_FullRefund(t *testing.T) {
	f := newSagaFixture(t)
	refund, tx, request := refundFixture("100.00")
	event := refundEvent(models.CallbackRefundSuccess)

	f.refunds.EXPECT().GetByExternalID(mock.Anything, "re_1").Return(refund, nil).Once()
	f.transactions.EXPECT().GetByID(mock.Anything, "tx-1").Return(tx, nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(request, nil).Once()
	f.refunds.EXPECT().MarkAsProcessed(mock.Anything, "rf-1", event.GatewayResponse).Return(nil).Once()
	f.requests.EXPECT().UpdateStatus(mock.Anything, "req-1", models.RequestRefunded, "").Return(nil).Once()
	f.audit.EXPECT().
		LogRefundAction(mock.Anything, mock.MatchedBy(func(entry *models.PaymentAuditLog) bool {
			return *entry.RefundID == "rf-1" && *entry.TransactionID == "tx-1"
		})).
		Return(nil).
		Once()
	f.publisher.EXPECT().
		Publish(mock.Anything, models.PaymentEventsTopic, "req-1", mock.MatchedBy(func(e models.PaymentDomainEvent) bool {
			return e.Type == "refund.success" && e.RefundID == "rf-1"
		})).
		Return(nil).
		Once()

	outcome, err := f.saga.ProcessCallback(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeProcessed, outcome)
	assert.Equal(t, models.StepPublished, f.journal.State("REFUND_SUCCESS:rf-1"))
}

func TestProcessCallback_PartialRefund(t *testing.T) {
	f := newSagaFixture(t)
	refund, tx, request := refundFixture("40.00")

	f.refunds.EXPECT().GetByExternalID(mock.Anything, "re_1").Return(refund, nil).Once()
	f.transactions.EXPECT().GetByID(mock.Anything, "tx-1").Return(tx, nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(request, nil).Once()
	f.refunds.EXPECT().MarkAsProcessed(mock.Anything, "rf-1", mock.Anything).Return(nil).Once()
	f.requests.EXPECT().UpdateStatus(mock.Anything, "req-1", models.RequestPartiallyRefunded, "").Return(nil).Once()
	f.audit.EXPECT().LogRefundAction(mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, models.PaymentEventsTopic, "req-1", domainEventOfType("refund.success")).Return(nil).Once()

	outcome, err := f.saga.ProcessCallback(context.Background(), refundEvent(models.CallbackRefundSuccess))

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeProcessed, outcome)
}

func TestProcessCallback_RefundFailed(t *testing.T) {
	f := newSagaFixture(t)
	refund, tx, request := refundFixture("40.00")
	event := refundEvent(models.CallbackRefundFailed)
	event.ErrorCode = "expired_or_canceled_card"

	f.refunds.EXPECT().GetByExternalID(mock.Anything, "re_1").Return(refund, nil).Once()
	f.transactions.EXPECT().GetByID(mock.Anything, "tx-1").Return(tx, nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(request, nil).Once()
	f.refunds.EXPECT().MarkAsFailed(mock.Anything, "rf-1", "expired_or_canceled_card", "").Return(nil).Once()
	f.audit.EXPECT().LogRefundAction(mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, models.PaymentEventsTopic, "req-1", domainEventOfType("refund.failed")).Return(nil).Once()

	outcome, err := f.saga.ProcessCallback(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeProcessed, outcome)
	f.requests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCallback_RequestApprovedByToken(t *testing.T) {
	f := newSagaFixture(t)
	event := &models.PaymentCallbackEvent{
		CallbackType:  models.CallbackRequestApproved,
		CorrelationID: "WH-9",
		Gateway:       models.GatewayWalletProcessor,
		PaymentToken:  "tok_abc",
		ReceivedAt:    time.Now().UTC(),
	}

	f.requests.EXPECT().GetByToken(mock.Anything, "tok_abc").Return(pendingRequest(), nil).Once()
	f.requests.EXPECT().UpdateStatus(mock.Anything, "req-1", models.RequestApproved, "").Return(nil).Once()
	f.audit.EXPECT().
		LogPaymentRequestAction(mock.Anything, mock.MatchedBy(func(entry *models.PaymentAuditLog) bool {
			return entry.TransactionID == nil && *entry.PaymentRequestID == "req-1" && entry.NewStatus == "APPROVED"
		})).
		Return(nil).
		Once()
	f.publisher.EXPECT().Publish(mock.Anything, models.PaymentEventsTopic, "req-1", domainEventOfType("request.approved")).Return(nil).Once()

	outcome, err := f.saga.ProcessCallback(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeProcessed, outcome)
}

func TestProcessCallback_RequestWithoutIdentifiersIsUncorrelated(t *testing.T) {
	f := newSagaFixture(t)
	event := &models.PaymentCallbackEvent{
		CallbackType:  models.CallbackRequestRejected,
		CorrelationID: "WH-10",
		Gateway:       models.GatewayWalletProcessor,
	}

	outcome, err := f.saga.ProcessCallback(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeUncorrelated, outcome)
}

func TestProcessCallback_UnsupportedTypeIsPermanent(t *testing.T) {
	f := newSagaFixture(t)
	event := &models.PaymentCallbackEvent{CallbackType: "CHARGEBACK_OPENED", CorrelationID: "x"}

	_, err := f.saga.ProcessCallback(context.Background(), event)

	assert.True(t, models.IsPermanent(err))
}

func TestProcessCallback_JournalFailureStopsStep(t *testing.T) {
	requests := mocks.NewMockRequestService(t)
	transactions := mocks.NewMockTransactionService(t)
	journal := mocks.NewMockStepJournal(t)
	saga := service.NewSagaService(requests, transactions, mocks.NewMockRefundService(t), mocks.NewMockAuditService(t), mocks.NewMockPublisher(t), journal, "")

	transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(pendingTransaction(), nil).Once()
	requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Once()
	journal.EXPECT().
		Begin(mock.Anything, mock.MatchedBy(func(step *models.SagaStep) bool {
			return step.Key == "PAYMENT_SUCCESS:tx-1" && step.OldStatus == "PENDING"
		})).
		Return(nil, false, errors.New("journal unavailable")).
		Once()

	_, err := saga.ProcessCallback(context.Background(), paymentEvent(models.CallbackPaymentSuccess))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "begin saga step PAYMENT_SUCCESS:tx-1")
}

func TestProcessCallback_ConcurrentTransitionIsSkipped(t *testing.T) {
	f := newSagaFixture(t)
	raced := fmt.Errorf("tx-1 is CANCELLED: %w", models.ErrInvalidTransition)

	f.transactions.EXPECT().GetByExternalID(mock.Anything, "pi_1").Return(pendingTransaction(), nil).Once()
	f.requests.EXPECT().GetByID(mock.Anything, "req-1").Return(pendingRequest(), nil).Once()
	f.transactions.EXPECT().MarkAsProcessed(mock.Anything, "tx-1", "pi_1", mock.Anything).Return(raced).Once()

	outcome, err := f.saga.ProcessCallback(context.Background(), paymentEvent(models.CallbackPaymentSuccess))

	require.NoError(t, err)
	assert.Equal(t, service.OutcomeSkipped, outcome)
	assert.Equal(t, models.StepSkipped, f.journal.State("PAYMENT_SUCCESS:tx-1"))
	f.requests.AssertNotCalled(t, "MarkAsPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCallback_ReleasesPartitionLocks(t *testing.T) {
	f := newSagaFixture(t)
	f.transactions.EXPECT().GetByExternalID(mock.Anything, mock.Anything).Return(nil, models.ErrNotFound)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			event := paymentEvent(models.CallbackPaymentSuccess)
			event.ExternalTransactionID = fmt.Sprintf("pi_%d", i%4)
			_, err := f.saga.ProcessCallback(context.Background(), event)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, f.saga.ActiveLocks())
}
