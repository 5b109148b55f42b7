package models_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTransactionTransitions(t *testing.T) {
	assert.True(t, models.CanTransactionTransition(models.StatusPending, models.StatusSuccess))
	assert.True(t, models.CanTransactionTransition(models.StatusProcessing, models.StatusFailed))
	assert.True(t, models.CanTransactionTransition(models.StatusFailed, models.StatusSuccess))
	assert.False(t, models.CanTransactionTransition(models.StatusSuccess, models.StatusFailed))
	assert.False(t, models.CanTransactionTransition(models.StatusCancelled, models.StatusSuccess))
	assert.False(t, models.CanTransactionTransition(models.StatusSuccess, models.StatusSuccess))
}

func TestRefundNeverLeavesFailed(t *testing.T) {
	assert.False(t, models.CanRefundTransition(models.StatusFailed, models.StatusSuccess))
	assert.True(t, models.CanRefundTransition(models.StatusPending, models.StatusSuccess))
}

func TestRequestTransitions(t *testing.T) {
	assert.True(t, models.CanRequestTransition(models.RequestPending, models.RequestPaid))
	assert.True(t, models.CanRequestTransition(models.RequestFailed, models.RequestPaid))
	assert.True(t, models.CanRequestTransition(models.RequestPaid, models.RequestPartiallyRefunded))
	assert.True(t, models.CanRequestTransition(models.RequestPartiallyRefunded, models.RequestRefunded))
	assert.False(t, models.CanRequestTransition(models.RequestRefunded, models.RequestPaid))
	assert.False(t, models.CanRequestTransition(models.RequestPaid, models.RequestPending))
	assert.False(t, models.CanRequestTransition(models.RequestPaid, models.RequestFailed))
	assert.False(t, models.CanRequestTransition(models.RequestPartiallyRefunded, models.RequestFailed))
	assert.False(t, models.CanRequestTransition(models.RequestRefunded, models.RequestFailed))

	assert.True(t, models.RequestRejected.IsTerminal())
	assert.True(t, models.RequestExpired.IsTerminal())
	assert.True(t, models.RequestRefunded.IsTerminal())
	assert.False(t, models.RequestPaid.IsTerminal())
	assert.False(t, models.RequestFailed.IsTerminal())
}

func TestDomainEventType(t *testing.T) {
	assert.Equal(t, "payment.success", models.CallbackPaymentSuccess.DomainEventType())
	assert.Equal(t, "refund.failed", models.CallbackRefundFailed.DomainEventType())
	assert.Equal(t, "request.approved", models.CallbackRequestApproved.DomainEventType())
}

func TestPartitionKey_Precedence(t *testing.T) {
	event := &models.PaymentCallbackEvent{CorrelationID: "evt_1", RequestCode: "REQ-1"}
	assert.Equal(t, "REQ-1", event.PartitionKey())

	event.ExternalRefundID = "re_1"
	assert.Equal(t, "re_1", event.PartitionKey())

	event.ExternalTransactionID = "pi_1"
	assert.Equal(t, "pi_1", event.PartitionKey())
}

func TestFailureReason(t *testing.T) {
	event := &models.PaymentCallbackEvent{ErrorCode: "card_declined", ErrorMessage: "Insufficient funds"}
	assert.Equal(t, "card_declined: Insufficient funds", event.FailureReason())

	event.ErrorMessage = ""
	assert.Equal(t, "card_declined", event.FailureReason())
}

func TestPermanent(t *testing.T) {
	base := errors.New("bad record")
	err := fmt.Errorf("processing: %w", models.Permanent(base))

	assert.True(t, models.IsPermanent(err))
	assert.ErrorIs(t, err, base)
	assert.False(t, models.IsPermanent(base))
	assert.Nil(t, models.Permanent(nil))
}

func TestSourcesFor(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.PaymentStatus{models.StatusPending, models.StatusProcessing, models.StatusFailed},
		models.TransactionSourcesFor(models.StatusSuccess))
	assert.ElementsMatch(t,
		[]models.PaymentStatus{models.StatusPending, models.StatusProcessing},
		models.RefundSourcesFor(models.StatusSuccess))
	assert.ElementsMatch(t,
		[]models.RequestStatus{models.RequestPaid, models.RequestPartiallyRefunded},
		models.RequestSourcesFor(models.RequestRefunded))
	assert.ElementsMatch(t,
		[]models.RequestStatus{models.RequestPending, models.RequestApproved},
		models.RequestSourcesFor(models.RequestFailed))
}
