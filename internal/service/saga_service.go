package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/sirupsen/logrus"
)

// Outcome tells the caller what ProcessCallback did with an event.
type Outcome string

const (
	OutcomeProcessed    Outcome = "PROCESSED"
	OutcomeDuplicate    Outcome = "DUPLICATE"
	OutcomeSkipped      Outcome = "SKIPPED"
	OutcomeUncorrelated Outcome = "UNCORRELATED"
)

type primaryResult int

const (
	primaryApplied primaryResult = iota
	primaryAtTarget
	primaryRejected
)

// SagaService applies canonical callbacks to payment requests, transactions and
// refunds. Every step goes through the journal: entity updates, then the audit
// entry, then the domain event. A failure stops the step where it is and the next
// delivery of the same callback resumes from there.
type SagaService struct {
	Requests     RequestService
	Transactions TransactionService
	Refunds      RefundService
	Audit        AuditService
	Publisher    Publisher
	Journal      StepJournal
	EventsTopic  string

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func NewSagaService(
	requests RequestService,
	transactions TransactionService,
	refunds RefundService,
	audit AuditService,
	publisher Publisher,
	journal StepJournal,
	eventsTopic string,
) *SagaService {
	if eventsTopic == "" {
		eventsTopic = models.PaymentEventsTopic
	}
	return &SagaService{
		Requests:     requests,
		Transactions: transactions,
		Refunds:      refunds,
		Audit:        audit,
		Publisher:    publisher,
		Journal:      journal,
		EventsTopic:  eventsTopic,
		locks:        make(map[string]*keyLock),
	}
}

// sagaStep is a correlated callback: the entities it touches and how to move them.
type sagaStep struct {
	primaryID   string
	oldStatus   string
	newStatus   string
	request     *models.PaymentRequest
	transaction *models.PaymentTransaction
	refund      *models.PaymentRefund

	applyPrimary   func(ctx context.Context) (primaryResult, error)
	applySecondary func(ctx context.Context) error
	audit          func(ctx context.Context, entry *models.PaymentAuditLog) error
}

// ProcessCallback runs the saga step for event. Callbacks that match no known
// entity are ignored with OutcomeUncorrelated and a nil error.
func (s *SagaService) ProcessCallback(ctx context.Context, event *models.PaymentCallbackEvent) (Outcome, error) {
	unlock := s.lock(event.PartitionKey())
	defer unlock()

	log := logrus.WithFields(logrus.Fields{
		"correlation_id": event.CorrelationID,
		"callback_type":  event.CallbackType,
		"gateway":        event.Gateway,
	})

	step, err := s.resolve(ctx, event)
	if errors.Is(err, models.ErrNotFound) {
		log.Warnf("Callback not correlated, ignoring: %v", err)
		return OutcomeUncorrelated, nil
	}
	if err != nil {
		return "", err
	}

	key := models.StepKey(event.CallbackType, step.primaryID)
	record, created, err := s.Journal.Begin(ctx, &models.SagaStep{
		Key:           key,
		Action:        string(event.CallbackType),
		CorrelationID: event.CorrelationID,
		State:         models.StepStarted,
		OldStatus:     step.oldStatus,
	})
	if err != nil {
		return "", fmt.Errorf("begin saga step %s: %w", key, err)
	}
	if record.State.Done() {
		log.Infof("Saga step %s already %s, skipping duplicate", key, record.State)
		return OutcomeDuplicate, nil
	}
	step.oldStatus = record.OldStatus
	log = log.WithField("step", key)

	state := record.State
	if state == models.StepStarted {
		result, err := step.applyPrimary(ctx)
		if errors.Is(err, models.ErrInvalidTransition) {
			result, err = primaryRejected, nil
		}
		if err != nil {
			return "", fmt.Errorf("apply %s: %w", key, err)
		}
		if result == primaryRejected || (result == primaryAtTarget && created) {
			if err := s.Journal.Advance(ctx, key, models.StepSkipped); err != nil {
				return "", fmt.Errorf("skip saga step %s: %w", key, err)
			}
			log.Infof("Transition %s -> %s not applied, step skipped", step.oldStatus, step.newStatus)
			return OutcomeSkipped, nil
		}
		if step.applySecondary != nil {
			if err := step.applySecondary(ctx); err != nil {
				return "", fmt.Errorf("apply %s: %w", key, err)
			}
		}
		if err := s.Journal.Advance(ctx, key, models.StepApplied); err != nil {
			return "", fmt.Errorf("advance saga step %s: %w", key, err)
		}
		state = models.StepApplied
	}

	if state == models.StepApplied {
		if err := step.audit(ctx, s.auditEntry(event, step)); err != nil {
			return "", fmt.Errorf("audit %s: %w", key, err)
		}
		if err := s.Journal.Advance(ctx, key, models.StepAudited); err != nil {
			return "", fmt.Errorf("advance saga step %s: %w", key, err)
		}
		state = models.StepAudited
	}

	if state == models.StepAudited {
		domainEvent := s.domainEvent(event, step)
		if err := s.Publisher.Publish(ctx, s.EventsTopic, domainEvent.RequestID, domainEvent); err != nil {
			return "", fmt.Errorf("publish %s: %w", domainEvent.Type, err)
		}
		if err := s.Journal.Advance(ctx, key, models.StepPublished); err != nil {
			return "", fmt.Errorf("advance saga step %s: %w", key, err)
		}
	}

	log.Infof("Saga step applied: %s -> %s", step.oldStatus, step.newStatus)
	return OutcomeProcessed, nil
}

func (s *SagaService) resolve(ctx context.Context, event *models.PaymentCallbackEvent) (*sagaStep, error) {
	switch event.CallbackType {
	case models.CallbackPaymentSuccess:
		return s.resolvePayment(ctx, event, models.StatusSuccess)
	case models.CallbackPaymentFailed:
		return s.resolvePayment(ctx, event, models.StatusFailed)
	case models.CallbackPaymentPending:
		return s.resolvePayment(ctx, event, models.StatusProcessing)
	case models.CallbackRefundSuccess:
		return s.resolveRefund(ctx, event, models.StatusSuccess)
	case models.CallbackRefundFailed:
		return s.resolveRefund(ctx, event, models.StatusFailed)
	case models.CallbackRequestApproved:
		return s.resolveRequest(ctx, event, models.RequestApproved)
	case models.CallbackRequestRejected:
		return s.resolveRequest(ctx, event, models.RequestRejected)
	default:
		return nil, models.Permanent(fmt.Errorf("unsupported callback type %q", event.CallbackType))
	}
}

func (s *SagaService) resolvePayment(ctx context.Context, event *models.PaymentCallbackEvent, target models.PaymentStatus) (*sagaStep, error) {
	if event.ExternalTransactionID == "" {
		return nil, fmt.Errorf("callback has no external transaction id: %w", models.ErrNotFound)
	}
	tx, err := s.Transactions.GetByExternalID(ctx, event.ExternalTransactionID)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", event.ExternalTransactionID, err)
	}
	request, err := s.Requests.GetByID(ctx, tx.PaymentRequestID)
	if err != nil {
		return nil, fmt.Errorf("payment request %s: %w", tx.PaymentRequestID, err)
	}

	step := &sagaStep{
		primaryID:   tx.ID,
		oldStatus:   string(tx.Status),
		newStatus:   string(target),
		request:     request,
		transaction: tx,
		audit:       s.Audit.LogTransactionAction,
	}

	step.applyPrimary = func(ctx context.Context) (primaryResult, error) {
		if tx.Status == target {
			return primaryAtTarget, nil
		}
		if !models.CanTransactionTransition(tx.Status, target) {
			return primaryRejected, nil
		}
		var err error
		switch target {
		case models.StatusSuccess:
			err = s.Transactions.MarkAsProcessed(ctx, tx.ID, event.ExternalTransactionID, event.GatewayResponse)
		case models.StatusFailed:
			err = s.Transactions.MarkAsFailed(ctx, tx.ID, event.ErrorCode, event.ErrorMessage)
		default:
			err = s.Transactions.MarkAsProcessing(ctx, tx.ID)
		}
		return primaryApplied, err
	}

	switch target {
	case models.StatusSuccess:
		step.applySecondary = func(ctx context.Context) error {
			return s.moveRequest(ctx, request, models.RequestPaid, func() error {
				return s.Requests.MarkAsPaid(ctx, request.ID, event.ReceivedAt)
			})
		}
	case models.StatusFailed:
		step.applySecondary = func(ctx context.Context) error {
			return s.moveRequest(ctx, request, models.RequestFailed, func() error {
				return s.Requests.UpdateStatus(ctx, request.ID, models.RequestFailed, event.FailureReason())
			})
		}
	}

	return step, nil
}

func (s *SagaService) resolveRefund(ctx context.Context, event *models.PaymentCallbackEvent, target models.PaymentStatus) (*sagaStep, error) {
	if event.ExternalRefundID == "" {
		return nil, fmt.Errorf("callback has no external refund id: %w", models.ErrNotFound)
	}
	refund, err := s.Refunds.GetByExternalID(ctx, event.ExternalRefundID)
	if err != nil {
		return nil, fmt.Errorf("refund %s: %w", event.ExternalRefundID, err)
	}
	tx, err := s.Transactions.GetByID(ctx, refund.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", refund.TransactionID, err)
	}
	request, err := s.Requests.GetByID(ctx, refund.PaymentRequestID)
	if err != nil {
		return nil, fmt.Errorf("payment request %s: %w", refund.PaymentRequestID, err)
	}

	step := &sagaStep{
		primaryID:   refund.ID,
		oldStatus:   string(refund.Status),
		newStatus:   string(target),
		request:     request,
		transaction: tx,
		refund:      refund,
		audit:       s.Audit.LogRefundAction,
	}

	step.applyPrimary = func(ctx context.Context) (primaryResult, error) {
		if refund.Status == target {
			return primaryAtTarget, nil
		}
		if !models.CanRefundTransition(refund.Status, target) {
			return primaryRejected, nil
		}
		if target == models.StatusSuccess {
			return primaryApplied, s.Refunds.MarkAsProcessed(ctx, refund.ID, event.GatewayResponse)
		}
		return primaryApplied, s.Refunds.MarkAsFailed(ctx, refund.ID, event.ErrorCode, event.ErrorMessage)
	}

	if target == models.StatusSuccess {
		requestTarget := models.RequestPartiallyRefunded
		if refund.RefundAmount.GreaterThanOrEqual(tx.Amount) {
			requestTarget = models.RequestRefunded
		}
		step.applySecondary = func(ctx context.Context) error {
			return s.moveRequest(ctx, request, requestTarget, func() error {
				return s.Requests.UpdateStatus(ctx, request.ID, requestTarget, "")
			})
		}
	}

	return step, nil
}

func (s *SagaService) resolveRequest(ctx context.Context, event *models.PaymentCallbackEvent, target models.RequestStatus) (*sagaStep, error) {
	var (
		request *models.PaymentRequest
		err     error
	)
	switch {
	case event.RequestID != "":
		request, err = s.Requests.GetByID(ctx, event.RequestID)
	case event.PaymentToken != "":
		request, err = s.Requests.GetByToken(ctx, event.PaymentToken)
	default:
		return nil, fmt.Errorf("callback has no request id or payment token: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("payment request: %w", err)
	}

	reason := ""
	if target == models.RequestRejected {
		reason = event.FailureReason()
	}

	return &sagaStep{
		primaryID: request.ID,
		oldStatus: string(request.Status),
		newStatus: string(target),
		request:   request,
		audit:     s.Audit.LogPaymentRequestAction,
		applyPrimary: func(ctx context.Context) (primaryResult, error) {
			if request.Status == target {
				return primaryAtTarget, nil
			}
			if !models.CanRequestTransition(request.Status, target) {
				return primaryRejected, nil
			}
			return primaryApplied, s.Requests.UpdateStatus(ctx, request.ID, target, reason)
		},
	}, nil
}

// moveRequest applies a secondary request transition. A request already at target
// is left alone and a transition the guard forbids is only logged.
func (s *SagaService) moveRequest(ctx context.Context, request *models.PaymentRequest, target models.RequestStatus, update func() error) error {
	if request.Status == target {
		return nil
	}
	log := logrus.WithField("request_id", request.ID)
	if request.Status.IsTerminal() {
		log.Infof("Request is %s and final, ignoring move to %s", request.Status, target)
		return nil
	}
	if !models.CanRequestTransition(request.Status, target) {
		log.Warnf("Request transition %s -> %s not allowed, leaving request untouched", request.Status, target)
		return nil
	}
	if err := update(); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			log.Warnf("Request moved concurrently: %v", err)
			return nil
		}
		return err
	}
	return nil
}

func (s *SagaService) auditEntry(event *models.PaymentCallbackEvent, step *sagaStep) *models.PaymentAuditLog {
	description := fmt.Sprintf("%s callback from %s processed", event.CallbackType, event.Gateway)
	if event.HasError() {
		description = event.FailureReason()
	}

	details := map[string]interface{}{
		"gateway":            event.Gateway,
		"gateway_event_id":   event.GatewayEventID,
		"gateway_event_type": event.GatewayEventType,
		"correlation_id":     event.CorrelationID,
	}
	if event.ExternalTransactionID != "" {
		details["external_transaction_id"] = event.ExternalTransactionID
	}
	if event.ExternalRefundID != "" {
		details["external_refund_id"] = event.ExternalRefundID
	}
	if event.Amount.Valid {
		details["amount"] = event.Amount.Decimal.String()
		details["currency"] = event.Currency
	}
	if event.HasError() {
		details["error_code"] = event.ErrorCode
		details["error_message"] = event.ErrorMessage
	}

	entry := &models.PaymentAuditLog{
		Action:        string(event.CallbackType),
		OldStatus:     step.oldStatus,
		NewStatus:     step.newStatus,
		Description:   description,
		ChangeDetails: details,
	}
	if step.request != nil {
		entry.PaymentRequestID = &step.request.ID
	}
	if step.transaction != nil {
		entry.TransactionID = &step.transaction.ID
	}
	if step.refund != nil {
		entry.RefundID = &step.refund.ID
	}
	return entry
}

func (s *SagaService) domainEvent(event *models.PaymentCallbackEvent, step *sagaStep) models.PaymentDomainEvent {
	domainEvent := models.PaymentDomainEvent{
		ID:            uuid.New().String(),
		Type:          event.CallbackType.DomainEventType(),
		Gateway:       event.Gateway,
		CorrelationID: event.CorrelationID,
		OccurredAt:    time.Now().UTC(),
	}
	if step.request != nil {
		domainEvent.RequestID = step.request.ID
	}
	if step.transaction != nil {
		domainEvent.TransactionID = step.transaction.ID
	}
	if step.refund != nil {
		domainEvent.RefundID = step.refund.ID
	}
	return domainEvent
}

// lock serializes saga steps that share a partition key. Entries are dropped once
// no caller holds or waits on them.
func (s *SagaService) lock(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}
