package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/metrics"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/sirupsen/logrus"
)

type ReconcileOptions struct {
	Interval       time.Duration
	Cutoff         time.Duration
	BatchSize      int
	QueryTimeout   time.Duration
	AuditRetention time.Duration
}

// SweepResult counts what one sweep did with the stale entities it found.
type SweepResult struct {
	Checked  int
	Resolved int
	Pending  int
	Skipped  int
	Failed   int
}

// ReconciliationService catches outcomes whose webhook never arrived. It re-queries
// the owning gateway for transactions and refunds stuck in PENDING or PROCESSING
// and feeds the answer through the saga like any other callback.
type ReconciliationService struct {
	Transactions TransactionService
	Refunds      RefundService
	Audit        AuditService
	Processor    CallbackProcessor
	Queriers     map[string]StatusQuerier
	Options      ReconcileOptions

	now func() time.Time
}

func NewReconciliationService(
	transactions TransactionService,
	refunds RefundService,
	audit AuditService,
	processor CallbackProcessor,
	queriers []StatusQuerier,
	opts ReconcileOptions,
) *ReconciliationService {
	byGateway := make(map[string]StatusQuerier, len(queriers))
	for _, q := range queriers {
		byGateway[q.Gateway()] = q
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 10 * time.Second
	}
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Minute
	}
	return &ReconciliationService{
		Transactions: transactions,
		Refunds:      refunds,
		Audit:        audit,
		Processor:    processor,
		Queriers:     byGateway,
		Options:      opts,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Run sweeps once immediately and then on every interval until ctx is cancelled.
func (s *ReconciliationService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Options.Interval)
	defer ticker.Stop()

	for {
		s.tick(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *ReconciliationService) tick(ctx context.Context) {
	result, err := s.SweepOnce(ctx)
	if err != nil {
		logrus.Errorf("Reconciliation sweep failed: %v", err)
	} else if result.Checked > 0 {
		logrus.WithFields(logrus.Fields{
			"checked":  result.Checked,
			"resolved": result.Resolved,
			"pending":  result.Pending,
			"skipped":  result.Skipped,
			"failed":   result.Failed,
		}).Info("Reconciliation sweep finished")
	}

	if _, err := s.CleanupAudit(ctx); err != nil {
		logrus.Errorf("Audit retention cleanup failed: %v", err)
	}
}

// SweepOnce reconciles one batch of stale transactions and refunds. Errors on a
// single entity are counted and logged, only listing errors abort the sweep.
// Entities still open afterwards are stamped as checked so the next sweep starts
// with the ones that waited longest.
func (s *ReconciliationService) SweepOnce(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	cutoff := s.now().Add(-s.Options.Cutoff)

	transactions, err := s.Transactions.ListStale(ctx, cutoff, s.Options.BatchSize)
	if err != nil {
		return result, fmt.Errorf("listing stale transactions: %w", err)
	}
	for _, tx := range transactions {
		settled := s.reconcile(ctx, "transaction", tx.ID, tx.Gateway, &result, func(ctx context.Context, q StatusQuerier) (*models.PaymentCallbackEvent, error) {
			return q.QueryTransaction(ctx, tx)
		})
		if !settled {
			s.markChecked(ctx, "transaction", tx.ID, s.Transactions.MarkReconciled)
		}
	}

	refunds, err := s.Refunds.ListStale(ctx, cutoff, s.Options.BatchSize)
	if err != nil {
		return result, fmt.Errorf("listing stale refunds: %w", err)
	}
	for _, refund := range refunds {
		settled := s.reconcile(ctx, "refund", refund.ID, refund.Gateway, &result, func(ctx context.Context, q StatusQuerier) (*models.PaymentCallbackEvent, error) {
			return q.QueryRefund(ctx, refund)
		})
		if !settled {
			s.markChecked(ctx, "refund", refund.ID, s.Refunds.MarkReconciled)
		}
	}

	return result, nil
}

// reconcile queries the owning gateway and applies its answer. It reports whether
// the saga moved the entity.
func (s *ReconciliationService) reconcile(
	ctx context.Context,
	entity string,
	id string,
	gateway string,
	result *SweepResult,
	query func(ctx context.Context, q StatusQuerier) (*models.PaymentCallbackEvent, error),
) bool {
	log := logrus.WithFields(logrus.Fields{"entity": entity, "id": id})
	result.Checked++

	querier, ok := s.Queriers[gateway]
	if !ok {
		result.Skipped++
		metrics.ReconciliationChecked.WithLabelValues(entity, "unsupported").Inc()
		log.Warnf("No status querier for gateway %s, skipping", gateway)
		return false
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.Options.QueryTimeout)
	event, err := query(queryCtx, querier)
	cancel()
	if err != nil {
		result.Failed++
		metrics.ReconciliationChecked.WithLabelValues(entity, "error").Inc()
		log.Errorf("Gateway status query failed: %v", err)
		return false
	}
	if event == nil {
		result.Pending++
		metrics.ReconciliationChecked.WithLabelValues(entity, "pending").Inc()
		return false
	}

	outcome, err := s.Processor.ProcessCallback(ctx, event)
	if err != nil {
		result.Failed++
		metrics.ReconciliationChecked.WithLabelValues(entity, "error").Inc()
		log.Errorf("Applying reconciled outcome failed: %v", err)
		return false
	}
	result.Resolved++
	metrics.ReconciliationChecked.WithLabelValues(entity, string(outcome)).Inc()
	log.Infof("Reconciled %s as %s (%s)", entity, event.CallbackType, outcome)
	return outcome == OutcomeProcessed
}

func (s *ReconciliationService) markChecked(ctx context.Context, entity, id string, mark func(ctx context.Context, id string, at time.Time) error) {
	if err := mark(ctx, id, s.now()); err != nil {
		logrus.WithFields(logrus.Fields{"entity": entity, "id": id}).Errorf("Recording reconciliation check failed: %v", err)
	}
}

// CleanupAudit deletes audit entries older than the configured retention. A zero
// retention keeps everything.
func (s *ReconciliationService) CleanupAudit(ctx context.Context) (int64, error) {
	if s.Options.AuditRetention <= 0 {
		return 0, nil
	}
	deleted, err := s.Audit.DeleteOlderThan(ctx, s.now().Add(-s.Options.AuditRetention))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		logrus.Infof("Deleted %d audit entries past retention", deleted)
	}
	return deleted, nil
}
