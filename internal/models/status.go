package models

// PaymentStatus is shared by PaymentTransaction and PaymentRefund.
type PaymentStatus string

// RequestStatus is the lifecycle status of a PaymentRequest.
type RequestStatus string

const (
	StatusPending    PaymentStatus = "PENDING"
	StatusProcessing PaymentStatus = "PROCESSING"
	StatusSuccess    PaymentStatus = "SUCCESS"
	StatusFailed     PaymentStatus = "FAILED"
	StatusCancelled  PaymentStatus = "CANCELLED"

	RequestPending           RequestStatus = "PENDING"
	RequestApproved          RequestStatus = "APPROVED"
	RequestRejected          RequestStatus = "REJECTED"
	RequestPaid              RequestStatus = "PAID"
	RequestFailed            RequestStatus = "FAILED"
	RequestPartiallyRefunded RequestStatus = "PARTIALLY_REFUNDED"
	RequestRefunded          RequestStatus = "REFUNDED"
	RequestCancelled         RequestStatus = "CANCELLED"
	RequestExpired           RequestStatus = "EXPIRED"
)

var transactionTransitions = map[PaymentStatus][]PaymentStatus{
	StatusPending:    {StatusProcessing, StatusSuccess, StatusFailed, StatusCancelled},
	StatusProcessing: {StatusSuccess, StatusFailed, StatusCancelled},
	StatusFailed:     {StatusSuccess},
}

// Refunds never leave FAILED, a new attempt is a new refund.
var refundTransitions = map[PaymentStatus][]PaymentStatus{
	StatusPending:    {StatusProcessing, StatusSuccess, StatusFailed, StatusCancelled},
	StatusProcessing: {StatusSuccess, StatusFailed, StatusCancelled},
}

// FAILED may still become PAID through a retried transaction, but a settled
// request never goes back to FAILED.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:           {RequestApproved, RequestRejected, RequestPaid, RequestFailed, RequestCancelled, RequestExpired},
	RequestApproved:          {RequestPaid, RequestFailed, RequestCancelled, RequestExpired},
	RequestFailed:            {RequestPaid},
	RequestPaid:              {RequestPartiallyRefunded, RequestRefunded},
	RequestPartiallyRefunded: {RequestPartiallyRefunded, RequestRefunded},
}

// IsTerminal reports whether no transition leaves s.
func (s RequestStatus) IsTerminal() bool {
	_, ok := requestTransitions[s]
	return !ok
}

// CanTransactionTransition is the guard for PaymentTransaction status changes.
func CanTransactionTransition(from, to PaymentStatus) bool {
	return contains(transactionTransitions[from], to)
}

// CanRefundTransition is the guard for PaymentRefund status changes.
func CanRefundTransition(from, to PaymentStatus) bool {
	return contains(refundTransitions[from], to)
}

// CanRequestTransition is the guard for PaymentRequest status changes.
func CanRequestTransition(from, to RequestStatus) bool {
	return contains(requestTransitions[from], to)
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// TransactionSourcesFor lists the statuses a transaction may move to target from.
func TransactionSourcesFor(target PaymentStatus) []PaymentStatus {
	return sourcesFor(transactionTransitions, target)
}

func RefundSourcesFor(target PaymentStatus) []PaymentStatus {
	return sourcesFor(refundTransitions, target)
}

func RequestSourcesFor(target RequestStatus) []RequestStatus {
	return sourcesFor(requestTransitions, target)
}

func sourcesFor[T comparable](graph map[T][]T, target T) []T {
	var sources []T
	for from, targets := range graph {
		if contains(targets, target) {
			sources = append(sources, from)
		}
	}
	return sources
}
