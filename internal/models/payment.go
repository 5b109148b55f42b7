package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Currency string
type PaymentMethod string
type TransactionType string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyMXN Currency = "MXN"
	CurrencyCOP Currency = "COP"

	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodDebitCard    PaymentMethod = "DEBIT_CARD"
	MethodWallet       PaymentMethod = "WALLET"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"

	TransactionCharge        TransactionType = "CHARGE"
	TransactionAuthorization TransactionType = "AUTHORIZATION"
	TransactionCapture       TransactionType = "CAPTURE"
)

// PaymentRequest is a payable intent owned by a tenant.
type PaymentRequest struct {
	ID             string                           `gorm:"primaryKey" json:"id"`
	TenantID       string                           `gorm:"index;not null" json:"tenant_id"`
	RequestCode    string                           `gorm:"uniqueIndex;not null" json:"request_code"`
	PaymentToken   string                           `gorm:"uniqueIndex;not null" json:"payment_token"`
	Amount         decimal.Decimal                  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency       Currency                         `gorm:"size:3;not null" json:"currency"`
	PayerName      string                           `json:"payer_name"`
	PayerEmail     string                           `json:"payer_email"`
	PayerPhone     string                           `json:"payer_phone"`
	AllowedMethods datatypes.JSONSlice[PaymentMethod] `json:"allowed_methods"`
	SelectedMethod PaymentMethod                    `json:"selected_method,omitempty"`
	Status         RequestStatus                    `gorm:"index;not null" json:"status"`
	StatusReason   string                           `json:"status_reason,omitempty"`
	ExpiresAt      *time.Time                       `json:"expires_at,omitempty"`
	PaidAt         *time.Time                       `json:"paid_at,omitempty"`
	CreatedAt      time.Time                        `json:"created_at"`
	UpdatedAt      time.Time                        `json:"updated_at"`
}

// PaymentTransaction is one attempt to move money for a PaymentRequest.
type PaymentTransaction struct {
	ID               string            `gorm:"primaryKey" json:"id"`
	PaymentRequestID string            `gorm:"index;not null" json:"payment_request_id"`
	Type             TransactionType   `gorm:"not null" json:"type"`
	Status           PaymentStatus     `gorm:"index;not null" json:"status"`
	Amount           decimal.Decimal   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency         Currency          `gorm:"size:3;not null" json:"currency"`
	PaymentMethod    PaymentMethod     `json:"payment_method"`
	Gateway          string            `gorm:"index;not null" json:"gateway"`
	ExternalID       string            `gorm:"index" json:"external_id,omitempty"`
	RetryCount       int               `json:"retry_count"`
	MaxRetries       int               `json:"max_retries"`
	ErrorCode        string            `json:"error_code,omitempty"`
	ErrorMessage     string            `json:"error_message,omitempty"`
	GatewayResponse  datatypes.JSONMap `gorm:"type:jsonb" json:"gateway_response,omitempty"`
	ProcessedAt      *time.Time        `json:"processed_at,omitempty"`
	LastReconciledAt *time.Time        `gorm:"index" json:"last_reconciled_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `gorm:"index" json:"updated_at"`
}

// PaymentRefund reverses part or all of a PaymentTransaction.
type PaymentRefund struct {
	ID               string            `gorm:"primaryKey" json:"id"`
	TransactionID    string            `gorm:"index;not null" json:"transaction_id"`
	PaymentRequestID string            `gorm:"index;not null" json:"payment_request_id"`
	RefundAmount     decimal.Decimal   `gorm:"type:decimal(15,2);not null" json:"refund_amount"`
	Currency         Currency          `gorm:"size:3;not null" json:"currency"`
	Reason           string            `json:"reason,omitempty"`
	Status           PaymentStatus     `gorm:"index;not null" json:"status"`
	ExternalRefundID string            `gorm:"index" json:"external_refund_id,omitempty"`
	Gateway          string            `gorm:"index;not null" json:"gateway"`
	ErrorCode        string            `json:"error_code,omitempty"`
	ErrorMessage     string            `json:"error_message,omitempty"`
	GatewayResponse  datatypes.JSONMap `gorm:"type:jsonb" json:"gateway_response,omitempty"`
	ProcessedAt      *time.Time        `json:"processed_at,omitempty"`
	LastReconciledAt *time.Time        `gorm:"index" json:"last_reconciled_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `gorm:"index" json:"updated_at"`
}

// PaymentAuditLog is append-only. A nil UserID marks a system action.
type PaymentAuditLog struct {
	ID               string            `gorm:"primaryKey" json:"id"`
	PaymentRequestID *string           `gorm:"index" json:"payment_request_id,omitempty"`
	TransactionID    *string           `gorm:"index" json:"transaction_id,omitempty"`
	RefundID         *string           `gorm:"index" json:"refund_id,omitempty"`
	Action           string            `gorm:"size:100;not null" json:"action"`
	OldStatus        string            `gorm:"size:50" json:"old_status"`
	NewStatus        string            `gorm:"size:50" json:"new_status"`
	Description      string            `json:"description"`
	ChangeDetails    datatypes.JSONMap `gorm:"type:jsonb" json:"change_details,omitempty"`
	UserID           *string           `json:"user_id,omitempty"`
	CreatedAt        time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (p *PaymentRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (p *PaymentTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (p *PaymentRefund) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (a *PaymentAuditLog) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodWallet, MethodBankTransfer:
		return true
	default:
		return false
	}
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyMXN, CurrencyCOP:
		return true
	default:
		return false
	}
}
