package database

import (
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedPayments creates a few requests with an in-flight transaction each so local
// webhooks have something to correlate with.
func SeedPayments(db *gorm.DB) error {
	expires := time.Now().Add(24 * time.Hour)
	requests := []models.PaymentRequest{
		{
			ID:             "req_1",
			TenantID:       "tenant_1",
			RequestCode:    "REQ-0001",
			PaymentToken:   "tok_card_1",
			Amount:         decimal.RequireFromString("19.99"),
			Currency:       models.CurrencyUSD,
			PayerName:      "Alice",
			PayerEmail:     "alice@example.com",
			AllowedMethods: datatypes.NewJSONSlice([]models.PaymentMethod{models.MethodCreditCard, models.MethodDebitCard}),
			SelectedMethod: models.MethodCreditCard,
			Status:         models.RequestPending,
			ExpiresAt:      &expires,
		},
		{
			ID:             "req_2",
			TenantID:       "tenant_1",
			RequestCode:    "REQ-0002",
			PaymentToken:   "tok_wallet_2",
			Amount:         decimal.RequireFromString("42.50"),
			Currency:       models.CurrencyUSD,
			PayerName:      "Bob",
			PayerEmail:     "bob@example.com",
			AllowedMethods: datatypes.NewJSONSlice([]models.PaymentMethod{models.MethodWallet}),
			SelectedMethod: models.MethodWallet,
			Status:         models.RequestPending,
			ExpiresAt:      &expires,
		},
		{
			ID:             "req_3",
			TenantID:       "tenant_2",
			RequestCode:    "REQ-0003",
			PaymentToken:   "tok_bank_3",
			Amount:         decimal.RequireFromString("250.00"),
			Currency:       models.CurrencyCOP,
			PayerName:      "Carol",
			PayerEmail:     "carol@example.com",
			AllowedMethods: datatypes.NewJSONSlice([]models.PaymentMethod{models.MethodBankTransfer}),
			SelectedMethod: models.MethodBankTransfer,
			Status:         models.RequestPending,
			ExpiresAt:      &expires,
		},
	}

	transactions := []models.PaymentTransaction{
		{
			ID:               "tx_1",
			PaymentRequestID: "req_1",
			Type:             models.TransactionCharge,
			Status:           models.StatusPending,
			Amount:           decimal.RequireFromString("19.99"),
			Currency:         models.CurrencyUSD,
			PaymentMethod:    models.MethodCreditCard,
			Gateway:          models.GatewayCardProcessor,
			ExternalID:       "pi_123",
			MaxRetries:       3,
		},
		{
			ID:               "tx_2",
			PaymentRequestID: "req_2",
			Type:             models.TransactionCapture,
			Status:           models.StatusPending,
			Amount:           decimal.RequireFromString("42.50"),
			Currency:         models.CurrencyUSD,
			PaymentMethod:    models.MethodWallet,
			Gateway:          models.GatewayWalletProcessor,
			ExternalID:       "CAP-1",
			MaxRetries:       3,
		},
		{
			ID:               "tx_3",
			PaymentRequestID: "req_3",
			Type:             models.TransactionCharge,
			Status:           models.StatusPending,
			Amount:           decimal.RequireFromString("250.00"),
			Currency:         models.CurrencyCOP,
			PaymentMethod:    models.MethodBankTransfer,
			Gateway:          models.GatewayBankTransfer,
			ExternalID:       "TR-55",
			MaxRetries:       3,
		},
	}

	for _, request := range requests {
		if err := db.Where(models.PaymentRequest{ID: request.ID}).FirstOrCreate(&request).Error; err != nil {
			return err
		}
	}
	for _, tx := range transactions {
		if err := db.Where(models.PaymentTransaction{ID: tx.ID}).FirstOrCreate(&tx).Error; err != nil {
			return err
		}
	}

	logrus.Info("Payment requests and transactions seeded")
	return nil
}
