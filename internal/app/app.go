package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payment-callbacks/config"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/database"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/gateway"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/handlers"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/metrics"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/normalizer"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/publisher"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/service"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/subscriber"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
	callbacks *handlers.CallbackHandler
	reconcile *service.ReconciliationService
}

func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg
	config.ConfigureLogger(cfg.Log)
	metrics.RegisterMetrics()

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.PaymentRequest{},
		&models.PaymentTransaction{},
		&models.PaymentRefund{},
		&models.PaymentAuditLog{},
		&models.SagaStep{},
	); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	if cfg.IsLocal() {
		if err := database.SeedPayments(db); err != nil {
			logrus.Warnf("failed to seed payments: %v", err)
		}
	}

	brokers := cfg.Kafka.BrokerList()
	topics := []string{cfg.Kafka.CallbackTopic, cfg.Kafka.EventsTopic, cfg.Kafka.DLQTopic}
	a.publisher = publisher.NewKafkaPublisher(brokers, topics, cfg.Kafka.GetRetryConfig())

	requests := posgrest.NewRequestStore(db)
	transactions := posgrest.NewTransactionStore(db)
	refunds := posgrest.NewRefundStore(db)
	audit := posgrest.NewAuditStore(db)
	journal := posgrest.NewJournalStore(db)

	saga := service.NewSagaService(requests, transactions, refunds, audit, a.publisher, journal, cfg.Kafka.EventsTopic)
	a.callbacks = handlers.NewCallbackHandler(saga, cfg.Kafka.CallbackTopic)
	a.reconcile = service.NewReconciliationService(transactions, refunds, audit, saga, a.queriers(), service.ReconcileOptions{
		Interval:       cfg.Reconcile.Interval,
		Cutoff:         cfg.Reconcile.Cutoff,
		BatchSize:      cfg.Reconcile.BatchSize,
		QueryTimeout:   cfg.Reconcile.QueryTimeout,
		AuditRetention: cfg.Audit.Retention,
	})

	webhookHandler := handlers.NewWebhookHandler(
		normalizer.NewRegistry(),
		a.publisher,
		cfg.Kafka.CallbackTopic,
		cfg.APP.PublishTimeout,
		cfg.Gateways.CardWebhookSecret,
	)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(webhookHandler)

	a.consumer = subscriber.NewMultiTopicConsumer(
		brokers,
		[]string{cfg.Kafka.CallbackTopic},
		cfg.Kafka.ConsumerGroup,
		cfg.Kafka.Workers,
		a.publisher,
		cfg.Kafka.DLQTopic,
		cfg.Kafka.GetRetryConfig(),
	)
	return nil
}

// queriers returns a status querier for every gateway that has credentials.
func (a *App) queriers() []service.StatusQuerier {
	gw := a.config.Gateways
	var queriers []service.StatusQuerier
	if gw.CardSecretKey != "" {
		queriers = append(queriers, gateway.NewCardQuerier(gw.CardSecretKey, nil))
	}
	if gw.WalletBaseURL != "" {
		queriers = append(queriers, gateway.NewWalletQuerier(gw.WalletBaseURL, gw.WalletToken, gw.HTTPTimeout))
	}
	if gw.BankBaseURL != "" {
		queriers = append(queriers, gateway.NewBankQuerier(gw.BankBaseURL, gw.BankAPIKey, gw.HTTPTimeout))
	}
	return queriers
}

// Run serves HTTP and consumes callbacks until ctx is cancelled, then drains both.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.initSubscribers(ctx)
	}()

	if a.config.Reconcile.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.reconcile.Run(ctx)
		}()
	}

	serverErr := make(chan error, 1)
	go func() {
		logrus.Infof("Payment callbacks service listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.APP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("HTTP server shutdown: %v", err)
	}

	wg.Wait()
	if err := a.consumer.Close(); err != nil {
		logrus.Errorf("Error closing consumer: %v", err)
	}
	if err := a.publisher.Close(); err != nil {
		logrus.Errorf("Error closing publisher: %v", err)
	}

	logrus.Info("Payment callbacks service stopped")
	return runErr
}

func (a *App) initSubscribers(ctx context.Context) {
	a.consumer.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		logrus.Debugf("Received message → topic=%s value=%s", topic, string(value))
		return a.callbacks.HandleEvents(ctx, topic, value)
	})
}
