package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	adminUseCase "github.com/amirhossein-jamali/linkledger/internal/domain/usecase/admin"
	bonusUseCase "github.com/amirhossein-jamali/linkledger/internal/domain/usecase/bonus"
	ledgerUseCase "github.com/amirhossein-jamali/linkledger/internal/domain/usecase/ledger"
	linkUseCase "github.com/amirhossein-jamali/linkledger/internal/domain/usecase/link"
	paymentUseCase "github.com/amirhossein-jamali/linkledger/internal/domain/usecase/payment"
	userUseCase "github.com/amirhossein-jamali/linkledger/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/gateway/paystack"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/config"
)

var errPaymentsDisabled = errors.New("payment gateway is not configured")

// app holds the infrastructure shared by every command
type app struct {
	conf     *config.Config
	logger   core.Logger
	clock    core.TimeProvider
	registry *prometheus.Registry
	db       *database.Manager
	uow      persistence.UnitOfWork
	ids      core.IDGenerator
	recorder core.MetricsRecorder
}

// useCases is the wired domain layer
type useCases struct {
	users   usecase.UserUseCase
	links   usecase.LinkUseCase
	bonus   usecase.BonusUseCase
	payment usecase.PaymentUseCase
	admin   usecase.AdminUseCase
}

// bootstrap loads configuration, builds the logger and connects the database
func bootstrap(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString(flagConfig)
	conf, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	appLogger, err := logger.NewZapLogger(conf.Logger, conf.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	clock := timeProvider.NewRealTimeProvider()
	dbManager := database.NewManager(database.FromAppConfig(conf), appLogger, clock, registry)
	if _, err := dbManager.Connect(cmd.Context()); err != nil {
		_ = appLogger.Flush()
		return nil, err
	}

	return &app{
		conf:     conf,
		logger:   appLogger,
		clock:    clock,
		registry: registry,
		db:       dbManager,
		uow:      database.NewUnitOfWorkWithRetry(dbManager.DB(), appLogger, clock, database.DefaultRetryConfig()),
		ids:      idgen.NewUUIDGenerator(),
		recorder: metrics.NewPrometheusRecorder(registry),
	}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("Failed to close database", map[string]any{"error": err.Error()})
	}
	_ = a.logger.Flush()
}

func (a *app) migrate(ctx context.Context) error {
	return a.db.MigrationManager().MigrateAll(ctx)
}

func (a *app) rateLimits() *repository.RateLimitRepository {
	return repository.NewRateLimitRepository(a.db.DB(), a.clock, a.logger)
}

// paymentGateway returns the configured gateway client, or a stand-in that
// refuses every call when no secret key is set
func (a *app) paymentGateway() (gateway.PaymentGateway, handler.SignatureVerifier) {
	client, err := paystack.NewClient(a.conf.Payment, a.logger)
	if err != nil {
		a.logger.Warn("Payment gateway disabled", map[string]any{"reason": err.Error()})
		return disabledGateway{}, disabledGateway{}
	}
	return client, client
}

func (a *app) useCases(paymentGateway gateway.PaymentGateway) *useCases {
	ledger := ledgerUseCase.NewLedgerUseCase(a.uow, a.clock, a.logger, a.recorder)
	return &useCases{
		users: userUseCase.NewUserUseCase(a.uow, a.conf.Auth.AdminEmails, a.clock, a.logger),
		links: linkUseCase.NewLinkUseCase(a.uow, ledger, a.conf.Pricing.Table(), a.ids,
			a.clock, a.logger, a.recorder),
		bonus: bonusUseCase.NewBonusUseCase(a.uow, ledger, a.conf.Bonus.Amount,
			a.clock, a.logger, a.recorder),
		payment: paymentUseCase.NewPaymentUseCase(a.uow, ledger, paymentGateway, a.ids,
			a.conf.Payment.CallbackURL, a.clock, a.logger, a.recorder),
		admin: adminUseCase.NewAdminUseCase(a.uow, ledger, a.ids, a.clock, a.logger),
	}
}

type disabledGateway struct{}

func (disabledGateway) Initialize(context.Context, gateway.InitializeRequest) (*gateway.InitializeResult, error) {
	return nil, errPaymentsDisabled
}

func (disabledGateway) Verify(context.Context, string) (*gateway.VerifyResult, error) {
	return nil, errPaymentsDisabled
}

func (disabledGateway) VerifySignature([]byte, string) bool { return false }
