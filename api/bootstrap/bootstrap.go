package bootstrap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tbeaudouin05/braintree-billing/api/config"
	"github.com/tbeaudouin05/braintree-billing/api/database"
	"github.com/tbeaudouin05/braintree-billing/api/logger"
	billingapp "github.com/tbeaudouin05/braintree-billing/api/services/braintree/app"
	billingdb "github.com/tbeaudouin05/braintree-billing/api/services/braintree/db"
	braintreegw "github.com/tbeaudouin05/braintree-billing/api/services/braintree/gateway/braintree"
)

var (
	billingService billingapp.PaymentGateway
	log            = zap.NewNop()
	initOnce       sync.Once
	initErr        error
)

// Init initializes config, logging, database, and the Braintree client, and wires services.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if billingService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg := config.AppConfig

	l, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	log = l

	if err := database.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	gateway, err := braintreegw.New(braintreegw.Options{
		Environment: cfg.BraintreeEnvironment,
		MerchantID:  cfg.BraintreeMerchantID,
		PublicKey:   cfg.BraintreePublicKey,
		PrivateKey:  cfg.BraintreePrivateKey,
		Timeout:     cfg.Timeout(),
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to create braintree client: %w", err)
	}

	billingService = billingapp.NewService(
		gateway,
		billingdb.NewStore(database.GetDB()),
		billingapp.OptionsFromConfig(cfg, log),
	)
	log.Info("billing service initialized", zap.String("environment", cfg.BraintreeEnvironment))
	return nil
}

func GetBillingService() billingapp.PaymentGateway { return billingService }

// SetBillingService allows tests to inject a stub implementation.
func SetBillingService(s billingapp.PaymentGateway) { billingService = s }

// Logger returns the process logger; a no-op logger until Init succeeds.
func Logger() *zap.Logger { return log }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
