package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	config "github.com/tbeaudouin05/braintree-billing/api/config"
	gw "github.com/tbeaudouin05/braintree-billing/api/services/braintree/gateway"
)

// PaymentGateway is the billing application's gateway contract.
type PaymentGateway interface {
	GatewayName() string

	CreatePaymentProfile(ctx context.Context, user User) (string, error)
	UpdatePaymentProfile(ctx context.Context, user User) (Customer, error)
	FindCustomer(ctx context.Context, profileID string) (Customer, error)
	ClientToken(ctx context.Context, user User) (string, error)
	CreateAddress(ctx context.Context, user User, addr Address) (Address, error)

	ListPaymentMethods(ctx context.Context, user User) ([]PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, user User, nonce string, makeDefault bool) (PaymentMethod, error)
	SetDefaultPaymentMethod(ctx context.Context, user User, token string) (PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, user User, token string) (bool, error)

	Purchase(ctx context.Context, user User, req PurchaseRequest) (Transaction, error)
	// Void and Refund echo the transaction reference back on success.
	Void(ctx context.Context, reference string) (string, error)
	Refund(ctx context.Context, reference string, amount *decimal.Decimal) (string, error)
}

// AccountStore caches the payment profile on the user record.
type AccountStore interface {
	GetPaymentProfile(ctx context.Context, userExternalID string) (string, error)
	SavePaymentProfile(ctx context.Context, userExternalID, profile string) error
	ClearPaymentProfile(ctx context.Context, userExternalID string) error
}

type Options struct {
	MerchantAccountID string
	DescriptorName    string
	DescriptorPhone   string
	DescriptorURL     string
	VerifyCards       bool
	FailOnDuplicate   bool
	Logger            *zap.Logger
}

// OptionsFromConfig maps application configuration onto adapter options.
func OptionsFromConfig(cfg *config.Config, log *zap.Logger) Options {
	return Options{
		MerchantAccountID: cfg.BraintreeMerchantAccountID,
		DescriptorName:    cfg.DescriptorName,
		DescriptorPhone:   cfg.DescriptorPhone,
		DescriptorURL:     cfg.DescriptorURL,
		VerifyCards:       cfg.VerifyCardsEnabled(),
		FailOnDuplicate:   cfg.FailOnDuplicate(),
		Logger:            log,
	}
}

type serviceImpl struct {
	gw    gw.BraintreeGateway
	store AccountStore
	opts  Options
	log   *zap.Logger
}

func NewService(g gw.BraintreeGateway, store AccountStore, opts Options) PaymentGateway {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return serviceImpl{gw: g, store: store, opts: opts, log: log.Named("billing")}
}

func (s serviceImpl) GatewayName() string { return config.GatewayName }

// profileOf returns the user's cached payment profile, or "" when there is none.
func (s serviceImpl) profileOf(ctx context.Context, user User) (string, error) {
	if user.PaymentProfile != "" {
		return user.PaymentProfile, nil
	}
	if s.store == nil || user.ExternalID == "" {
		return "", nil
	}
	profile, err := s.store.GetPaymentProfile(ctx, user.ExternalID)
	if err != nil {
		return "", fmt.Errorf("%w: error retrieving payment profile: %v", ErrDatabase, err)
	}
	return profile, nil
}

// requireProfile is profileOf that fails with ErrNoProfile when the user has none.
func (s serviceImpl) requireProfile(ctx context.Context, user User) (string, error) {
	profile, err := s.profileOf(ctx, user)
	if err != nil {
		return "", err
	}
	if profile == "" {
		return "", fmt.Errorf("%w: user %s", ErrNoProfile, user.ExternalID)
	}
	return profile, nil
}

// customerOf loads the customer behind profile. A cached profile the gateway
// no longer knows is cleared from the store and reported as ErrNoProfile.
func (s serviceImpl) customerOf(ctx context.Context, user User, profile string) (Customer, error) {
	cust, err := s.gw.FindCustomer(ctx, profile)
	if errors.Is(err, gw.ErrNotFound) {
		s.log.Warn("cached payment profile missing at gateway",
			zap.String("user_external_id", user.ExternalID), zap.String("profile", profile))
		if s.store != nil && user.ExternalID != "" {
			if cerr := s.store.ClearPaymentProfile(ctx, user.ExternalID); cerr != nil {
				return Customer{}, fmt.Errorf("%w: error clearing payment profile: %v", ErrDatabase, cerr)
			}
		}
		return Customer{}, fmt.Errorf("%w: user %s: customer %s no longer exists", ErrNoProfile, user.ExternalID, profile)
	}
	if err != nil {
		return Customer{}, s.fail("customer.find", err, zap.String("profile", profile))
	}
	return parseCustomer(cust), nil
}

func (s serviceImpl) fail(op string, err error, fields ...zap.Field) error {
	s.log.Warn("gateway call failed", append(fields, zap.String("op", op), zap.Error(err))...)
	if errors.Is(err, gw.ErrNotFound) {
		return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
	}
	return gatewayErr(op, err)
}
