package app

import (
	"context"
	"errors"
	"fmt"

	braintree "github.com/braintree-go/braintree-go"
	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/braintree-billing/api/services/braintree/gateway"
)

func (s serviceImpl) ListPaymentMethods(ctx context.Context, user User) ([]PaymentMethod, error) {
	profile, err := s.profileOf(ctx, user)
	if err != nil {
		return nil, err
	}
	if profile == "" {
		return []PaymentMethod{}, nil
	}
	cust, err := s.customerOf(ctx, user, profile)
	if err != nil {
		return nil, err
	}
	return cust.PaymentMethods, nil
}

// CreatePaymentMethod vaults the payment details behind nonce for user,
// creating the user's payment profile first when needed.
func (s serviceImpl) CreatePaymentMethod(ctx context.Context, user User, nonce string, makeDefault bool) (PaymentMethod, error) {
	if nonce == "" {
		return PaymentMethod{}, invalid("payment method nonce is required")
	}
	profile, err := s.profileOf(ctx, user)
	if err != nil {
		return PaymentMethod{}, err
	}
	if profile == "" {
		if profile, err = s.CreatePaymentProfile(ctx, user); err != nil {
			return PaymentMethod{}, err
		}
	}

	verify := s.opts.VerifyCards
	pm, err := s.gw.CreatePaymentMethod(ctx, braintree.PaymentMethodRequest{
		CustomerId:         profile,
		PaymentMethodNonce: nonce,
		Options: &braintree.PaymentMethodRequestOptions{
			MakeDefault:                  makeDefault,
			FailOnDuplicatePaymentMethod: s.opts.FailOnDuplicate,
			VerifyCard:                   &verify,
		},
	})
	if err != nil {
		return PaymentMethod{}, s.fail("payment_method.create", err, zap.String("profile", profile))
	}
	parsed, ok := parsePaymentMethod(pm)
	if !ok {
		return PaymentMethod{}, s.fail("payment_method.create", errors.New("gateway returned no payment method"))
	}
	s.log.Info("payment method created", zap.String("profile", profile), zap.String("type", string(parsed.Type)))
	return parsed, nil
}

func (s serviceImpl) SetDefaultPaymentMethod(ctx context.Context, user User, token string) (PaymentMethod, error) {
	if token == "" {
		return PaymentMethod{}, invalid("payment method token is required")
	}
	profile, err := s.requireProfile(ctx, user)
	if err != nil {
		return PaymentMethod{}, err
	}
	if err := s.ensureOwned(ctx, profile, token); err != nil {
		return PaymentMethod{}, err
	}

	pm, err := s.gw.UpdatePaymentMethod(ctx, token, braintree.PaymentMethodRequest{
		Options: &braintree.PaymentMethodRequestOptions{MakeDefault: true},
	})
	if err != nil {
		return PaymentMethod{}, s.fail("payment_method.update", err, zap.String("profile", profile))
	}
	parsed, ok := parsePaymentMethod(pm)
	if !ok {
		return PaymentMethod{}, s.fail("payment_method.update", errors.New("gateway returned no payment method"))
	}
	return parsed, nil
}

func (s serviceImpl) DeletePaymentMethod(ctx context.Context, user User, token string) (bool, error) {
	if token == "" {
		return false, invalid("payment method token is required")
	}
	profile, err := s.requireProfile(ctx, user)
	if err != nil {
		return false, err
	}
	if err := s.ensureOwned(ctx, profile, token); err != nil {
		return false, err
	}
	if err := s.gw.DeletePaymentMethod(ctx, token); err != nil {
		return false, s.fail("payment_method.delete", err, zap.String("profile", profile))
	}
	s.log.Info("payment method deleted", zap.String("profile", profile))
	return true, nil
}

// ensureOwned checks that token is vaulted under the customer profile. An
// unknown token is treated the same as someone else's.
func (s serviceImpl) ensureOwned(ctx context.Context, profile, token string) error {
	pm, err := s.gw.FindPaymentMethod(ctx, token)
	if errors.Is(err, gw.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotOwned, token)
	}
	if err != nil {
		return s.fail("payment_method.find", err, zap.String("profile", profile))
	}
	if pm == nil || pm.GetCustomerId() != profile {
		return fmt.Errorf("%w: %s", ErrNotOwned, token)
	}
	return nil
}
