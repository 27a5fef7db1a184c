package app

import (
	"context"
	"errors"
	"fmt"

	braintree "github.com/braintree-go/braintree-go"
	"go.uber.org/zap"
)

// CreatePaymentProfile creates the gateway customer for user and caches its id
// on the user record. A user that already has a profile gets it back unchanged.
func (s serviceImpl) CreatePaymentProfile(ctx context.Context, user User) (string, error) {
	if err := validateStruct(user); err != nil {
		return "", err
	}
	existing, err := s.profileOf(ctx, user)
	if err != nil {
		return "", err
	}
	if existing != "" {
		return existing, nil
	}

	cust, err := s.gw.CreateCustomer(ctx, customerRequest(user))
	if err != nil {
		return "", s.fail("customer.create", err, zap.String("user_external_id", user.ExternalID))
	}
	if cust.Id == "" {
		return "", s.fail("customer.create", errors.New("gateway returned no customer id"))
	}

	if s.store != nil {
		if err := s.store.SavePaymentProfile(ctx, user.ExternalID, cust.Id); err != nil {
			return "", fmt.Errorf("%w: error saving payment profile: %v", ErrDatabase, err)
		}
	}
	s.log.Info("payment profile created", zap.String("user_external_id", user.ExternalID), zap.String("profile", cust.Id))
	return cust.Id, nil
}

// UpdatePaymentProfile copies the user's billing details onto the gateway customer.
func (s serviceImpl) UpdatePaymentProfile(ctx context.Context, user User) (Customer, error) {
	if err := validateStruct(user); err != nil {
		return Customer{}, err
	}
	profile, err := s.requireProfile(ctx, user)
	if err != nil {
		return Customer{}, err
	}

	req := customerRequest(user)
	req.ID = profile
	cust, err := s.gw.UpdateCustomer(ctx, req)
	if err != nil {
		return Customer{}, s.fail("customer.update", err, zap.String("profile", profile))
	}
	return parseCustomer(cust), nil
}

func (s serviceImpl) FindCustomer(ctx context.Context, profileID string) (Customer, error) {
	if profileID == "" {
		return Customer{}, invalid("profile id is required")
	}
	cust, err := s.gw.FindCustomer(ctx, profileID)
	if err != nil {
		return Customer{}, s.fail("customer.find", err, zap.String("profile", profileID))
	}
	return parseCustomer(cust), nil
}

// ClientToken issues a drop-in UI token, scoped to the user's customer when one exists.
func (s serviceImpl) ClientToken(ctx context.Context, user User) (string, error) {
	profile, err := s.profileOf(ctx, user)
	if err != nil {
		return "", err
	}
	token, err := s.gw.GenerateClientToken(ctx, profile)
	if err != nil {
		return "", s.fail("client_token.generate", err, zap.String("profile", profile))
	}
	return token, nil
}

func (s serviceImpl) CreateAddress(ctx context.Context, user User, addr Address) (Address, error) {
	if err := validateStruct(addr); err != nil {
		return Address{}, err
	}
	profile, err := s.requireProfile(ctx, user)
	if err != nil {
		return Address{}, err
	}
	created, err := s.gw.CreateAddress(ctx, profile, braintree.AddressRequest{
		FirstName:         addr.FirstName,
		LastName:          addr.LastName,
		Company:           addr.Company,
		StreetAddress:     addr.StreetAddress,
		ExtendedAddress:   addr.ExtendedAddress,
		Locality:          addr.Locality,
		Region:            addr.Region,
		PostalCode:        addr.PostalCode,
		CountryCodeAlpha2: addr.CountryCodeAlpha2,
	})
	if err != nil {
		return Address{}, s.fail("address.create", err, zap.String("profile", profile))
	}
	return parseAddress(created), nil
}

func customerRequest(user User) braintree.CustomerRequest {
	return braintree.CustomerRequest{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Company:   user.Company,
		Email:     user.Email,
		Phone:     user.Phone,
	}
}
