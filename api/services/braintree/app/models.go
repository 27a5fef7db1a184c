package app

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethodType string

const (
	PaymentMethodTypeCreditCard    PaymentMethodType = "credit_card"
	PaymentMethodTypePayPalAccount PaymentMethodType = "paypal_account"
	PaymentMethodTypeOther         PaymentMethodType = "other"
)

// BillingDetails are the user fields copied onto the gateway customer.
type BillingDetails struct {
	FirstName string `json:"firstName" validate:"max=255"`
	LastName  string `json:"lastName" validate:"max=255"`
	Company   string `json:"company" validate:"max=255"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,max=40"`
}

// User is the billing application's view of an account holder.
// PaymentProfile is the cached gateway customer id; when empty the adapter
// looks it up in the account store.
type User struct {
	ExternalID     string `json:"userExternalId" validate:"required,max=255"`
	PaymentProfile string `json:"paymentProfile,omitempty"`
	BillingDetails
}

// PaymentMethod is the uniform projection of a gateway payment method
// consumed by the rest of the billing application.
type PaymentMethod struct {
	Token           string            `json:"token"`
	Type            PaymentMethodType `json:"type"`
	Default         bool              `json:"default"`
	Gateway         string            `json:"gateway"`
	Description     string            `json:"description"`
	ImageURL        string            `json:"imageUrl,omitempty"`
	HolderName      string            `json:"holderName,omitempty"`
	CardType        string            `json:"cardType,omitempty"`
	Last4           string            `json:"last4,omitempty"`
	ExpirationMonth string            `json:"expirationMonth,omitempty"`
	ExpirationYear  string            `json:"expirationYear,omitempty"`
	Email           string            `json:"email,omitempty"`
}

type Address struct {
	ID                string `json:"id,omitempty"`
	FirstName         string `json:"firstName" validate:"max=255"`
	LastName          string `json:"lastName" validate:"max=255"`
	Company           string `json:"company" validate:"max=255"`
	StreetAddress     string `json:"streetAddress" validate:"required,max=255"`
	ExtendedAddress   string `json:"extendedAddress" validate:"max=255"`
	Locality          string `json:"locality" validate:"max=255"`
	Region            string `json:"region" validate:"max=255"`
	PostalCode        string `json:"postalCode" validate:"max=9"`
	CountryCodeAlpha2 string `json:"countryCodeAlpha2" validate:"omitempty,len=2"`
}

// Customer is the gateway customer record with nested payment methods and addresses.
type Customer struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"firstName,omitempty"`
	LastName       string          `json:"lastName,omitempty"`
	Company        string          `json:"company,omitempty"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
	Addresses      []Address       `json:"addresses"`
}

// DefaultPaymentMethod returns the payment method flagged default, if any.
func (c Customer) DefaultPaymentMethod() (PaymentMethod, bool) {
	for _, pm := range c.PaymentMethods {
		if pm.Default {
			return pm, true
		}
	}
	return PaymentMethod{}, false
}

type PurchaseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,max=255"`
	// OrderID is the optional merchant order reference.
	OrderID string `json:"orderId,omitempty" validate:"omitempty,max=255"`
	// PaymentMethodToken selects a vaulted method; the customer's default is used when empty.
	PaymentMethodToken string `json:"paymentMethodToken,omitempty" validate:"omitempty,max=64"`
}

// Transaction is the gateway transaction response returned by Purchase.
type Transaction struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	Type              string          `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency,omitempty"`
	OrderID           string          `json:"orderId,omitempty"`
	ProcessorResponse string          `json:"processorResponse,omitempty"`
	CreatedAt         *time.Time      `json:"createdAt,omitempty"`
}
