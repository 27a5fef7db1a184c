package app

import (
	"fmt"

	braintree "github.com/braintree-go/braintree-go"

	config "github.com/tbeaudouin05/braintree-billing/api/config"
)

// parsePaymentMethod dispatches on the SDK type. ok is false for a nil method.
func parsePaymentMethod(pm braintree.PaymentMethod) (PaymentMethod, bool) {
	switch v := pm.(type) {
	case nil:
		return PaymentMethod{}, false
	case *braintree.CreditCard:
		if v == nil {
			return PaymentMethod{}, false
		}
		return parseCreditCard(v), true
	case *braintree.PayPalAccount:
		if v == nil {
			return PaymentMethod{}, false
		}
		return parsePayPalAccount(v), true
	default:
		return PaymentMethod{
			Token:       pm.GetToken(),
			Type:        PaymentMethodTypeOther,
			Default:     pm.IsDefault(),
			Gateway:     config.GatewayName,
			Description: "Payment method",
			ImageURL:    pm.GetImageURL(),
		}, true
	}
}

func parseCreditCard(cc *braintree.CreditCard) PaymentMethod {
	cardType := cc.CardType
	if cardType == "" {
		cardType = "Card"
	}
	return PaymentMethod{
		Token:           cc.Token,
		Type:            PaymentMethodTypeCreditCard,
		Default:         cc.Default,
		Gateway:         config.GatewayName,
		Description:     fmt.Sprintf("%s ending in %s", cardType, cc.Last4),
		ImageURL:        cc.ImageURL,
		HolderName:      cc.CardholderName,
		CardType:        cc.CardType,
		Last4:           cc.Last4,
		ExpirationMonth: cc.ExpirationMonth,
		ExpirationYear:  cc.ExpirationYear,
	}
}

func parsePayPalAccount(pp *braintree.PayPalAccount) PaymentMethod {
	return PaymentMethod{
		Token:       pp.Token,
		Type:        PaymentMethodTypePayPalAccount,
		Default:     pp.Default,
		Gateway:     config.GatewayName,
		Description: fmt.Sprintf("PayPal (%s)", pp.Email),
		ImageURL:    pp.ImageURL,
		HolderName:  pp.Email,
		Email:       pp.Email,
	}
}

func parseCustomer(c braintree.Customer) Customer {
	out := Customer{
		ID:             c.Id,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Company:        c.Company,
		Email:          c.Email,
		Phone:          c.Phone,
		PaymentMethods: []PaymentMethod{},
		Addresses:      []Address{},
	}
	for _, pm := range c.PaymentMethods() {
		if parsed, ok := parsePaymentMethod(pm); ok {
			out.PaymentMethods = append(out.PaymentMethods, parsed)
		}
	}
	if c.Addresses != nil {
		for _, a := range c.Addresses.Address {
			if a != nil {
				out.Addresses = append(out.Addresses, parseAddress(*a))
			}
		}
	}
	return out
}

func parseAddress(a braintree.Address) Address {
	return Address{
		ID:                a.Id,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Company:           a.Company,
		StreetAddress:     a.StreetAddress,
		ExtendedAddress:   a.ExtendedAddress,
		Locality:          a.Locality,
		Region:            a.Region,
		PostalCode:        a.PostalCode,
		CountryCodeAlpha2: a.CountryCodeAlpha2,
	}
}

func parseTransaction(tx braintree.Transaction) Transaction {
	return Transaction{
		ID:                tx.Id,
		Status:            string(tx.Status),
		Type:              tx.Type,
		Amount:            fromGatewayAmount(tx.Amount),
		Currency:          tx.CurrencyISOCode,
		OrderID:           tx.OrderId,
		ProcessorResponse: tx.ProcessorResponseText,
		CreatedAt:         tx.CreatedAt,
	}
}
