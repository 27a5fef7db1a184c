package gateway

import (
	"context"
	"errors"

	braintree "github.com/braintree-go/braintree-go"
)

// ErrNotFound is wrapped by implementations when the gateway reports that the
// requested customer, payment method or transaction does not exist.
var ErrNotFound = errors.New("not found at gateway")

//go:generate mockgen -destination=mock/gateway_mock.go -package=mockgw . BraintreeGateway

// BraintreeGateway abstracts the Braintree SDK operations needed by the app layer.
// Methods return values (not pointers) to keep SDK pointer types out of the
// public interface; PaymentMethod is already an SDK interface.
type BraintreeGateway interface {
	CreateCustomer(ctx context.Context, req braintree.CustomerRequest) (braintree.Customer, error)
	UpdateCustomer(ctx context.Context, req braintree.CustomerRequest) (braintree.Customer, error)
	FindCustomer(ctx context.Context, id string) (braintree.Customer, error)

	CreatePaymentMethod(ctx context.Context, req braintree.PaymentMethodRequest) (braintree.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, token string, req braintree.PaymentMethodRequest) (braintree.PaymentMethod, error)
	FindPaymentMethod(ctx context.Context, token string) (braintree.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, token string) error

	CreateTransaction(ctx context.Context, req braintree.TransactionRequest) (braintree.Transaction, error)
	VoidTransaction(ctx context.Context, id string) (braintree.Transaction, error)
	// RefundTransaction refunds the full amount when amount is nil.
	RefundTransaction(ctx context.Context, id string, amount *braintree.Decimal) (braintree.Transaction, error)

	CreateAddress(ctx context.Context, customerID string, req braintree.AddressRequest) (braintree.Address, error)
	// GenerateClientToken scopes the token to customerID when it is not empty.
	GenerateClientToken(ctx context.Context, customerID string) (string, error)
}
