package app

import (
	"errors"
	"fmt"
)

// Typed errors for the Braintree app layer. These enable HTTP mapping without
// relying on SDK-specific error types at the transport layer.
var (
	// ErrInvalidInput indicates the caller supplied missing or malformed data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoProfile indicates the user has no payment profile at the gateway yet.
	ErrNoProfile = errors.New("no payment profile")
	// ErrNotFound indicates the gateway has no record for the given reference.
	ErrNotFound = errors.New("not found")
	// ErrNotOwned indicates a payment method token belongs to another customer.
	ErrNotOwned = errors.New("payment method not owned by user")
	// ErrDatabase indicates a database-related failure.
	ErrDatabase = errors.New("database error")
	// ErrGateway indicates a failure from the Braintree gateway / API calls.
	ErrGateway = errors.New("gateway error")
)

// GatewayError carries the gateway's message for an unsuccessful response.
// It matches ErrGateway with errors.Is.
type GatewayError struct {
	Op      string
	Message string
	// Status is the transaction status when the failure is a declined transaction.
	Status string
	Err    error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("braintree %s: %s", e.Op, e.Message)
}

func (e *GatewayError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGateway}
	}
	return []error{ErrGateway, e.Err}
}

func gatewayErr(op string, err error) error {
	return &GatewayError{Op: op, Message: err.Error(), Err: err}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
