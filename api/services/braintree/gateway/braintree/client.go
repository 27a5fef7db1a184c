package braintreegw

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	braintree "github.com/braintree-go/braintree-go"
	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/braintree-billing/api/services/braintree/gateway"
)

// Options configures the SDK-backed client.
type Options struct {
	Environment string
	MerchantID  string
	PublicKey   string
	PrivateKey  string
	// Timeout bounds every remote call. Zero means no extra bound beyond ctx.
	Timeout time.Duration
	Logger  *zap.Logger
}

// client is the braintree-go backed implementation of the gateway.
type client struct {
	bt      *braintree.Braintree
	timeout time.Duration
	log     *zap.Logger
}

// New returns a BraintreeGateway backed by the braintree-go SDK.
func New(opts Options) (gw.BraintreeGateway, error) {
	env, err := environment(opts.Environment)
	if err != nil {
		return nil, err
	}
	if opts.MerchantID == "" || opts.PublicKey == "" || opts.PrivateKey == "" {
		return nil, fmt.Errorf("braintree credentials not configured")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return client{
		bt:      braintree.New(env, opts.MerchantID, opts.PublicKey, opts.PrivateKey),
		timeout: opts.Timeout,
		log:     log.Named("braintree"),
	}, nil
}

func environment(name string) (braintree.Environment, error) {
	switch name {
	case "sandbox":
		return braintree.Sandbox, nil
	case "production":
		return braintree.Production, nil
	case "development":
		return braintree.Development, nil
	default:
		var zero braintree.Environment
		return zero, fmt.Errorf("unsupported braintree environment: %q", name)
	}
}

func (c client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// statusCoder is satisfied by the SDK's API errors.
type statusCoder interface {
	StatusCode() int
}

// classify wraps a 404 from the API with gw.ErrNotFound.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var sc statusCoder
	if errors.As(err, &sc) && sc.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %w", gw.ErrNotFound, err)
	}
	return err
}

func (c client) trace(op string, start time.Time, err error) {
	fields := []zap.Field{zap.String("op", op), zap.Duration("took", time.Since(start))}
	if err != nil {
		c.log.Debug("braintree call failed", append(fields, zap.Error(err))...)
		return
	}
	c.log.Debug("braintree call", fields...)
}

func (c client) CreateCustomer(ctx context.Context, req braintree.CustomerRequest) (braintree.Customer, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	cust, err := c.bt.Customer().Create(ctx, &req)
	c.trace("customer.create", start, err)
	if err != nil {
		return braintree.Customer{}, err
	}
	if cust == nil {
		return braintree.Customer{}, nil
	}
	return *cust, nil
}

func (c client) UpdateCustomer(ctx context.Context, req braintree.CustomerRequest) (braintree.Customer, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	cust, err := c.bt.Customer().Update(ctx, &req)
	c.trace("customer.update", start, err)
	if err != nil {
		return braintree.Customer{}, classify(err)
	}
	if cust == nil {
		return braintree.Customer{}, nil
	}
	return *cust, nil
}

func (c client) FindCustomer(ctx context.Context, id string) (braintree.Customer, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	cust, err := c.bt.Customer().Find(ctx, id)
	c.trace("customer.find", start, err)
	if err != nil {
		return braintree.Customer{}, classify(err)
	}
	if cust == nil {
		return braintree.Customer{}, nil
	}
	return *cust, nil
}

func (c client) CreatePaymentMethod(ctx context.Context, req braintree.PaymentMethodRequest) (braintree.PaymentMethod, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	pm, err := c.bt.PaymentMethod().Create(ctx, &req)
	c.trace("payment_method.create", start, err)
	return pm, err
}

func (c client) UpdatePaymentMethod(ctx context.Context, token string, req braintree.PaymentMethodRequest) (braintree.PaymentMethod, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	pm, err := c.bt.PaymentMethod().Update(ctx, token, &req)
	c.trace("payment_method.update", start, err)
	return pm, classify(err)
}

func (c client) FindPaymentMethod(ctx context.Context, token string) (braintree.PaymentMethod, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	pm, err := c.bt.PaymentMethod().Find(ctx, token)
	c.trace("payment_method.find", start, err)
	return pm, classify(err)
}

func (c client) DeletePaymentMethod(ctx context.Context, token string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	err := c.bt.PaymentMethod().Delete(ctx, token)
	c.trace("payment_method.delete", start, err)
	return classify(err)
}

func (c client) CreateTransaction(ctx context.Context, req braintree.TransactionRequest) (braintree.Transaction, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	tx, err := c.bt.Transaction().Create(ctx, &req)
	c.trace("transaction.sale", start, err)
	return derefTransaction(tx, err)
}

func (c client) VoidTransaction(ctx context.Context, id string) (braintree.Transaction, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	tx, err := c.bt.Transaction().Void(ctx, id)
	c.trace("transaction.void", start, err)
	return derefTransaction(tx, classify(err))
}

func (c client) RefundTransaction(ctx context.Context, id string, amount *braintree.Decimal) (braintree.Transaction, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	var (
		tx  *braintree.Transaction
		err error
	)
	if amount == nil {
		tx, err = c.bt.Transaction().Refund(ctx, id)
	} else {
		tx, err = c.bt.Transaction().Refund(ctx, id, amount)
	}
	c.trace("transaction.refund", start, err)
	return derefTransaction(tx, classify(err))
}

func (c client) CreateAddress(ctx context.Context, customerID string, req braintree.AddressRequest) (braintree.Address, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	addr, err := c.bt.Address().Create(ctx, customerID, &req)
	c.trace("address.create", start, err)
	if err != nil {
		return braintree.Address{}, err
	}
	if addr == nil {
		return braintree.Address{}, nil
	}
	return *addr, nil
}

func (c client) GenerateClientToken(ctx context.Context, customerID string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	var (
		token string
		err   error
	)
	if customerID == "" {
		token, err = c.bt.ClientToken().Generate(ctx)
	} else {
		token, err = c.bt.ClientToken().GenerateWithCustomer(ctx, customerID)
	}
	c.trace("client_token.generate", start, err)
	return token, err
}

func derefTransaction(tx *braintree.Transaction, err error) (braintree.Transaction, error) {
	if err != nil {
		return braintree.Transaction{}, err
	}
	if tx == nil {
		return braintree.Transaction{}, nil
	}
	return *tx, nil
}
