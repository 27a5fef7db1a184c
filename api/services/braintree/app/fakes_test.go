package app

import (
	"context"
	"fmt"
	"sync"

	braintree "github.com/braintree-go/braintree-go"

	gw "github.com/tbeaudouin05/braintree-billing/api/services/braintree/gateway"
)

// fakeGateway is an in-memory BraintreeGateway. Err, when set, is returned by every call.
type fakeGateway struct {
	mu sync.Mutex

	customers map[string]braintree.Customer
	methods   map[string]braintree.PaymentMethod
	nextID    int

	lastCustomerReq      braintree.CustomerRequest
	lastPaymentMethodReq braintree.PaymentMethodRequest
	lastTransactionReq   braintree.TransactionRequest
	lastRefundAmount     *braintree.Decimal
	deleted              []string
	clientTokenFor       []string

	txResult braintree.Transaction
	err      error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		customers: map[string]braintree.Customer{},
		methods:   map[string]braintree.PaymentMethod{},
	}
}

func (f *fakeGateway) id(prefix string) string {
	f.nextID++
	return prefix + string(rune('0'+f.nextID))
}

func (f *fakeGateway) CreateCustomer(ctx context.Context, req braintree.CustomerRequest) (braintree.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCustomerReq = req
	if f.err != nil {
		return braintree.Customer{}, f.err
	}
	c := braintree.Customer{Id: f.id("cust_"), FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
	f.customers[c.Id] = c
	return c, nil
}

func (f *fakeGateway) UpdateCustomer(ctx context.Context, req braintree.CustomerRequest) (braintree.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCustomerReq = req
	if f.err != nil {
		return braintree.Customer{}, f.err
	}
	c, ok := f.customers[req.ID]
	if !ok {
		return braintree.Customer{}, fmt.Errorf("%w: customer %s", gw.ErrNotFound, req.ID)
	}
	c.FirstName, c.LastName, c.Email = req.FirstName, req.LastName, req.Email
	f.customers[req.ID] = c
	return c, nil
}

func (f *fakeGateway) FindCustomer(ctx context.Context, id string) (braintree.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return braintree.Customer{}, f.err
	}
	c, ok := f.customers[id]
	if !ok {
		return braintree.Customer{}, fmt.Errorf("%w: customer %s", gw.ErrNotFound, id)
	}
	return c, nil
}

func (f *fakeGateway) CreatePaymentMethod(ctx context.Context, req braintree.PaymentMethodRequest) (braintree.PaymentMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPaymentMethodReq = req
	if f.err != nil {
		return nil, f.err
	}
	cc := &braintree.CreditCard{
		Token:      f.id("tok_"),
		CustomerId: req.CustomerId,
		CardType:   "Visa",
		Last4:      "1111",
		Default:    req.Options != nil && req.Options.MakeDefault,
	}
	f.methods[cc.Token] = cc
	return cc, nil
}

func (f *fakeGateway) UpdatePaymentMethod(ctx context.Context, token string, req braintree.PaymentMethodRequest) (braintree.PaymentMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPaymentMethodReq = req
	if f.err != nil {
		return nil, f.err
	}
	pm, ok := f.methods[token]
	if !ok {
		return nil, fmt.Errorf("%w: payment method %s", gw.ErrNotFound, token)
	}
	if cc, isCard := pm.(*braintree.CreditCard); isCard && req.Options != nil && req.Options.MakeDefault {
		cc.Default = true
	}
	return pm, nil
}

func (f *fakeGateway) FindPaymentMethod(ctx context.Context, token string) (braintree.PaymentMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	pm, ok := f.methods[token]
	if !ok {
		return nil, fmt.Errorf("%w: payment method %s", gw.ErrNotFound, token)
	}
	return pm, nil
}

func (f *fakeGateway) DeletePaymentMethod(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.methods, token)
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeGateway) CreateTransaction(ctx context.Context, req braintree.TransactionRequest) (braintree.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTransactionReq = req
	if f.err != nil {
		return braintree.Transaction{}, f.err
	}
	tx := f.txResult
	if tx.Id == "" {
		tx = braintree.Transaction{Id: "tx_1", Status: "submitted_for_settlement", Type: req.Type, Amount: req.Amount, OrderId: req.OrderId}
	}
	return tx, nil
}

func (f *fakeGateway) VoidTransaction(ctx context.Context, id string) (braintree.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return braintree.Transaction{}, f.err
	}
	if f.txResult.Id != "" {
		return f.txResult, nil
	}
	return braintree.Transaction{Id: id, Status: "voided"}, nil
}

func (f *fakeGateway) RefundTransaction(ctx context.Context, id string, amount *braintree.Decimal) (braintree.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastRefundAmount = amount
	if f.err != nil {
		return braintree.Transaction{}, f.err
	}
	return braintree.Transaction{Id: "refund_" + id, Type: "credit", Status: "submitted_for_settlement"}, nil
}

func (f *fakeGateway) CreateAddress(ctx context.Context, customerID string, req braintree.AddressRequest) (braintree.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return braintree.Address{}, f.err
	}
	return braintree.Address{
		Id:                "addr_1",
		CustomerId:        customerID,
		StreetAddress:     req.StreetAddress,
		Locality:          req.Locality,
		PostalCode:        req.PostalCode,
		CountryCodeAlpha2: req.CountryCodeAlpha2,
	}, nil
}

func (f *fakeGateway) GenerateClientToken(ctx context.Context, customerID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clientTokenFor = append(f.clientTokenFor, customerID)
	if f.err != nil {
		return "", f.err
	}
	return "client-token", nil
}

// memStore is an in-memory AccountStore.
type memStore struct {
	mu       sync.Mutex
	profiles map[string]string
	cleared  []string
	err      error
}

func newMemStore() *memStore { return &memStore{profiles: map[string]string{}} }

func (m *memStore) GetPaymentProfile(ctx context.Context, userExternalID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.profiles[userExternalID], nil
}

func (m *memStore) SavePaymentProfile(ctx context.Context, userExternalID, profile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.profiles[userExternalID] = profile
	return nil
}

func (m *memStore) ClearPaymentProfile(ctx context.Context, userExternalID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.profiles, userExternalID)
	m.cleared = append(m.cleared, userExternalID)
	return nil
}
