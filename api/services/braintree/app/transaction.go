package app

import (
	"context"
	"errors"

	braintree "github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const transactionTypeSale = "sale"

// Statuses Braintree reports for a transaction that did not go through.
var unsuccessfulStatuses = map[string]bool{
	"processor_declined":    true,
	"gateway_rejected":      true,
	"failed":                true,
	"settlement_declined":   true,
	"authorization_expired": true,
}

// Purchase charges the user's vaulted payment method and submits it for settlement.
func (s serviceImpl) Purchase(ctx context.Context, user User, req PurchaseRequest) (Transaction, error) {
	if err := validateStruct(req); err != nil {
		return Transaction{}, err
	}
	if !req.Amount.IsPositive() {
		return Transaction{}, invalid("amount must be positive, got %s", req.Amount)
	}
	profile, err := s.requireProfile(ctx, user)
	if err != nil {
		return Transaction{}, err
	}
	amount, err := toGatewayAmount(req.Amount)
	if err != nil {
		return Transaction{}, err
	}
	token := req.PaymentMethodToken
	if token != "" {
		if err := s.ensureOwned(ctx, profile, token); err != nil {
			return Transaction{}, err
		}
	} else {
		cust, err := s.customerOf(ctx, user, profile)
		if err != nil {
			return Transaction{}, err
		}
		def, ok := cust.DefaultPaymentMethod()
		if !ok {
			return Transaction{}, invalid("customer %s has no default payment method", profile)
		}
		token = def.Token
	}

	tx, err := s.gw.CreateTransaction(ctx, braintree.TransactionRequest{
		Type:               transactionTypeSale,
		Amount:             amount,
		CustomerID:         profile,
		PaymentMethodToken: token,
		OrderId:            req.OrderID,
		MerchantAccountId:  s.opts.MerchantAccountID,
		Descriptor:         s.descriptor(req.Description),
		Options:            &braintree.TransactionOptions{SubmitForSettlement: true},
	})
	if err != nil {
		return Transaction{}, s.failTransaction("transaction.sale", err, zap.String("profile", profile), zap.String("order_id", req.OrderID))
	}
	if err := s.checkTransaction("transaction.sale", tx); err != nil {
		return Transaction{}, err
	}
	s.log.Info("purchase completed",
		zap.String("profile", profile),
		zap.String("transaction_id", tx.Id),
		zap.String("amount", req.Amount.StringFixed(2)))
	return parseTransaction(tx), nil
}

func (s serviceImpl) Void(ctx context.Context, reference string) (string, error) {
	if reference == "" {
		return "", invalid("transaction reference is required")
	}
	tx, err := s.gw.VoidTransaction(ctx, reference)
	if err != nil {
		return "", s.failTransaction("transaction.void", err, zap.String("transaction_id", reference))
	}
	if err := s.checkTransaction("transaction.void", tx); err != nil {
		return "", err
	}
	return reference, nil
}

// Refund refunds the transaction in full, or partially when amount is given.
func (s serviceImpl) Refund(ctx context.Context, reference string, amount *decimal.Decimal) (string, error) {
	if reference == "" {
		return "", invalid("transaction reference is required")
	}
	var gwAmount *braintree.Decimal
	if amount != nil {
		if !amount.IsPositive() {
			return "", invalid("refund amount must be positive, got %s", amount)
		}
		var err error
		if gwAmount, err = toGatewayAmount(*amount); err != nil {
			return "", err
		}
	}
	tx, err := s.gw.RefundTransaction(ctx, reference, gwAmount)
	if err != nil {
		return "", s.failTransaction("transaction.refund", err, zap.String("transaction_id", reference))
	}
	if err := s.checkTransaction("transaction.refund", tx); err != nil {
		return "", err
	}
	return reference, nil
}

// failTransaction is fail for transaction calls. Declines the SDK reports as
// an API error still carry the transaction, whose status is kept.
func (s serviceImpl) failTransaction(op string, err error, fields ...zap.Field) error {
	var apiErr *braintree.BraintreeError
	if !errors.As(err, &apiErr) || apiErr.Transaction == nil {
		return s.fail(op, err, fields...)
	}
	tx := apiErr.Transaction
	status := string(tx.Status)
	msg := tx.ProcessorResponseText
	if msg == "" {
		msg = err.Error()
	}
	s.log.Warn("transaction unsuccessful", append(fields,
		zap.String("op", op), zap.String("transaction_id", tx.Id), zap.String("status", status))...)
	return &GatewayError{Op: op, Message: msg, Status: status, Err: err}
}

// checkTransaction turns a declined or rejected transaction into a GatewayError.
func (s serviceImpl) checkTransaction(op string, tx braintree.Transaction) error {
	status := string(tx.Status)
	if !unsuccessfulStatuses[status] {
		return nil
	}
	msg := tx.ProcessorResponseText
	if msg == "" {
		msg = "transaction " + status
	}
	s.log.Warn("transaction unsuccessful", zap.String("op", op), zap.String("transaction_id", tx.Id), zap.String("status", status))
	return &GatewayError{Op: op, Message: msg, Status: status}
}
