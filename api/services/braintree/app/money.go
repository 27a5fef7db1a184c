package app

import (
	braintree "github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"
)

// toGatewayAmount rounds to cents, the precision Braintree accepts. Amounts
// whose cent value does not fit in int64 are rejected.
func toGatewayAmount(d decimal.Decimal) (*braintree.Decimal, error) {
	cents := d.Round(2).Shift(2)
	if !cents.BigInt().IsInt64() {
		return nil, invalid("amount %s is out of range", d)
	}
	return braintree.NewDecimal(cents.IntPart(), 2), nil
}

func fromGatewayAmount(d *braintree.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return decimal.New(d.Unscaled, -int32(d.Scale))
}
