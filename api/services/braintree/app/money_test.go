package app

import (
	"testing"

	braintree "github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGatewayAmount_RoundsToCents(t *testing.T) {
	d, err := toGatewayAmount(decimal.RequireFromString("10.005"))
	require.NoError(t, err)
	assert.Equal(t, int64(1001), d.Unscaled)
	assert.Equal(t, 2, d.Scale)

	d, err = toGatewayAmount(decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.Equal(t, int64(2500), d.Unscaled)
}

func TestToGatewayAmount_RejectsOverflow(t *testing.T) {
	for _, v := range []string{"184467440737095516.17", "92233720368547758.08", "-92233720368547758.09"} {
		d, err := toGatewayAmount(decimal.RequireFromString(v))
		assert.ErrorIs(t, err, ErrInvalidInput, v)
		assert.Nil(t, d)
	}

	d, err := toGatewayAmount(decimal.RequireFromString("92233720368547758.07"))
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), d.Unscaled)
}

func TestFromGatewayAmount(t *testing.T) {
	assert.True(t, decimal.RequireFromString("12.34").Equal(fromGatewayAmount(braintree.NewDecimal(1234, 2))))
	assert.True(t, decimal.Zero.Equal(fromGatewayAmount(nil)))
}
