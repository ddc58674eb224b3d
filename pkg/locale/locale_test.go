package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyIsValid(t *testing.T) {
	testCases := []struct {
		currency Currency
		valid    bool
		desc     string
	}{
		{USD, true, "US dollar"},
		{JPY, true, "zero-decimal currency"},
		{Currency{"usd", "$", 2}, false, "lowercase code"},
		{Currency{"US", "$", 2}, false, "short code"},
		{Currency{"USD", "", 2}, false, "missing symbol"},
		{Currency{"USD", "$", -1}, false, "negative decimals"},
		{Currency{"USD", "$", 19}, false, "excessive decimals"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.currency.IsValid())
		})
	}
}

func TestByTag(t *testing.T) {
	l, ok := ByTag("en-US")
	assert.True(t, ok)
	assert.Equal(t, EnUS, l)

	_, ok = ByTag("xx-XX")
	assert.False(t, ok)

	assert.Contains(t, Tags(), "en-US")
}

func TestEnUSConventions(t *testing.T) {
	assert.Equal(t, ",", EnUS.Group)
	assert.Equal(t, ".", EnUS.Decimal)
	assert.Equal(t, "$", EnUS.Currency.Symbol)
	assert.Equal(t, "USD", EnUS.Currency.Code)
}
