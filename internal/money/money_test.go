package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	f, err := NewFormatter("USD", "en-US")
	require.NoError(t, err)

	tests := []struct {
		amount string
		want   string
	}{
		{amount: "62.5", want: "$62.50"},
		{amount: "250", want: "$250.00"},
		{amount: "0", want: "$0.00"},
		{amount: "33.34", want: "$33.34"},
		{amount: "-5", want: "-$5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatter_FormatNumber(t *testing.T) {
	f, err := NewFormatter("usd", "en-US")
	require.NoError(t, err)

	assert.Equal(t, "62.50", f.FormatNumber(decimal.RequireFromString("62.5")))
	assert.Equal(t, USD, f.Currency())
}

func TestNewFormatter_Errors(t *testing.T) {
	_, err := NewFormatter("XYZ", "en-US")
	assert.Error(t, err)

	_, err = NewFormatter("USD", "not a locale!")
	assert.Error(t, err)
}

func TestGetCurrencyInfo(t *testing.T) {
	info, ok := GetCurrencyInfo(GBP)
	require.True(t, ok)
	assert.Equal(t, "£", info.Symbol)
	assert.Equal(t, 2, info.MinorUnits)

	_, ok = GetCurrencyInfo("JPY")
	assert.False(t, ok)
}

func TestFormatter_FormatNumberIsExact(t *testing.T) {
	f, err := NewFormatter("USD", "en-US")
	require.NoError(t, err)

	// not representable as a float64
	amount := decimal.RequireFromString("9007199254740993.01")
	assert.Equal(t, "9,007,199,254,740,993.01", f.FormatNumber(amount))
	assert.Equal(t, "0.13", f.FormatNumber(decimal.RequireFromString("0.125")))
	assert.Equal(t, "0.00", f.FormatNumber(decimal.RequireFromString("-0.001")))
}

func TestFormatter_LocaleSeparator(t *testing.T) {
	f, err := NewFormatter("EUR", "de-DE")
	require.NoError(t, err)

	assert.Equal(t, "62,50", f.FormatNumber(decimal.RequireFromString("62.5")))
	assert.Equal(t, "€62,50", f.Format(decimal.RequireFromString("62.5")))
}
