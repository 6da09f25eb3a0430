package finance_test

import (
	"testing"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable_Convert_IdentityOnReportingCurrency(t *testing.T) {
	table := finance.NewRateTable("ARS")

	amounts := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(100000),
		decimal.NewFromFloat(1234.56),
	}
	for _, amount := range amounts {
		got, rate, err := table.Convert(amount, "ARS")
		require.NoError(t, err)
		assert.True(t, got.Equal(amount), "identity conversion changed %s to %s", amount, got)
		assert.Equal(t, finance.RateSourceLive, rate.Source)
	}
}

func TestRateTable_Convert_DirectRate(t *testing.T) {
	table := finance.NewRateTable("ARS")
	table.SetRate("USD", decimal.NewFromInt(1000), finance.RateSourceLive)

	got, rate, err := table.Convert(decimal.NewFromInt(50), "USD")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, finance.RateSourceLive, rate.Source)
}

func TestRateTable_Convert_MissingRate(t *testing.T) {
	table := finance.NewRateTable("ARS")

	_, _, err := table.Convert(decimal.NewFromInt(10), "EUR")
	require.Error(t, err)
	assert.ErrorIs(t, err, finance.ErrMissingRate)
}

func TestRateTable_Convert_FallbackIsTagged(t *testing.T) {
	table := finance.NewRateTable("ARS")
	table.SetFallback("USD", decimal.NewFromInt(1185))

	got, rate, err := table.Convert(decimal.NewFromInt(2), "USD")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2370)))
	assert.Equal(t, finance.RateSourceFallback, rate.Source, "fallback rate must be distinguishable from a live one")
}

func TestRateTable_LiveRateWinsOverFallback(t *testing.T) {
	table := finance.NewRateTable("ARS")
	table.SetFallback("USD", decimal.NewFromInt(1185))
	table.SetRate("USD", decimal.NewFromInt(1300), finance.RateSourceLive)

	got, rate, err := table.Convert(decimal.NewFromInt(1), "USD")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1300)))
	assert.Equal(t, finance.RateSourceLive, rate.Source)
}
