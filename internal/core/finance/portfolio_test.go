package finance_test

import (
	"testing"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestValueHolding_ByQuantity(t *testing.T) {
	// quantity=2, purchase=95,000, current=98,000 -> gain = 6,000
	holding := domain.Investment{
		InvestmentID:  "inv-1",
		Ticker:        "BTC",
		Mode:          domain.ByQuantity,
		Quantity:      decimalPtr(decimal.NewFromInt(2)),
		PurchasePrice: decimalPtr(decimal.NewFromInt(95000)),
		CurrentPrice:  decimalPtr(decimal.NewFromInt(98000)),
		Active:        true,
		PurchaseDate:  time.Now(),
	}

	v, err := finance.ValueHolding(holding, nil)
	require.NoError(t, err)
	assert.True(t, v.CostBasis.Equal(decimal.NewFromInt(190000)))
	assert.True(t, v.CurrentValue.Equal(decimal.NewFromInt(196000)))
	assert.True(t, v.GainLoss.Equal(decimal.NewFromInt(6000)))
	assert.Equal(t, finance.PriceManual, v.Price.Kind)
	assert.False(t, v.NoPriceAvailable)
}

func TestValueHolding_ByAmount(t *testing.T) {
	// invested=1000, purchase=3500, current=3650 -> ~4.2857% change
	holding := domain.Investment{
		InvestmentID:   "inv-2",
		Ticker:         "GLOB",
		Mode:           domain.ByAmount,
		InvestedAmount: decimalPtr(decimal.NewFromInt(1000)),
		PurchasePrice:  decimalPtr(decimal.NewFromInt(3500)),
		CurrentPrice:   decimalPtr(decimal.NewFromInt(3650)),
		Active:         true,
	}

	v, err := finance.ValueHolding(holding, nil)
	require.NoError(t, err)

	gain, _ := v.GainLoss.Round(2).Float64()
	value, _ := v.CurrentValue.Round(2).Float64()
	assert.InDelta(t, 42.86, gain, 0.01)
	assert.InDelta(t, 1042.86, value, 0.01)
	assert.True(t, v.CostBasis.Equal(decimal.NewFromInt(1000)))
}

func TestValueHolding_PricePrecedence(t *testing.T) {
	live := decimal.NewFromInt(200)

	manual := domain.Investment{
		Mode:          domain.ByQuantity,
		Quantity:      decimalPtr(decimal.NewFromInt(1)),
		PurchasePrice: decimalPtr(decimal.NewFromInt(100)),
		CurrentPrice:  decimalPtr(decimal.NewFromInt(150)),
	}
	v, err := finance.ValueHolding(manual, &live)
	require.NoError(t, err)
	assert.Equal(t, finance.PriceManual, v.Price.Kind, "user-entered price overrides the quote")
	assert.True(t, v.CurrentValue.Equal(decimal.NewFromInt(150)))

	quoted := domain.Investment{
		Mode:          domain.ByQuantity,
		Quantity:      decimalPtr(decimal.NewFromInt(1)),
		PurchasePrice: decimalPtr(decimal.NewFromInt(100)),
	}
	v, err = finance.ValueHolding(quoted, &live)
	require.NoError(t, err)
	assert.Equal(t, finance.PriceQuoted, v.Price.Kind)
	assert.True(t, v.CurrentValue.Equal(decimal.NewFromInt(200)))
}

func TestValueHolding_NoPriceAvailable(t *testing.T) {
	holding := domain.Investment{
		Mode:          domain.ByQuantity,
		Quantity:      decimalPtr(decimal.NewFromInt(3)),
		PurchasePrice: decimalPtr(decimal.NewFromInt(10)),
	}

	v, err := finance.ValueHolding(holding, nil)
	require.NoError(t, err, "missing price is a valuation state, not an error")
	assert.True(t, v.NoPriceAvailable)
	assert.True(t, v.CurrentValue.IsZero())
	assert.True(t, v.GainLoss.IsZero())
	assert.Equal(t, finance.PriceUnknown, v.Price.Kind)
	assert.True(t, v.CostBasis.Equal(decimal.NewFromInt(30)), "cost basis is still known without a price")
}

func TestValueHolding_ZeroPurchasePriceGuarded(t *testing.T) {
	holding := domain.Investment{
		Mode:           domain.ByAmount,
		InvestedAmount: decimalPtr(decimal.NewFromInt(1000)),
		PurchasePrice:  decimalPtr(decimal.Zero),
		CurrentPrice:   decimalPtr(decimal.NewFromInt(50)),
	}

	v, err := finance.ValueHolding(holding, nil)
	require.NoError(t, err)
	assert.True(t, v.GainLoss.IsZero(), "zero purchase price must not divide by zero")
}

func TestValueHolding_InvalidHolding(t *testing.T) {
	tests := []struct {
		name    string
		holding domain.Investment
	}{
		{
			name:    "by-quantity without quantity",
			holding: domain.Investment{Mode: domain.ByQuantity},
		},
		{
			name:    "by-amount without invested amount",
			holding: domain.Investment{Mode: domain.ByAmount},
		},
		{
			name:    "unknown mode",
			holding: domain.Investment{Mode: "percentage"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := finance.ValueHolding(tt.holding, nil)
			assert.ErrorIs(t, err, finance.ErrInvalidHolding)
		})
	}
}

func TestValuePortfolio_TotalsAndSoftDelete(t *testing.T) {
	holdings := []domain.Investment{
		{
			InvestmentID:  "a",
			Ticker:        "BTC",
			Mode:          domain.ByQuantity,
			Quantity:      decimalPtr(decimal.NewFromInt(2)),
			PurchasePrice: decimalPtr(decimal.NewFromInt(95000)),
			CurrentPrice:  decimalPtr(decimal.NewFromInt(98000)),
			Active:        true,
		},
		{
			InvestmentID:   "b",
			Ticker:         "GLOB",
			Mode:           domain.ByAmount,
			InvestedAmount: decimalPtr(decimal.NewFromInt(1000)),
			PurchasePrice:  decimalPtr(decimal.NewFromInt(3500)),
			Active:         true,
		},
		{
			InvestmentID:  "c",
			Ticker:        "ETH",
			Mode:          domain.ByQuantity,
			Quantity:      decimalPtr(decimal.NewFromInt(10)),
			PurchasePrice: decimalPtr(decimal.NewFromInt(2000)),
			CurrentPrice:  decimalPtr(decimal.NewFromInt(3000)),
			Active:        false, // soft deleted, must not count
		},
	}
	livePrices := map[string]decimal.Decimal{"GLOB": decimal.NewFromInt(3650)}

	summary, err := finance.ValuePortfolio(holdings, livePrices)
	require.NoError(t, err)
	require.Len(t, summary.Holdings, 2)

	value, _ := summary.TotalValue.Round(2).Float64()
	gain, _ := summary.TotalGainLoss.Round(2).Float64()
	assert.InDelta(t, 196000+1042.86, value, 0.01)
	assert.InDelta(t, 6000+42.86, gain, 0.01)
	assert.True(t, summary.TotalCostBasis.Equal(decimal.NewFromInt(191000)))
	assert.False(t, summary.TotalReturnPercent.IsZero())
}

func TestValuePortfolio_ZeroCostBasisGuarded(t *testing.T) {
	summary, err := finance.ValuePortfolio(nil, nil)
	require.NoError(t, err)
	assert.True(t, summary.TotalReturnPercent.IsZero(), "return percent must be finite on zero cost basis")
}

func TestValuePortfolio_PartialQuoteFailureTolerated(t *testing.T) {
	holdings := []domain.Investment{
		{
			InvestmentID:  "priced",
			Ticker:        "BTC",
			Mode:          domain.ByQuantity,
			Quantity:      decimalPtr(decimal.NewFromInt(1)),
			PurchasePrice: decimalPtr(decimal.NewFromInt(90000)),
			Active:        true,
		},
		{
			InvestmentID:  "unpriced",
			Ticker:        "XYZ",
			Mode:          domain.ByQuantity,
			Quantity:      decimalPtr(decimal.NewFromInt(5)),
			PurchasePrice: decimalPtr(decimal.NewFromInt(10)),
			Active:        true,
		},
	}
	livePrices := map[string]decimal.Decimal{"BTC": decimal.NewFromInt(98000)}

	summary, err := finance.ValuePortfolio(holdings, livePrices)
	require.NoError(t, err)
	require.Len(t, summary.Holdings, 2)
	assert.False(t, summary.Holdings[0].NoPriceAvailable)
	assert.True(t, summary.Holdings[1].NoPriceAvailable, "unpriced ticker values to zero without failing the batch")
}
