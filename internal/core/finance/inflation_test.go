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

func expense(amount int64, currency, category string, year int, month time.Month) domain.ExpenseRecord {
	return domain.ExpenseRecord{
		Amount:       decimal.NewFromInt(amount),
		CurrencyCode: currency,
		Category:     category,
		Date:         time.Date(year, month, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestPersonalInflation_RequiresTwoMonths(t *testing.T) {
	table := arsTable(t)

	points, err := finance.PersonalInflation(nil, table)
	require.NoError(t, err)
	assert.Empty(t, points)

	oneMonth := []domain.ExpenseRecord{
		expense(1000, "ARS", "Alimentación", 2024, time.November),
		expense(2000, "ARS", "Transporte", 2024, time.November),
	}
	points, err = finance.PersonalInflation(oneMonth, table)
	require.NoError(t, err)
	assert.Empty(t, points, "a single expense month has nothing to compare against")
}

func TestPersonalInflation_MonthOverMonthChange(t *testing.T) {
	expenses := []domain.ExpenseRecord{
		expense(10000, "ARS", "Alimentación", 2024, time.October),
		expense(12000, "ARS", "Alimentación", 2024, time.November),
	}

	points, err := finance.PersonalInflation(expenses, arsTable(t))
	require.NoError(t, err)
	require.Len(t, points, 1)

	november := points[0]
	assert.Equal(t, 2024, november.Year)
	assert.Equal(t, time.November, november.Month)
	assert.False(t, november.NoBaseline)
	percent, _ := november.Percent.Round(1).Float64()
	assert.InDelta(t, 20.0, percent, 0.001)
}

func TestPersonalInflation_ZeroBaselineFlaggedNotInfinite(t *testing.T) {
	// October exists with spend, November is empty, December spends again:
	// December's prior month total is 0 and must report 0 with the flag.
	expenses := []domain.ExpenseRecord{
		expense(3000, "ARS", "Alimentación", 2024, time.October),
		expense(5000, "ARS", "Alimentación", 2024, time.December),
	}

	points, err := finance.PersonalInflation(expenses, arsTable(t))
	require.NoError(t, err)
	require.Len(t, points, 2)

	// Most recent first.
	december := points[0]
	assert.Equal(t, time.December, december.Month)
	assert.True(t, december.NoBaseline)
	assert.True(t, december.Percent.IsZero())
	assert.True(t, december.CurrentTotal.Equal(decimal.NewFromInt(5000)))

	november := points[1]
	assert.Equal(t, time.November, november.Month)
	assert.False(t, november.NoBaseline)
	percent, _ := november.Percent.Float64()
	assert.InDelta(t, -100.0, percent, 0.001)
}

func TestPersonalInflation_NewCategorySentinel(t *testing.T) {
	expenses := []domain.ExpenseRecord{
		expense(10000, "ARS", "Alimentación", 2024, time.October),
		expense(10000, "ARS", "Alimentación", 2024, time.November),
		expense(4000, "ARS", "Mascotas", 2024, time.November),
	}

	points, err := finance.PersonalInflation(expenses, arsTable(t))
	require.NoError(t, err)
	require.Len(t, points, 1)

	var pets *finance.CategoryChange
	for i := range points[0].ByCategory {
		if points[0].ByCategory[i].Category == "Mascotas" {
			pets = &points[0].ByCategory[i]
		}
	}
	require.NotNil(t, pets)
	assert.True(t, pets.NewCategory, "a category absent last month is flagged, not given an unbounded percentage")
	assert.True(t, pets.Percent.Equal(decimal.NewFromInt(100)))
}

func TestPersonalInflation_UncategorizedGrouped(t *testing.T) {
	expenses := []domain.ExpenseRecord{
		expense(1000, "ARS", "", 2024, time.October),
		expense(1500, "ARS", "", 2024, time.November),
	}

	points, err := finance.PersonalInflation(expenses, arsTable(t))
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Len(t, points[0].ByCategory, 1)
	assert.Equal(t, domain.UncategorizedLabel, points[0].ByCategory[0].Category)
}

func TestPersonalInflation_NormalizesCurrencies(t *testing.T) {
	expenses := []domain.ExpenseRecord{
		expense(10000, "ARS", "Alimentación", 2024, time.October),
		expense(11, "USD", "Alimentación", 2024, time.November), // 11,000 ARS at rate 1000
	}

	points, err := finance.PersonalInflation(expenses, arsTable(t))
	require.NoError(t, err)
	require.Len(t, points, 1)
	percent, _ := points[0].Percent.Round(1).Float64()
	assert.InDelta(t, 10.0, percent, 0.001)
}

func TestPersonalInflation_OrderedMostRecentFirst(t *testing.T) {
	expenses := []domain.ExpenseRecord{
		expense(1000, "ARS", "A", 2024, time.September),
		expense(1100, "ARS", "A", 2024, time.October),
		expense(1200, "ARS", "A", 2024, time.November),
	}

	points, err := finance.PersonalInflation(expenses, arsTable(t))
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, time.November, points[0].Month)
	assert.Equal(t, time.October, points[1].Month)
}
