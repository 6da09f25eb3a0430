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

func arsTable(t *testing.T) *finance.RateTable {
	t.Helper()
	table := finance.NewRateTable("ARS")
	table.SetRate("USD", decimal.NewFromInt(1000), finance.RateSourceLive)
	return table
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAggregateMonthly_SalaryExtraAndExpense(t *testing.T) {
	// Salary 100,000 ARS fixed; 50 USD extra on 2024-11-15 at rate 1000;
	// 20,000 ARS expense on 2024-11-20.
	anchor := date(2024, time.November, 28)
	buckets := finance.BuildBuckets(1, anchor)
	salary := &domain.SalaryRecord{
		Amount:       decimal.NewFromInt(100000),
		CurrencyCode: "ARS",
		Active:       true,
	}
	extras := []domain.IncomeRecord{{
		Description:  "Freelance",
		Amount:       decimal.NewFromInt(50),
		CurrencyCode: "USD",
		Date:         date(2024, time.November, 15),
	}}
	expenses := []domain.ExpenseRecord{{
		Description:  "Supermercado",
		Amount:       decimal.NewFromInt(20000),
		CurrencyCode: "ARS",
		Category:     "Alimentación",
		Date:         date(2024, time.November, 20),
	}}

	summaries, err := finance.AggregateMonthly(buckets, salary, extras, expenses, arsTable(t))
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	november := summaries[0]
	assert.True(t, november.TotalIncome.Equal(decimal.NewFromInt(150000)), "income = %s", november.TotalIncome)
	assert.True(t, november.TotalExpense.Equal(decimal.NewFromInt(20000)))
	assert.True(t, november.Savings.Equal(decimal.NewFromInt(130000)))
	rate, _ := november.SavingsRate.Round(1).Float64()
	assert.InDelta(t, 86.7, rate, 0.01)
}

func TestAggregateMonthly_SalaryAppliesToEveryBucket(t *testing.T) {
	anchor := date(2024, time.November, 1)
	buckets := finance.BuildBuckets(3, anchor)
	salary := &domain.SalaryRecord{
		Amount:       decimal.NewFromInt(120000),
		CurrencyCode: "ARS",
		Active:       true,
	}

	summaries, err := finance.AggregateMonthly(buckets, salary, nil, nil, arsTable(t))
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	for _, s := range summaries {
		assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(120000)))
		assert.True(t, s.TotalExpense.IsZero())
		assert.True(t, s.Savings.Equal(decimal.NewFromInt(120000)))
	}
}

func TestAggregateMonthly_InactiveSalaryIgnored(t *testing.T) {
	buckets := finance.BuildBuckets(1, date(2024, time.November, 1))
	salary := &domain.SalaryRecord{
		Amount:       decimal.NewFromInt(90000),
		CurrencyCode: "ARS",
		Active:       false,
	}

	summaries, err := finance.AggregateMonthly(buckets, salary, nil, nil, arsTable(t))
	require.NoError(t, err)
	assert.True(t, summaries[0].TotalIncome.IsZero())
}

func TestAggregateMonthly_SavingsRateGuardedOnZeroIncome(t *testing.T) {
	buckets := finance.BuildBuckets(1, date(2024, time.November, 1))
	expenses := []domain.ExpenseRecord{{
		Amount:       decimal.NewFromInt(5000),
		CurrencyCode: "ARS",
		Date:         date(2024, time.November, 3),
	}}

	summaries, err := finance.AggregateMonthly(buckets, nil, nil, expenses, arsTable(t))
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].SavingsRate.IsZero(), "savings rate must be 0, not NaN/Inf, on zero income")
	assert.True(t, summaries[0].Savings.Equal(decimal.NewFromInt(-5000)), "savings may go negative")
}

func TestAggregateMonthly_RecordsOutsideBucketsExcluded(t *testing.T) {
	buckets := finance.BuildBuckets(1, date(2024, time.November, 1))
	extras := []domain.IncomeRecord{{
		Amount:       decimal.NewFromInt(700),
		CurrencyCode: "ARS",
		Date:         date(2024, time.October, 31),
	}}
	expenses := []domain.ExpenseRecord{{
		Amount:       decimal.NewFromInt(900),
		CurrencyCode: "ARS",
		Date:         date(2024, time.December, 1),
	}}

	summaries, err := finance.AggregateMonthly(buckets, nil, extras, expenses, arsTable(t))
	require.NoError(t, err)
	assert.True(t, summaries[0].TotalIncome.IsZero())
	assert.True(t, summaries[0].TotalExpense.IsZero())
}

func TestAggregateMonthly_Deterministic(t *testing.T) {
	buckets := finance.BuildBuckets(6, date(2024, time.December, 10))
	salary := &domain.SalaryRecord{Amount: decimal.NewFromInt(100000), CurrencyCode: "ARS", Active: true}
	extras := []domain.IncomeRecord{
		{Amount: decimal.NewFromInt(50), CurrencyCode: "USD", Date: date(2024, time.November, 15)},
		{Amount: decimal.NewFromInt(12000), CurrencyCode: "ARS", Date: date(2024, time.September, 2)},
	}
	expenses := []domain.ExpenseRecord{
		{Amount: decimal.NewFromInt(20000), CurrencyCode: "ARS", Date: date(2024, time.November, 20)},
		{Amount: decimal.NewFromInt(15), CurrencyCode: "USD", Date: date(2024, time.October, 7)},
	}

	first, err := finance.AggregateMonthly(buckets, salary, extras, expenses, arsTable(t))
	require.NoError(t, err)
	second, err := finance.AggregateMonthly(buckets, salary, extras, expenses, arsTable(t))
	require.NoError(t, err)
	assert.Equal(t, first, second, "re-running with identical inputs must yield identical output")
}

func TestExpensesByCategory_SortedDescendingWithSentinel(t *testing.T) {
	expenses := []domain.ExpenseRecord{
		{Amount: decimal.NewFromInt(20000), CurrencyCode: "ARS", Category: "Alimentación", Date: date(2024, time.November, 2)},
		{Amount: decimal.NewFromInt(5000), CurrencyCode: "ARS", Category: "Transporte", Date: date(2024, time.November, 5)},
		{Amount: decimal.NewFromInt(10), CurrencyCode: "USD", Category: "Alimentación", Date: date(2024, time.November, 9)},
		{Amount: decimal.NewFromInt(8000), CurrencyCode: "ARS", Date: date(2024, time.November, 11)},
	}

	totals, err := finance.ExpensesByCategory(expenses, arsTable(t))
	require.NoError(t, err)
	require.Len(t, totals, 3)

	assert.Equal(t, "Alimentación", totals[0].Category)
	assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, domain.UncategorizedLabel, totals[1].Category)
	assert.True(t, totals[1].Total.Equal(decimal.NewFromInt(8000)))
	assert.Equal(t, "Transporte", totals[2].Category)
}
