package finance

import (
	"sort"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// MonthlySummary is the normalized income/expense picture of one bucket.
type MonthlySummary struct {
	Bucket       MonthBucket     `json:"bucket"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Savings      decimal.Decimal `json:"savings"`
	SavingsRate  decimal.Decimal `json:"savingsRate"` // percent; 0 when income is 0
}

// CategoryTotal is one row of the expense category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// AggregateMonthly sums normalized income and expense records into the given
// buckets. The active salary (if any) counts toward every bucket since it has
// no per-month record; extras and expenses match on their calendar year/month.
// Savings may go negative; the savings rate is guarded to 0 on zero income.
func AggregateMonthly(
	buckets []MonthBucket,
	salary *domain.SalaryRecord,
	extras []domain.IncomeRecord,
	expenses []domain.ExpenseRecord,
	table *RateTable,
) ([]MonthlySummary, error) {
	salaryAmount := decimal.Zero
	if salary != nil && salary.Active {
		normalized, _, err := table.Convert(salary.Amount, salary.CurrencyCode)
		if err != nil {
			return nil, err
		}
		salaryAmount = normalized
	}

	summaries := make([]MonthlySummary, 0, len(buckets))
	for _, bucket := range buckets {
		income := salaryAmount
		for _, extra := range extras {
			if !bucket.Contains(extra.Date) {
				continue
			}
			normalized, _, err := table.Convert(extra.Amount, extra.CurrencyCode)
			if err != nil {
				return nil, err
			}
			income = income.Add(normalized)
		}

		expense := decimal.Zero
		for _, e := range expenses {
			if !bucket.Contains(e.Date) {
				continue
			}
			normalized, _, err := table.Convert(e.Amount, e.CurrencyCode)
			if err != nil {
				return nil, err
			}
			expense = expense.Add(normalized)
		}

		savings := income.Sub(expense)
		rate := decimal.Zero
		if income.IsPositive() {
			rate = savings.Div(income).Mul(oneHundred)
		}
		summaries = append(summaries, MonthlySummary{
			Bucket:       bucket,
			TotalIncome:  income,
			TotalExpense: expense,
			Savings:      savings,
			SavingsRate:  rate,
		})
	}
	return summaries, nil
}

// ExpensesByCategory groups normalized expense totals per category, largest
// first. Records without a category fall under domain.UncategorizedLabel.
func ExpensesByCategory(expenses []domain.ExpenseRecord, table *RateTable) ([]CategoryTotal, error) {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = domain.UncategorizedLabel
		}
		normalized, _, err := table.Convert(e.Amount, e.CurrencyCode)
		if err != nil {
			return nil, err
		}
		totals[category] = totals[category].Add(normalized)
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Category < result[j].Category
	})
	return result, nil
}
