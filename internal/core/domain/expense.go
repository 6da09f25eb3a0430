package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is a single spend. Discount and cashback are optional
// percentages; when a cashback percentage is present, creating the expense
// also creates a derived IncomeRecord in the cashback currency.
type ExpenseRecord struct {
	ExpenseID        string          `json:"expenseID"`
	UserID           string          `json:"userID"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	Category         string          `json:"category,omitempty"`
	Date             time.Time       `json:"date"`
	DiscountPercent  decimal.Decimal `json:"discountPercent"`
	DiscountCurrency string          `json:"discountCurrency,omitempty"`
	CashbackPercent  decimal.Decimal `json:"cashbackPercent"`
	CashbackCurrency string          `json:"cashbackCurrency,omitempty"`
	AuditFields
}

// UncategorizedLabel groups expense records that carry no category.
const UncategorizedLabel = "Sin categoría"

// HasCashback reports whether the expense earns cashback.
func (e ExpenseRecord) HasCashback() bool {
	return e.CashbackPercent.IsPositive()
}

// CashbackAmount computes the derived income amount for the expense.
func (e ExpenseRecord) CashbackAmount() decimal.Decimal {
	return e.Amount.Mul(e.CashbackPercent).Div(decimal.NewFromInt(100))
}
