package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the DB representation of an expense row. Discount and cashback
// percentages default to zero; their currencies are nullable.
type Expense struct {
	ExpenseID        string          `db:"expense_id"`
	UserID           string          `db:"user_id"`
	Description      string          `db:"description"`
	Amount           decimal.Decimal `db:"amount"`
	CurrencyCode     string          `db:"currency_code"`
	Category         sql.NullString  `db:"category"`
	Date             time.Time       `db:"date"`
	DiscountPercent  decimal.Decimal `db:"discount_percent"`
	DiscountCurrency sql.NullString  `db:"discount_currency"`
	CashbackPercent  decimal.Decimal `db:"cashback_percent"`
	CashbackCurrency sql.NullString  `db:"cashback_currency"`
	AuditFields
}
