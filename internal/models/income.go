package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Salary is the DB representation of a fixed salary row. Historical rows keep
// is_active=false; at most one row per user is active.
type Salary struct {
	SalaryID     string          `db:"salary_id"`
	UserID       string          `db:"user_id"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}

// Income is the DB representation of a one-off extra income row.
type Income struct {
	IncomeID     string          `db:"income_id"`
	UserID       string          `db:"user_id"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	Category     sql.NullString  `db:"category"`
	Date         time.Time       `db:"date"`
	AuditFields
}
