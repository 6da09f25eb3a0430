package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRecord is a recurring monthly income. At most one record is active per
// user at any time; setting a new salary deactivates the previous one.
type SalaryRecord struct {
	SalaryID     string          `json:"salaryID"`
	UserID       string          `json:"userID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Active       bool            `json:"active"`
	AuditFields
}

// IncomeRecord is a one-off extra income (freelance, gifts, cashback credits).
type IncomeRecord struct {
	IncomeID     string          `json:"incomeID"`
	UserID       string          `json:"userID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Category     string          `json:"category,omitempty"`
	Date         time.Time       `json:"date"`
	AuditFields
}

// CashbackCategory is the category assigned to income records derived from
// expense cashback.
const CashbackCategory = "Cashback"
