package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Investment is the DB representation of a portfolio holding. Exactly one of
// quantity or invested_amount is set, matching mode.
type Investment struct {
	InvestmentID   string              `db:"investment_id"`
	UserID         string              `db:"user_id"`
	Ticker         string              `db:"ticker"`
	AssetName      sql.NullString      `db:"asset_name"`
	Mode           string              `db:"mode"`
	Quantity       decimal.NullDecimal `db:"quantity"`
	InvestedAmount decimal.NullDecimal `db:"invested_amount"`
	PurchasePrice  decimal.NullDecimal `db:"purchase_price"`
	CurrentPrice   decimal.NullDecimal `db:"current_price"`
	CurrencyCode   string              `db:"currency_code"`
	PurchaseDate   time.Time           `db:"purchase_date"`
	IsActive       bool                `db:"is_active"`
	Notes          sql.NullString      `db:"notes"`
	AuditFields
}
