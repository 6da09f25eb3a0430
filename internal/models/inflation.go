package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// InflationEntry is the DB representation of a recorded inflation figure for
// one (year, month, category) triple.
type InflationEntry struct {
	EntryID     string          `db:"entry_id"`
	UserID      string          `db:"user_id"`
	Year        int             `db:"year"`
	Month       int             `db:"month"`
	Category    sql.NullString  `db:"category"`
	Percent     decimal.Decimal `db:"percent"`
	Description sql.NullString  `db:"description"`
	AuditFields
}

// ConsolidatedBalance is one row of the consolidated balances view. The view
// is read-only; unit prices are revalued by the reporting service.
type ConsolidatedBalance struct {
	UserID       string          `db:"user_id"`
	CurrencyCode string          `db:"currency_code"`
	AssetType    string          `db:"asset_type"`
	Ticker       sql.NullString  `db:"ticker"`
	Quantity     decimal.Decimal `db:"quantity"`
	UnitPriceARS decimal.Decimal `db:"unit_price_ars"`
	ValueARS     decimal.Decimal `db:"value_ars"`
}
