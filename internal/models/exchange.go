package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyExchange is the DB representation of a currency conversion row.
type CurrencyExchange struct {
	ExchangeID     string          `db:"exchange_id"`
	UserID         string          `db:"user_id"`
	SourceCurrency string          `db:"source_currency"`
	SourceAmount   decimal.Decimal `db:"source_amount"`
	DestCurrency   string          `db:"dest_currency"`
	DestAmount     decimal.Decimal `db:"dest_amount"`
	Rate           decimal.Decimal `db:"rate"`
	Date           time.Time       `db:"date"`
	SourceKind     sql.NullString  `db:"source_kind"`
	SourceTicker   sql.NullString  `db:"source_ticker"`
	Notes          sql.NullString  `db:"notes"`
	AuditFields
}
