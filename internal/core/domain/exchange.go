package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeSourceKind says where the exchanged funds came from.
type ExchangeSourceKind string

const (
	ExchangeSourceCash       ExchangeSourceKind = "cash"
	ExchangeSourceInvestment ExchangeSourceKind = "investment"
)

// CurrencyExchange records converting an amount of one currency into another
// at a user-entered rate. The destination amount is derived from the rate:
// selling the reporting currency divides by the rate, buying it multiplies.
type CurrencyExchange struct {
	ExchangeID     string             `json:"exchangeID"`
	UserID         string             `json:"userID"`
	SourceCurrency string             `json:"sourceCurrency"`
	SourceAmount   decimal.Decimal    `json:"sourceAmount"`
	DestCurrency   string             `json:"destCurrency"`
	DestAmount     decimal.Decimal    `json:"destAmount"`
	Rate           decimal.Decimal    `json:"rate"`
	Date           time.Time          `json:"date"`
	SourceKind     ExchangeSourceKind `json:"sourceKind,omitempty"`
	SourceTicker   string             `json:"sourceTicker,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	AuditFields
}

// DeriveDestAmount applies the exchange direction rule and rounds to 2 decimals.
func DeriveDestAmount(sourceCurrency string, sourceAmount, rate decimal.Decimal, destCurrency string) decimal.Decimal {
	var dest decimal.Decimal
	switch {
	case sourceCurrency == ReportingCurrency:
		dest = sourceAmount.Div(rate)
	case destCurrency == ReportingCurrency:
		dest = sourceAmount.Mul(rate)
	default:
		dest = sourceAmount.Div(rate)
	}
	return dest.Round(2)
}
