package domain

import "github.com/shopspring/decimal"

// QuoteSource identifies which market-data provider supplied a spot price.
type QuoteSource string

const (
	QuoteSourceCoinGecko QuoteSource = "coingecko"
	QuoteSourceCriptoYa  QuoteSource = "criptoya"
	QuoteSourceStatic    QuoteSource = "static"
)

// Quote is a spot price for one ticker, in USD.
type Quote struct {
	Ticker        string          `json:"ticker"`
	Price         decimal.Decimal `json:"price"`
	ChangePercent decimal.Decimal `json:"changePercent"` // 24h change
	Source        QuoteSource     `json:"source"`
}
