package domain

import "github.com/shopspring/decimal"

// BalanceAssetType classifies a consolidated balance row.
type BalanceAssetType string

const (
	BalanceCash       BalanceAssetType = "cash"
	BalanceCurrency   BalanceAssetType = "currency"
	BalanceInvestment BalanceAssetType = "investment"
)

// ConsolidatedBalance is a read-only row of the user's net position in one
// asset, valued in the reporting currency.
type ConsolidatedBalance struct {
	UserID       string           `json:"userID"`
	CurrencyCode string           `json:"currencyCode"`
	AssetType    BalanceAssetType `json:"assetType"`
	Ticker       string           `json:"ticker"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitPriceARS decimal.Decimal  `json:"unitPriceARS"`
	ValueARS     decimal.Decimal  `json:"valueARS"`
}
