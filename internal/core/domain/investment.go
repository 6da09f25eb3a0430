package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentMode selects how a holding is tracked: by units held or by
// invested capital.
type InvestmentMode string

const (
	// ByQuantity tracks a number of units bought at a purchase price.
	ByQuantity InvestmentMode = "quantity"
	// ByAmount tracks a fixed invested amount whose value follows the
	// percentage change of the asset price.
	ByAmount InvestmentMode = "amount"
)

// Investment is a holding in the user's portfolio. Exactly one of Quantity or
// InvestedAmount is populated, matching Mode. Soft-deleted holdings
// (Active=false) are excluded from every aggregation.
type Investment struct {
	InvestmentID   string           `json:"investmentID"`
	UserID         string           `json:"userID"`
	Ticker         string           `json:"ticker"`
	AssetName      string           `json:"assetName,omitempty"`
	Mode           InvestmentMode   `json:"mode"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
	InvestedAmount *decimal.Decimal `json:"investedAmount,omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice,omitempty"`
	CurrentPrice   *decimal.Decimal `json:"currentPrice,omitempty"`
	CurrencyCode   string           `json:"currencyCode"`
	PurchaseDate   time.Time        `json:"purchaseDate"`
	Active         bool             `json:"active"`
	Notes          string           `json:"notes,omitempty"`
	AuditFields
}
