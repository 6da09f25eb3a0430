package dto

import (
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the payload to record a holding. Quantity
// is required in quantity mode, investedAmount in amount mode; the service
// rejects mismatches.
type CreateInvestmentRequest struct {
	Ticker         string           `json:"ticker" binding:"required,max=20"`
	AssetName      string           `json:"assetName" binding:"omitempty,max=255"`
	Mode           string           `json:"mode" binding:"required,oneof=quantity amount"`
	Quantity       *decimal.Decimal `json:"quantity" binding:"omitempty"`
	InvestedAmount *decimal.Decimal `json:"investedAmount" binding:"omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice" binding:"omitempty"`
	CurrentPrice   *decimal.Decimal `json:"currentPrice" binding:"omitempty"`
	CurrencyCode   string           `json:"currencyCode" binding:"required,len=3,uppercase"`
	PurchaseDate   string           `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
	Notes          string           `json:"notes" binding:"omitempty,max=500"`
}

// UpdateInvestmentRequest limits edits to the current price and notes.
type UpdateInvestmentRequest struct {
	CurrentPrice *decimal.Decimal `json:"currentPrice" binding:"omitempty"`
	Notes        *string          `json:"notes" binding:"omitempty,max=500"`
}

// InvestmentResponse is the API representation of a holding.
type InvestmentResponse struct {
	InvestmentID   string           `json:"investmentID"`
	Ticker         string           `json:"ticker"`
	AssetName      string           `json:"assetName,omitempty"`
	Mode           string           `json:"mode"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
	InvestedAmount *decimal.Decimal `json:"investedAmount,omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice,omitempty"`
	CurrentPrice   *decimal.Decimal `json:"currentPrice,omitempty"`
	CurrencyCode   string           `json:"currencyCode"`
	PurchaseDate   string           `json:"purchaseDate"`
	Active         bool             `json:"active"`
	Notes          string           `json:"notes,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// SyncedPrice reports one ticker refreshed by a price sync.
type SyncedPrice struct {
	InvestmentID string          `json:"investmentID"`
	Ticker       string          `json:"ticker"`
	Price        decimal.Decimal `json:"price"`
	Source       string          `json:"source"`
}

// SyncPricesResponse summarizes a price sync run: which holdings were
// refreshed and which tickers could not be priced.
type SyncPricesResponse struct {
	Updated  []SyncedPrice `json:"updated"`
	Unpriced []string      `json:"unpriced,omitempty"`
}

// ToInvestmentResponse converts a domain.Investment to its response DTO.
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:   inv.InvestmentID,
		Ticker:         inv.Ticker,
		AssetName:      inv.AssetName,
		Mode:           string(inv.Mode),
		Quantity:       inv.Quantity,
		InvestedAmount: inv.InvestedAmount,
		PurchasePrice:  inv.PurchasePrice,
		CurrentPrice:   inv.CurrentPrice,
		CurrencyCode:   inv.CurrencyCode,
		PurchaseDate:   inv.PurchaseDate.Format(DateLayout),
		Active:         inv.Active,
		Notes:          inv.Notes,
		CreatedAt:      inv.CreatedAt,
	}
}

// ToListInvestmentResponse converts a slice of holdings.
func ToListInvestmentResponse(records []domain.Investment) []InvestmentResponse {
	responses := make([]InvestmentResponse, len(records))
	for i := range records {
		responses[i] = ToInvestmentResponse(&records[i])
	}
	return responses
}
