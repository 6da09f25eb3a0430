package services

import (
	"context"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
	"github.com/shopspring/decimal"
)

// InvestmentSvcFacade manages portfolio holdings.
type InvestmentSvcFacade interface {
	// ListInvestments returns the user's active holdings, newest purchase first.
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)

	// CreateInvestment records a new holding after validating that the
	// populated fields match its mode.
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*domain.Investment, error)

	// UpdateInvestment changes the holding's current price and/or notes.
	UpdateInvestment(ctx context.Context, userID, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error)

	// DeleteInvestment soft-deletes a holding; it disappears from every
	// aggregation but the row is kept.
	DeleteInvestment(ctx context.Context, userID, investmentID string) error

	// SyncPrices fetches live quotes for the distinct tickers of the user's
	// active holdings and persists changed current prices. Tickers that fail
	// to price are skipped, not fatal.
	SyncPrices(ctx context.Context, userID string) (*dto.SyncPricesResponse, error)
}

// QuoteProvider fetches spot prices from the market-data source. Implemented
// outside the core by the marketdata client; mocked in tests.
type QuoteProvider interface {
	// GetSpotPrice returns the current price of ticker in USD.
	GetSpotPrice(ctx context.Context, ticker string) (*domain.Quote, error)

	// GetSpotPrices prices a batch of tickers, tolerating partial failure:
	// the result simply lacks entries for tickers that could not be priced.
	GetSpotPrices(ctx context.Context, tickers []string) map[string]domain.Quote

	// GetUSDARSRate returns the USD to ARS conversion rate and whether it
	// came from a live quote; on quote failure the hardcoded fallback is
	// returned with live=false.
	GetUSDARSRate(ctx context.Context) (rate decimal.Decimal, live bool)
}
