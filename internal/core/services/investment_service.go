package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	portsrepo "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/repositories"
	portssvc "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentService provides business logic for portfolio holdings.
type InvestmentService struct {
	investmentRepo portsrepo.InvestmentRepositoryFacade
	quotes         portssvc.QuoteProvider
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(investmentRepo portsrepo.InvestmentRepositoryFacade, quotes portssvc.QuoteProvider) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		quotes:         quotes,
	}
}

var _ portssvc.InvestmentSvcFacade = (*InvestmentService)(nil)

// ListInvestments returns the user's active holdings, newest purchase first.
func (s *InvestmentService) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	investments, err := s.investmentRepo.FindActiveInvestments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments in service: %w", err)
	}
	return investments, nil
}

// CreateInvestment records a new holding after validating that the populated
// fields match its mode: quantity mode needs quantity and purchase price,
// amount mode needs the invested amount.
func (s *InvestmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*domain.Investment, error) {
	mode := domain.InvestmentMode(req.Mode)
	switch mode {
	case domain.ByQuantity:
		if req.Quantity == nil || !req.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: quantity mode requires a positive quantity", apperrors.ErrValidation)
		}
		if req.PurchasePrice == nil || !req.PurchasePrice.IsPositive() {
			return nil, fmt.Errorf("%w: quantity mode requires a positive purchase price", apperrors.ErrValidation)
		}
		if req.InvestedAmount != nil {
			return nil, fmt.Errorf("%w: quantity mode must not carry an invested amount", apperrors.ErrValidation)
		}
	case domain.ByAmount:
		if req.InvestedAmount == nil || !req.InvestedAmount.IsPositive() {
			return nil, fmt.Errorf("%w: amount mode requires a positive invested amount", apperrors.ErrValidation)
		}
		if req.Quantity != nil {
			return nil, fmt.Errorf("%w: amount mode must not carry a quantity", apperrors.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown investment mode %q", apperrors.ErrValidation, req.Mode)
	}

	purchaseDate, err := time.Parse(dto.DateLayout, req.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid purchase date %q", apperrors.ErrValidation, req.PurchaseDate)
	}

	now := time.Now()
	investment := domain.Investment{
		InvestmentID:   uuid.NewString(),
		UserID:         userID,
		Ticker:         req.Ticker,
		AssetName:      req.AssetName,
		Mode:           mode,
		Quantity:       req.Quantity,
		InvestedAmount: req.InvestedAmount,
		PurchasePrice:  req.PurchasePrice,
		CurrentPrice:   req.CurrentPrice,
		CurrencyCode:   req.CurrencyCode,
		PurchaseDate:   purchaseDate,
		Active:         true,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.investmentRepo.SaveInvestment(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment in service: %w", err)
	}
	return &investment, nil
}

// UpdateInvestment changes the holding's current price and/or notes.
func (s *InvestmentService) UpdateInvestment(ctx context.Context, userID, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error) {
	if req.CurrentPrice == nil && req.Notes == nil {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}
	if req.CurrentPrice != nil && !req.CurrentPrice.IsPositive() {
		return nil, fmt.Errorf("%w: current price must be positive", apperrors.ErrValidation)
	}

	investment, err := s.investmentRepo.UpdateInvestment(ctx, userID, investmentID, req.CurrentPrice, req.Notes, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update investment in service: %w", err)
	}
	return investment, nil
}

// DeleteInvestment soft-deletes a holding. It disappears from every
// aggregation but the row is kept.
func (s *InvestmentService) DeleteInvestment(ctx context.Context, userID, investmentID string) error {
	if err := s.investmentRepo.DeactivateInvestment(ctx, userID, investmentID, userID); err != nil {
		return fmt.Errorf("failed to delete investment in service: %w", err)
	}
	return nil
}

// SyncPrices fetches live quotes for the distinct tickers of the user's
// active holdings and persists changed current prices. Tickers that fail to
// price are reported as unpriced, never fatal.
func (s *InvestmentService) SyncPrices(ctx context.Context, userID string) (*dto.SyncPricesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	investments, err := s.investmentRepo.FindActiveInvestments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments for price sync: %w", err)
	}
	if len(investments) == 0 {
		return &dto.SyncPricesResponse{Updated: []dto.SyncedPrice{}}, nil
	}

	seen := make(map[string]bool)
	tickers := make([]string, 0, len(investments))
	for _, inv := range investments {
		if !seen[inv.Ticker] {
			seen[inv.Ticker] = true
			tickers = append(tickers, inv.Ticker)
		}
	}

	quotes := s.quotes.GetSpotPrices(ctx, tickers)

	resp := &dto.SyncPricesResponse{Updated: []dto.SyncedPrice{}}
	unpriced := make(map[string]bool)
	for _, inv := range investments {
		quote, ok := quotes[inv.Ticker]
		if !ok {
			unpriced[inv.Ticker] = true
			continue
		}
		if inv.CurrentPrice != nil && inv.CurrentPrice.Equal(quote.Price) {
			continue
		}
		price := quote.Price
		if _, err := s.investmentRepo.UpdateInvestment(ctx, userID, inv.InvestmentID, &price, nil, userID); err != nil {
			logger.Warn("failed to persist synced price", "investmentID", inv.InvestmentID, "ticker", inv.Ticker, "error", err)
			unpriced[inv.Ticker] = true
			continue
		}
		resp.Updated = append(resp.Updated, dto.SyncedPrice{
			InvestmentID: inv.InvestmentID,
			Ticker:       inv.Ticker,
			Price:        quote.Price,
			Source:       string(quote.Source),
		})
	}

	for ticker := range unpriced {
		resp.Unpriced = append(resp.Unpriced, ticker)
	}
	sort.Strings(resp.Unpriced)

	logger.Info("price sync finished", "updated", len(resp.Updated), "unpriced", len(resp.Unpriced))
	return resp, nil
}

// currentPricesForPortfolio resolves live prices for a set of holdings,
// keyed by ticker. Used by the reporting service.
func currentPricesForPortfolio(ctx context.Context, quotes portssvc.QuoteProvider, investments []domain.Investment) map[string]decimal.Decimal {
	seen := make(map[string]bool)
	tickers := make([]string, 0, len(investments))
	for _, inv := range investments {
		if !seen[inv.Ticker] {
			seen[inv.Ticker] = true
			tickers = append(tickers, inv.Ticker)
		}
	}
	fetched := quotes.GetSpotPrices(ctx, tickers)
	prices := make(map[string]decimal.Decimal, len(fetched))
	for ticker, quote := range fetched {
		prices[ticker] = quote.Price
	}
	return prices
}
