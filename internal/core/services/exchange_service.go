package services

import (
	"context"
	"fmt"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	portsrepo "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/repositories"
	portssvc "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeService provides business logic for currency exchanges.
type ExchangeService struct {
	exchangeRepo portsrepo.ExchangeRepositoryFacade
}

// NewExchangeService creates a new ExchangeService.
func NewExchangeService(exchangeRepo portsrepo.ExchangeRepositoryFacade) *ExchangeService {
	return &ExchangeService{exchangeRepo: exchangeRepo}
}

var _ portssvc.ExchangeSvcFacade = (*ExchangeService)(nil)

// ListExchanges returns the user's exchanges, newest first.
func (s *ExchangeService) ListExchanges(ctx context.Context, userID string) ([]domain.CurrencyExchange, error) {
	exchanges, err := s.exchangeRepo.FindExchanges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchanges in service: %w", err)
	}
	return exchanges, nil
}

// CreateExchange records a conversion. The destination amount is always
// derived server-side: selling the reporting currency divides by the rate,
// buying it multiplies, rounded to 2 decimals.
func (s *ExchangeService) CreateExchange(ctx context.Context, req dto.CreateExchangeRequest, userID string) (*domain.CurrencyExchange, error) {
	if req.SourceAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: source amount must be positive", apperrors.ErrValidation)
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.SourceCurrency == req.DestCurrency {
		return nil, fmt.Errorf("%w: source and destination currencies cannot be the same", apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now()
	exchange := domain.CurrencyExchange{
		ExchangeID:     uuid.NewString(),
		UserID:         userID,
		SourceCurrency: req.SourceCurrency,
		SourceAmount:   req.SourceAmount,
		DestCurrency:   req.DestCurrency,
		DestAmount:     domain.DeriveDestAmount(req.SourceCurrency, req.SourceAmount, req.Rate, req.DestCurrency),
		Rate:           req.Rate,
		Date:           date,
		SourceKind:     domain.ExchangeSourceKind(req.SourceKind),
		SourceTicker:   req.SourceTicker,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.exchangeRepo.SaveExchange(ctx, exchange); err != nil {
		return nil, fmt.Errorf("failed to create exchange in service: %w", err)
	}
	return &exchange, nil
}
