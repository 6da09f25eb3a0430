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

// IncomeService provides business logic for extra income records.
type IncomeService struct {
	incomeRepo portsrepo.IncomeRepositoryFacade
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(incomeRepo portsrepo.IncomeRepositoryFacade) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo}
}

var _ portssvc.IncomeSvcFacade = (*IncomeService)(nil)

// ListIncomes returns the user's extra incomes, newest first.
func (s *IncomeService) ListIncomes(ctx context.Context, userID string) ([]domain.IncomeRecord, error) {
	incomes, err := s.incomeRepo.FindIncomes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes in service: %w", err)
	}
	return incomes, nil
}

// CreateIncome records a new extra income.
func (s *IncomeService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*domain.IncomeRecord, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: income amount must be positive", apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now()
	income := domain.IncomeRecord{
		IncomeID:     uuid.NewString(),
		UserID:       userID,
		Description:  req.Description,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		Category:     req.Category,
		Date:         date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income in service: %w", err)
	}
	return &income, nil
}

// DeleteIncome removes an extra income permanently.
func (s *IncomeService) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	if err := s.incomeRepo.DeleteIncome(ctx, userID, incomeID); err != nil {
		return fmt.Errorf("failed to delete income in service: %w", err)
	}
	return nil
}
