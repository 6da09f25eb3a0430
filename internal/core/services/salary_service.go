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
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryService provides business logic for the user's fixed salary.
type SalaryService struct {
	salaryRepo portsrepo.SalaryRepositoryFacade
}

// NewSalaryService creates a new SalaryService.
func NewSalaryService(salaryRepo portsrepo.SalaryRepositoryFacade) *SalaryService {
	return &SalaryService{salaryRepo: salaryRepo}
}

var _ portssvc.SalarySvcFacade = (*SalaryService)(nil)

// GetActiveSalary returns the currently active salary.
func (s *SalaryService) GetActiveSalary(ctx context.Context, userID string) (*domain.SalaryRecord, error) {
	salary, err := s.salaryRepo.FindActiveSalary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active salary in service: %w", err)
	}
	return salary, nil
}

// GetSalaryHistory returns every salary record, newest first.
func (s *SalaryService) GetSalaryHistory(ctx context.Context, userID string) ([]domain.SalaryRecord, error) {
	history, err := s.salaryRepo.FindSalaryHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary history in service: %w", err)
	}
	return history, nil
}

// SetSalary records a new fixed salary. The previous active salary is
// deactivated and the new row inserted in one transaction, so exactly one
// salary is active afterwards.
func (s *SalaryService) SetSalary(ctx context.Context, req dto.SetSalaryRequest, userID string) (*domain.SalaryRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: salary amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	salary := domain.SalaryRecord{
		SalaryID:     uuid.NewString(),
		UserID:       userID,
		Description:  req.Description,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		Active:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	tx, err := s.salaryRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.salaryRepo.Rollback(ctx, tx)

	if err := s.salaryRepo.DeactivateSalaries(ctx, tx, userID, userID); err != nil {
		return nil, fmt.Errorf("failed to deactivate previous salaries: %w", err)
	}
	if err := s.salaryRepo.SaveSalary(ctx, tx, salary); err != nil {
		return nil, fmt.Errorf("failed to save new salary: %w", err)
	}
	if err := s.salaryRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("salary updated", "salaryID", salary.SalaryID, "currency", salary.CurrencyCode)
	return &salary, nil
}
