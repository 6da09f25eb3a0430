package services

import (
	"context"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
)

// SalarySvcFacade manages the user's fixed salary.
type SalarySvcFacade interface {
	// GetActiveSalary returns the currently active salary, or
	// apperrors.ErrNotFound if none was ever set.
	GetActiveSalary(ctx context.Context, userID string) (*domain.SalaryRecord, error)

	// GetSalaryHistory returns every salary record, newest first.
	GetSalaryHistory(ctx context.Context, userID string) ([]domain.SalaryRecord, error)

	// SetSalary records a new fixed salary, deactivating the previous one in
	// the same transaction.
	SetSalary(ctx context.Context, req dto.SetSalaryRequest, userID string) (*domain.SalaryRecord, error)
}

// IncomeSvcFacade manages extra income records.
type IncomeSvcFacade interface {
	// ListIncomes returns the user's extra incomes, newest first.
	ListIncomes(ctx context.Context, userID string) ([]domain.IncomeRecord, error)

	// CreateIncome records a new extra income.
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*domain.IncomeRecord, error)

	// DeleteIncome removes an extra income permanently.
	DeleteIncome(ctx context.Context, userID, incomeID string) error
}
