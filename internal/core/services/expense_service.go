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

// ExpenseService provides business logic for expenses, including the derived
// cashback income written in the same transaction as the expense.
type ExpenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	incomeRepo  portsrepo.IncomeRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, incomeRepo portsrepo.IncomeRepositoryFacade) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

// ListExpenses returns the user's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID string) ([]domain.ExpenseRecord, error) {
	expenses, err := s.expenseRepo.FindExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in service: %w", err)
	}
	return expenses, nil
}

// CreateExpense records a new expense. When the expense carries a cashback
// percentage, the derived income ("Cashback de <description>", category
// Cashback, same date) is written in the same transaction: either both rows
// land or neither does.
func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.ExpenseRecord, *domain.IncomeRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	discountPercent := decimal.Zero
	if req.DiscountPercent != nil {
		discountPercent = *req.DiscountPercent
	}
	cashbackPercent := decimal.Zero
	if req.CashbackPercent != nil {
		cashbackPercent = *req.CashbackPercent
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, nil, fmt.Errorf("%w: discount percent must be between 0 and 100", apperrors.ErrValidation)
	}
	if cashbackPercent.IsNegative() || cashbackPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, nil, fmt.Errorf("%w: cashback percent must be between 0 and 100", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.ExpenseRecord{
		ExpenseID:        uuid.NewString(),
		UserID:           userID,
		Description:      req.Description,
		Amount:           req.Amount,
		CurrencyCode:     req.CurrencyCode,
		Category:         req.Category,
		Date:             date,
		DiscountPercent:  discountPercent,
		DiscountCurrency: req.DiscountCurrency,
		CashbackPercent:  cashbackPercent,
		CashbackCurrency: req.CashbackCurrency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	var cashback *domain.IncomeRecord
	if expense.HasCashback() {
		cashbackCurrency := expense.CashbackCurrency
		if cashbackCurrency == "" {
			cashbackCurrency = expense.CurrencyCode
		}
		cashback = &domain.IncomeRecord{
			IncomeID:     uuid.NewString(),
			UserID:       userID,
			Description:  fmt.Sprintf("Cashback de %s", expense.Description),
			Amount:       expense.CashbackAmount(),
			CurrencyCode: cashbackCurrency,
			Category:     domain.CashbackCategory,
			Date:         expense.Date,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	tx, err := s.expenseRepo.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer s.expenseRepo.Rollback(ctx, tx)

	if err := s.expenseRepo.SaveExpenseTx(ctx, tx, expense); err != nil {
		return nil, nil, fmt.Errorf("failed to save expense: %w", err)
	}
	if cashback != nil {
		if err := s.incomeRepo.SaveIncomeTx(ctx, tx, *cashback); err != nil {
			return nil, nil, fmt.Errorf("failed to save cashback income: %w", err)
		}
	}
	if err := s.expenseRepo.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	if cashback != nil {
		logger.Info("expense created with cashback income", "expenseID", expense.ExpenseID, "incomeID", cashback.IncomeID)
	}
	return &expense, cashback, nil
}

// DeleteExpense removes an expense permanently. Cashback income created with
// it is left in place.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, userID, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense in service: %w", err)
	}
	return nil
}
