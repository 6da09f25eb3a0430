package services

import (
	"context"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
)

// ExpenseSvcFacade manages expense records.
type ExpenseSvcFacade interface {
	// ListExpenses returns the user's expenses, newest first.
	ListExpenses(ctx context.Context, userID string) ([]domain.ExpenseRecord, error)

	// CreateExpense records a new expense. When the expense carries a
	// cashback percentage, a derived extra income is created in the same
	// transaction and returned alongside the expense; otherwise the second
	// return value is nil.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.ExpenseRecord, *domain.IncomeRecord, error)

	// DeleteExpense removes an expense permanently. Any cashback income it
	// produced earlier is left in place, matching the original books.
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// ExchangeSvcFacade manages currency exchange records.
type ExchangeSvcFacade interface {
	// ListExchanges returns the user's exchanges, newest first.
	ListExchanges(ctx context.Context, userID string) ([]domain.CurrencyExchange, error)

	// CreateExchange records a conversion; the destination amount is derived
	// from the rate and direction, rounded to 2 decimals.
	CreateExchange(ctx context.Context, req dto.CreateExchangeRequest, userID string) (*domain.CurrencyExchange, error)
}
