package repositories

import (
	"context"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ExpenseReader defines read operations for expense records.
type ExpenseReader interface {
	// FindExpenseByID retrieves one expense record.
	FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.ExpenseRecord, error)

	// FindExpenses retrieves the user's expenses, newest first.
	FindExpenses(ctx context.Context, userID string) ([]domain.ExpenseRecord, error)
}

// ExpenseWriter defines write operations for expense records.
type ExpenseWriter interface {
	// SaveExpenseTx persists a new expense within tx so the cashback income
	// can be written in the same transaction.
	SaveExpenseTx(ctx context.Context, tx pgx.Tx, expense domain.ExpenseRecord) error

	// DeleteExpense removes an expense record permanently.
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// ExpenseRepositoryFacade combines expense repository interfaces with
// transaction control for the expense-plus-cashback write.
type ExpenseRepositoryFacade interface {
	TransactionManager
	ExpenseReader
	ExpenseWriter
}
