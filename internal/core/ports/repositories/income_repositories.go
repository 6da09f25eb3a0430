package repositories

import (
	"context"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SalaryReader defines read operations for the fixed salary.
type SalaryReader interface {
	// FindActiveSalary retrieves the user's currently active salary, or
	// apperrors.ErrNotFound if none was ever set.
	FindActiveSalary(ctx context.Context, userID string) (*domain.SalaryRecord, error)

	// FindSalaryHistory retrieves every salary record, newest first.
	FindSalaryHistory(ctx context.Context, userID string) ([]domain.SalaryRecord, error)
}

// SalaryWriter defines write operations for the fixed salary.
type SalaryWriter interface {
	// SaveSalary persists a new salary record within tx.
	SaveSalary(ctx context.Context, tx pgx.Tx, salary domain.SalaryRecord) error

	// DeactivateSalaries marks every active salary of the user inactive
	// within tx. Combined with SaveSalary this enforces the single-active
	// invariant (deactivate-then-insert).
	DeactivateSalaries(ctx context.Context, tx pgx.Tx, userID string, updatedBy string) error
}

// SalaryRepositoryFacade combines salary repository interfaces with
// transaction control for the supersede flow.
type SalaryRepositoryFacade interface {
	TransactionManager
	SalaryReader
	SalaryWriter
}

// IncomeReader defines read operations for extra income records.
type IncomeReader interface {
	// FindIncomeByID retrieves one extra income record.
	FindIncomeByID(ctx context.Context, userID, incomeID string) (*domain.IncomeRecord, error)

	// FindIncomes retrieves the user's extra incomes, newest first.
	FindIncomes(ctx context.Context, userID string) ([]domain.IncomeRecord, error)
}

// IncomeWriter defines write operations for extra income records.
type IncomeWriter interface {
	// SaveIncome persists a new extra income record.
	SaveIncome(ctx context.Context, income domain.IncomeRecord) error

	// SaveIncomeTx persists a new extra income record inside an existing
	// transaction (used for the cashback side effect of expense creation).
	SaveIncomeTx(ctx context.Context, tx pgx.Tx, income domain.IncomeRecord) error

	// DeleteIncome removes an extra income record permanently.
	DeleteIncome(ctx context.Context, userID, incomeID string) error
}

// IncomeRepositoryFacade combines all income-related repository interfaces.
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}
