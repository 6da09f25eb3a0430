package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	portsrepo "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/repositories"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func toModelExpense(d domain.ExpenseRecord) models.Expense {
	return models.Expense{
		ExpenseID:        d.ExpenseID,
		UserID:           d.UserID,
		Description:      d.Description,
		Amount:           d.Amount,
		CurrencyCode:     d.CurrencyCode,
		Category:         sql.NullString{String: d.Category, Valid: d.Category != ""},
		Date:             d.Date,
		DiscountPercent:  d.DiscountPercent,
		DiscountCurrency: sql.NullString{String: d.DiscountCurrency, Valid: d.DiscountCurrency != ""},
		CashbackPercent:  d.CashbackPercent,
		CashbackCurrency: sql.NullString{String: d.CashbackCurrency, Valid: d.CashbackCurrency != ""},
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainExpense(m models.Expense) domain.ExpenseRecord {
	return domain.ExpenseRecord{
		ExpenseID:        m.ExpenseID,
		UserID:           m.UserID,
		Description:      m.Description,
		Amount:           m.Amount,
		CurrencyCode:     m.CurrencyCode,
		Category:         m.Category.String,
		Date:             m.Date,
		DiscountPercent:  m.DiscountPercent,
		DiscountCurrency: m.DiscountCurrency.String,
		CashbackPercent:  m.CashbackPercent,
		CashbackCurrency: m.CashbackCurrency.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const expenseColumns = `expense_id, user_id, description, amount, currency_code, category, date, discount_percent, discount_currency, cashback_percent, cashback_currency, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.Description,
		&m.Amount,
		&m.CurrencyCode,
		&m.Category,
		&m.Date,
		&m.DiscountPercent,
		&m.DiscountCurrency,
		&m.CashbackPercent,
		&m.CashbackCurrency,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindExpenseByID retrieves one expense record.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.ExpenseRecord, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1 AND expense_id = $2;
	`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, userID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	d := toDomainExpense(m)
	return &d, nil
}

// FindExpenses retrieves the user's expenses, newest first.
func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, userID string) ([]domain.ExpenseRecord, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	domainExpenses := make([]domain.ExpenseRecord, len(modelExpenses))
	for i, m := range modelExpenses {
		domainExpenses[i] = toDomainExpense(m)
	}
	return domainExpenses, nil
}

// SaveExpenseTx persists a new expense within tx so the derived cashback
// income can be written in the same transaction.
func (r *PgxExpenseRepository) SaveExpenseTx(ctx context.Context, tx pgx.Tx, expense domain.ExpenseRecord) error {
	m := toModelExpense(expense)
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.Category,
		m.Date,
		m.DiscountPercent,
		m.DiscountCurrency,
		m.CashbackPercent,
		m.CashbackCurrency,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense record permanently.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	query := `DELETE FROM expenses WHERE user_id = $1 AND expense_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
