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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIncomeRepository struct {
	BaseRepository
}

// newPgxIncomeRepository creates a new repository for extra income data.
func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

func toModelIncome(d domain.IncomeRecord) models.Income {
	return models.Income{
		IncomeID:     d.IncomeID,
		UserID:       d.UserID,
		Description:  d.Description,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		Category:     sql.NullString{String: d.Category, Valid: d.Category != ""},
		Date:         d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainIncome(m models.Income) domain.IncomeRecord {
	return domain.IncomeRecord{
		IncomeID:     m.IncomeID,
		UserID:       m.UserID,
		Description:  m.Description,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Category:     m.Category.String,
		Date:         m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const incomeColumns = `income_id, user_id, description, amount, currency_code, category, date, created_at, created_by, last_updated_at, last_updated_by`

func scanIncome(row pgx.Row) (models.Income, error) {
	var m models.Income
	err := row.Scan(
		&m.IncomeID,
		&m.UserID,
		&m.Description,
		&m.Amount,
		&m.CurrencyCode,
		&m.Category,
		&m.Date,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindIncomeByID retrieves one extra income record.
func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, userID, incomeID string) (*domain.IncomeRecord, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM incomes
		WHERE user_id = $1 AND income_id = $2;
	`
	m, err := scanIncome(r.Pool.QueryRow(ctx, query, userID, incomeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find income by ID %s: %w", incomeID, err)
	}
	d := toDomainIncome(m)
	return &d, nil
}

// FindIncomes retrieves the user's extra incomes, newest first.
func (r *PgxIncomeRepository) FindIncomes(ctx context.Context, userID string) ([]domain.IncomeRecord, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM incomes
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	modelIncomes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Income, error) {
		return scanIncome(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan incomes: %w", err)
	}

	domainIncomes := make([]domain.IncomeRecord, len(modelIncomes))
	for i, m := range modelIncomes {
		domainIncomes[i] = toDomainIncome(m)
	}
	return domainIncomes, nil
}

// SaveIncome persists a new extra income record.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.IncomeRecord) error {
	return saveIncome(ctx, r.Pool, income)
}

// SaveIncomeTx persists a new extra income record inside an existing transaction.
func (r *PgxIncomeRepository) SaveIncomeTx(ctx context.Context, tx pgx.Tx, income domain.IncomeRecord) error {
	return saveIncome(ctx, tx, income)
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func saveIncome(ctx context.Context, db execer, income domain.IncomeRecord) error {
	m := toModelIncome(income)
	query := `
		INSERT INTO incomes (` + incomeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := db.Exec(ctx, query,
		m.IncomeID,
		m.UserID,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.Category,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save income: %w", err)
	}
	return nil
}

// DeleteIncome removes an extra income record permanently.
func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	query := `DELETE FROM incomes WHERE user_id = $1 AND income_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, incomeID)
	if err != nil {
		return fmt.Errorf("failed to delete income %s: %w", incomeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
