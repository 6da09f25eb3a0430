package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	portsrepo "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/repositories"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSalaryRepository struct {
	BaseRepository
}

// newPgxSalaryRepository creates a new repository for fixed salary data.
func newPgxSalaryRepository(pool *pgxpool.Pool) portsrepo.SalaryRepositoryFacade {
	return &PgxSalaryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SalaryRepositoryFacade = (*PgxSalaryRepository)(nil)

func toModelSalary(d domain.SalaryRecord) models.Salary {
	return models.Salary{
		SalaryID:     d.SalaryID,
		UserID:       d.UserID,
		Description:  d.Description,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		IsActive:     d.Active,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainSalary(m models.Salary) domain.SalaryRecord {
	return domain.SalaryRecord{
		SalaryID:     m.SalaryID,
		UserID:       m.UserID,
		Description:  m.Description,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Active:       m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const salaryColumns = `salary_id, user_id, description, amount, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanSalary(row pgx.Row) (models.Salary, error) {
	var m models.Salary
	err := row.Scan(
		&m.SalaryID,
		&m.UserID,
		&m.Description,
		&m.Amount,
		&m.CurrencyCode,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindActiveSalary retrieves the user's currently active salary.
func (r *PgxSalaryRepository) FindActiveSalary(ctx context.Context, userID string) (*domain.SalaryRecord, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salaries
		WHERE user_id = $1 AND is_active = TRUE;
	`
	m, err := scanSalary(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active salary: %w", err)
	}
	d := toDomainSalary(m)
	return &d, nil
}

// FindSalaryHistory retrieves every salary record, newest first.
func (r *PgxSalaryRepository) FindSalaryHistory(ctx context.Context, userID string) ([]domain.SalaryRecord, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salaries
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary history: %w", err)
	}
	defer rows.Close()

	modelSalaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Salary, error) {
		return scanSalary(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan salary history: %w", err)
	}

	domainSalaries := make([]domain.SalaryRecord, len(modelSalaries))
	for i, m := range modelSalaries {
		domainSalaries[i] = toDomainSalary(m)
	}
	return domainSalaries, nil
}

// SaveSalary persists a new salary record within tx.
func (r *PgxSalaryRepository) SaveSalary(ctx context.Context, tx pgx.Tx, salary domain.SalaryRecord) error {
	m := toModelSalary(salary)
	query := `
		INSERT INTO salaries (` + salaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.SalaryID,
		m.UserID,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save salary: %w", err)
	}
	return nil
}

// DeactivateSalaries marks every active salary of the user inactive within tx.
func (r *PgxSalaryRepository) DeactivateSalaries(ctx context.Context, tx pgx.Tx, userID string, updatedBy string) error {
	query := `
		UPDATE salaries
		SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
		WHERE user_id = $1 AND is_active = TRUE;
	`
	_, err := tx.Exec(ctx, query, userID, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate salaries: %w", err)
	}
	return nil
}
