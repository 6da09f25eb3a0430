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

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type PgxInflationRepository struct {
	BaseRepository
}

// newPgxInflationRepository creates a new repository for inflation entries.
func newPgxInflationRepository(pool *pgxpool.Pool) portsrepo.InflationRepositoryFacade {
	return &PgxInflationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InflationRepositoryFacade = (*PgxInflationRepository)(nil)

func toModelInflationEntry(d domain.InflationEntry) models.InflationEntry {
	return models.InflationEntry{
		EntryID:     d.EntryID,
		UserID:      d.UserID,
		Year:        d.Year,
		Month:       d.Month,
		Category:    sql.NullString{String: d.Category, Valid: d.Category != ""},
		Percent:     d.Percent,
		Description: sql.NullString{String: d.Description, Valid: d.Description != ""},
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainInflationEntry(m models.InflationEntry) domain.InflationEntry {
	return domain.InflationEntry{
		EntryID:     m.EntryID,
		UserID:      m.UserID,
		Year:        m.Year,
		Month:       m.Month,
		Category:    m.Category.String,
		Percent:     m.Percent,
		Description: m.Description.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const inflationColumns = `entry_id, user_id, year, month, category, percent, description, created_at, created_by, last_updated_at, last_updated_by`

func scanInflationEntry(row pgx.Row) (models.InflationEntry, error) {
	var m models.InflationEntry
	err := row.Scan(
		&m.EntryID,
		&m.UserID,
		&m.Year,
		&m.Month,
		&m.Category,
		&m.Percent,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindInflationEntryByID retrieves one entry.
func (r *PgxInflationRepository) FindInflationEntryByID(ctx context.Context, userID, entryID string) (*domain.InflationEntry, error) {
	query := `
		SELECT ` + inflationColumns + `
		FROM inflation_entries
		WHERE user_id = $1 AND entry_id = $2;
	`
	m, err := scanInflationEntry(r.Pool.QueryRow(ctx, query, userID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inflation entry by ID %s: %w", entryID, err)
	}
	d := toDomainInflationEntry(m)
	return &d, nil
}

// FindInflationEntries retrieves every entry, newest period first.
func (r *PgxInflationRepository) FindInflationEntries(ctx context.Context, userID string) ([]domain.InflationEntry, error) {
	query := `
		SELECT ` + inflationColumns + `
		FROM inflation_entries
		WHERE user_id = $1
		ORDER BY year DESC, month DESC, category ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inflation entries: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InflationEntry, error) {
		return scanInflationEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan inflation entries: %w", err)
	}

	domainEntries := make([]domain.InflationEntry, len(modelEntries))
	for i, m := range modelEntries {
		domainEntries[i] = toDomainInflationEntry(m)
	}
	return domainEntries, nil
}

// SaveInflationEntry persists a new entry. A duplicate (year, month, category)
// yields apperrors.ErrDuplicate.
func (r *PgxInflationRepository) SaveInflationEntry(ctx context.Context, entry domain.InflationEntry) error {
	m := toModelInflationEntry(entry)
	query := `
		INSERT INTO inflation_entries (` + inflationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.UserID,
		m.Year,
		m.Month,
		m.Category,
		m.Percent,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: inflation entry for %d-%02d already exists", apperrors.ErrDuplicate, entry.Year, entry.Month)
		}
		return fmt.Errorf("failed to save inflation entry: %w", err)
	}
	return nil
}

// UpdateInflationEntry updates an existing entry in place.
func (r *PgxInflationRepository) UpdateInflationEntry(ctx context.Context, entry domain.InflationEntry) error {
	m := toModelInflationEntry(entry)
	query := `
		UPDATE inflation_entries
		SET percent = $3, description = $4, last_updated_at = $5, last_updated_by = $6
		WHERE user_id = $1 AND entry_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.EntryID,
		m.Percent,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update inflation entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInflationEntry removes an entry permanently.
func (r *PgxInflationRepository) DeleteInflationEntry(ctx context.Context, userID, entryID string) error {
	query := `DELETE FROM inflation_entries WHERE user_id = $1 AND entry_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete inflation entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
