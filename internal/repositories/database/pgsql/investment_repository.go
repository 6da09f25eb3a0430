package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	portsrepo "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/repositories"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxInvestmentRepository struct {
	BaseRepository
}

// newPgxInvestmentRepository creates a new repository for investment holdings.
func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepositoryFacade {
	return &PgxInvestmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

func toNullDecimal(p *decimal.Decimal) decimal.NullDecimal {
	if p == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *p, Valid: true}
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

func toModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:   d.InvestmentID,
		UserID:         d.UserID,
		Ticker:         d.Ticker,
		AssetName:      sql.NullString{String: d.AssetName, Valid: d.AssetName != ""},
		Mode:           string(d.Mode),
		Quantity:       toNullDecimal(d.Quantity),
		InvestedAmount: toNullDecimal(d.InvestedAmount),
		PurchasePrice:  toNullDecimal(d.PurchasePrice),
		CurrentPrice:   toNullDecimal(d.CurrentPrice),
		CurrencyCode:   d.CurrencyCode,
		PurchaseDate:   d.PurchaseDate,
		IsActive:       d.Active,
		Notes:          sql.NullString{String: d.Notes, Valid: d.Notes != ""},
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:   m.InvestmentID,
		UserID:         m.UserID,
		Ticker:         m.Ticker,
		AssetName:      m.AssetName.String,
		Mode:           domain.InvestmentMode(m.Mode),
		Quantity:       fromNullDecimal(m.Quantity),
		InvestedAmount: fromNullDecimal(m.InvestedAmount),
		PurchasePrice:  fromNullDecimal(m.PurchasePrice),
		CurrentPrice:   fromNullDecimal(m.CurrentPrice),
		CurrencyCode:   m.CurrencyCode,
		PurchaseDate:   m.PurchaseDate,
		Active:         m.IsActive,
		Notes:          m.Notes.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const investmentColumns = `investment_id, user_id, ticker, asset_name, mode, quantity, invested_amount, purchase_price, current_price, currency_code, purchase_date, is_active, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanInvestment(row pgx.Row) (models.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.InvestmentID,
		&m.UserID,
		&m.Ticker,
		&m.AssetName,
		&m.Mode,
		&m.Quantity,
		&m.InvestedAmount,
		&m.PurchasePrice,
		&m.CurrentPrice,
		&m.CurrencyCode,
		&m.PurchaseDate,
		&m.IsActive,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindInvestmentByID retrieves one holding, active or not.
func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, userID, investmentID string) (*domain.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE user_id = $1 AND investment_id = $2;
	`
	m, err := scanInvestment(r.Pool.QueryRow(ctx, query, userID, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment by ID %s: %w", investmentID, err)
	}
	d := toDomainInvestment(m)
	return &d, nil
}

// FindActiveInvestments retrieves the user's active holdings, newest purchase first.
func (r *PgxInvestmentRepository) FindActiveInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY purchase_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	modelInvestments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Investment, error) {
		return scanInvestment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan investments: %w", err)
	}

	domainInvestments := make([]domain.Investment, len(modelInvestments))
	for i, m := range modelInvestments {
		domainInvestments[i] = toDomainInvestment(m)
	}
	return domainInvestments, nil
}

// SaveInvestment persists a new holding.
func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	m := toModelInvestment(investment)
	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvestmentID,
		m.UserID,
		m.Ticker,
		m.AssetName,
		m.Mode,
		m.Quantity,
		m.InvestedAmount,
		m.PurchasePrice,
		m.CurrentPrice,
		m.CurrencyCode,
		m.PurchaseDate,
		m.IsActive,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save investment: %w", err)
	}
	return nil
}

// UpdateInvestment updates the holding's current price and/or notes, leaving
// omitted fields untouched, and returns the updated row.
func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, userID, investmentID string, currentPrice *decimal.Decimal, notes *string, updatedBy string) (*domain.Investment, error) {
	query := `
		UPDATE investments
		SET current_price = COALESCE($3, current_price),
		    notes = COALESCE($4, notes),
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE user_id = $1 AND investment_id = $2
		RETURNING ` + investmentColumns + `;
	`
	m, err := scanInvestment(r.Pool.QueryRow(ctx, query, userID, investmentID, toNullDecimal(currentPrice), notes, time.Now().UTC(), updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update investment %s: %w", investmentID, err)
	}
	d := toDomainInvestment(m)
	return &d, nil
}

// DeactivateInvestment soft-deletes a holding.
func (r *PgxInvestmentRepository) DeactivateInvestment(ctx context.Context, userID, investmentID string, updatedBy string) error {
	query := `
		UPDATE investments
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1 AND investment_id = $2 AND is_active = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, investmentID, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate investment %s: %w", investmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
