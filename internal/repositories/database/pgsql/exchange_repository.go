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

type PgxExchangeRepository struct {
	BaseRepository
}

// newPgxExchangeRepository creates a new repository for currency exchange data.
func newPgxExchangeRepository(pool *pgxpool.Pool) portsrepo.ExchangeRepositoryFacade {
	return &PgxExchangeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRepositoryFacade = (*PgxExchangeRepository)(nil)

func toModelExchange(d domain.CurrencyExchange) models.CurrencyExchange {
	return models.CurrencyExchange{
		ExchangeID:     d.ExchangeID,
		UserID:         d.UserID,
		SourceCurrency: d.SourceCurrency,
		SourceAmount:   d.SourceAmount,
		DestCurrency:   d.DestCurrency,
		DestAmount:     d.DestAmount,
		Rate:           d.Rate,
		Date:           d.Date,
		SourceKind:     sql.NullString{String: string(d.SourceKind), Valid: d.SourceKind != ""},
		SourceTicker:   sql.NullString{String: d.SourceTicker, Valid: d.SourceTicker != ""},
		Notes:          sql.NullString{String: d.Notes, Valid: d.Notes != ""},
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainExchange(m models.CurrencyExchange) domain.CurrencyExchange {
	return domain.CurrencyExchange{
		ExchangeID:     m.ExchangeID,
		UserID:         m.UserID,
		SourceCurrency: m.SourceCurrency,
		SourceAmount:   m.SourceAmount,
		DestCurrency:   m.DestCurrency,
		DestAmount:     m.DestAmount,
		Rate:           m.Rate,
		Date:           m.Date,
		SourceKind:     domain.ExchangeSourceKind(m.SourceKind.String),
		SourceTicker:   m.SourceTicker.String,
		Notes:          m.Notes.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const exchangeColumns = `exchange_id, user_id, source_currency, source_amount, dest_currency, dest_amount, rate, date, source_kind, source_ticker, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanExchange(row pgx.Row) (models.CurrencyExchange, error) {
	var m models.CurrencyExchange
	err := row.Scan(
		&m.ExchangeID,
		&m.UserID,
		&m.SourceCurrency,
		&m.SourceAmount,
		&m.DestCurrency,
		&m.DestAmount,
		&m.Rate,
		&m.Date,
		&m.SourceKind,
		&m.SourceTicker,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindExchangeByID retrieves one exchange record.
func (r *PgxExchangeRepository) FindExchangeByID(ctx context.Context, userID, exchangeID string) (*domain.CurrencyExchange, error) {
	query := `
		SELECT ` + exchangeColumns + `
		FROM currency_exchanges
		WHERE user_id = $1 AND exchange_id = $2;
	`
	m, err := scanExchange(r.Pool.QueryRow(ctx, query, userID, exchangeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange by ID %s: %w", exchangeID, err)
	}
	d := toDomainExchange(m)
	return &d, nil
}

// FindExchanges retrieves the user's exchanges, newest first.
func (r *PgxExchangeRepository) FindExchanges(ctx context.Context, userID string) ([]domain.CurrencyExchange, error) {
	query := `
		SELECT ` + exchangeColumns + `
		FROM currency_exchanges
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer rows.Close()

	modelExchanges, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyExchange, error) {
		return scanExchange(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchanges: %w", err)
	}

	domainExchanges := make([]domain.CurrencyExchange, len(modelExchanges))
	for i, m := range modelExchanges {
		domainExchanges[i] = toDomainExchange(m)
	}
	return domainExchanges, nil
}

// SaveExchange persists a new exchange record.
func (r *PgxExchangeRepository) SaveExchange(ctx context.Context, exchange domain.CurrencyExchange) error {
	m := toModelExchange(exchange)
	query := `
		INSERT INTO currency_exchanges (` + exchangeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExchangeID,
		m.UserID,
		m.SourceCurrency,
		m.SourceAmount,
		m.DestCurrency,
		m.DestAmount,
		m.Rate,
		m.Date,
		m.SourceKind,
		m.SourceTicker,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save exchange: %w", err)
	}
	return nil
}
