package pgsql

import (
	"context"
	"fmt"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	portsrepo "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/repositories"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a read-only repository over the
// consolidated balances view.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

func toDomainBalance(m models.ConsolidatedBalance) domain.ConsolidatedBalance {
	return domain.ConsolidatedBalance{
		UserID:       m.UserID,
		CurrencyCode: m.CurrencyCode,
		AssetType:    domain.BalanceAssetType(m.AssetType),
		Ticker:       m.Ticker.String,
		Quantity:     m.Quantity,
		UnitPriceARS: m.UnitPriceARS,
		ValueARS:     m.ValueARS,
	}
}

// FindConsolidatedBalances retrieves the user's balance rows ordered by value
// in the reporting currency, largest first.
func (r *PgxBalanceRepository) FindConsolidatedBalances(ctx context.Context, userID string) ([]domain.ConsolidatedBalance, error) {
	query := `
		SELECT user_id, currency_code, asset_type, ticker, quantity, unit_price_ars, value_ars
		FROM consolidated_balances
		WHERE user_id = $1
		ORDER BY value_ars DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query consolidated balances: %w", err)
	}
	defer rows.Close()

	modelBalances, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ConsolidatedBalance, error) {
		var m models.ConsolidatedBalance
		err := row.Scan(
			&m.UserID,
			&m.CurrencyCode,
			&m.AssetType,
			&m.Ticker,
			&m.Quantity,
			&m.UnitPriceARS,
			&m.ValueARS,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan consolidated balances: %w", err)
	}

	domainBalances := make([]domain.ConsolidatedBalance, len(modelBalances))
	for i, m := range modelBalances {
		domainBalances[i] = toDomainBalance(m)
	}
	return domainBalances, nil
}
