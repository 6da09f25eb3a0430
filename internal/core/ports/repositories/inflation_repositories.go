package repositories

import (
	"context"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
)

// InflationReader defines read operations for user-recorded inflation entries.
type InflationReader interface {
	// FindInflationEntryByID retrieves one entry.
	FindInflationEntryByID(ctx context.Context, userID, entryID string) (*domain.InflationEntry, error)

	// FindInflationEntries retrieves every entry, newest period first.
	FindInflationEntries(ctx context.Context, userID string) ([]domain.InflationEntry, error)
}

// InflationWriter defines write operations for inflation entries.
type InflationWriter interface {
	// SaveInflationEntry persists a new entry. A duplicate
	// (year, month, category) yields apperrors.ErrDuplicate.
	SaveInflationEntry(ctx context.Context, entry domain.InflationEntry) error

	// UpdateInflationEntry updates an existing entry in place.
	UpdateInflationEntry(ctx context.Context, entry domain.InflationEntry) error

	// DeleteInflationEntry removes an entry permanently.
	DeleteInflationEntry(ctx context.Context, userID, entryID string) error
}

// InflationRepositoryFacade combines all inflation-related repository interfaces.
type InflationRepositoryFacade interface {
	InflationReader
	InflationWriter
}

// BalanceReader defines read operations for the consolidated balances view.
type BalanceReader interface {
	// FindConsolidatedBalances retrieves the user's balance rows ordered by
	// reporting-currency value descending.
	FindConsolidatedBalances(ctx context.Context, userID string) ([]domain.ConsolidatedBalance, error)
}

// BalanceRepositoryFacade is the read-only facade over the balances view.
type BalanceRepositoryFacade interface {
	BalanceReader
}
