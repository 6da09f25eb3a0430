package services

import (
	"context"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
)

// InflationSvcFacade manages user-recorded inflation entries.
type InflationSvcFacade interface {
	// ListEntries returns every entry, newest period first.
	ListEntries(ctx context.Context, userID string) ([]domain.InflationEntry, error)

	// CreateEntry records a new entry for (year, month, category).
	CreateEntry(ctx context.Context, req dto.CreateInflationEntryRequest, userID string) (*domain.InflationEntry, error)

	// UpdateEntry modifies an existing entry.
	UpdateEntry(ctx context.Context, userID, entryID string, req dto.UpdateInflationEntryRequest) (*domain.InflationEntry, error)

	// DeleteEntry removes an entry permanently.
	DeleteEntry(ctx context.Context, userID, entryID string) error

	// PeriodTotals sums the per-category percentages of each recorded
	// (year, month), newest first. The plain sum mirrors the original
	// bookkeeping; it is not a weighted index.
	PeriodTotals(ctx context.Context, userID string) ([]dto.InflationPeriodTotal, error)
}
