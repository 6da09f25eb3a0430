package services

import (
	"context"
	"fmt"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	portsrepo "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/repositories"
	portssvc "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
	"github.com/google/uuid"
)

// InflationService provides business logic for user-recorded inflation entries.
type InflationService struct {
	inflationRepo portsrepo.InflationRepositoryFacade
}

// NewInflationService creates a new InflationService.
func NewInflationService(inflationRepo portsrepo.InflationRepositoryFacade) *InflationService {
	return &InflationService{inflationRepo: inflationRepo}
}

var _ portssvc.InflationSvcFacade = (*InflationService)(nil)

// ListEntries returns every entry, newest period first.
func (s *InflationService) ListEntries(ctx context.Context, userID string) ([]domain.InflationEntry, error) {
	entries, err := s.inflationRepo.FindInflationEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inflation entries in service: %w", err)
	}
	return entries, nil
}

// CreateEntry records a new entry for (year, month, category).
func (s *InflationService) CreateEntry(ctx context.Context, req dto.CreateInflationEntryRequest, userID string) (*domain.InflationEntry, error) {
	now := time.Now()
	entry := domain.InflationEntry{
		EntryID:     uuid.NewString(),
		UserID:      userID,
		Year:        req.Year,
		Month:       req.Month,
		Category:    req.Category,
		Percent:     req.Percent,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.inflationRepo.SaveInflationEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create inflation entry in service: %w", err)
	}
	return &entry, nil
}

// UpdateEntry modifies an existing entry.
func (s *InflationService) UpdateEntry(ctx context.Context, userID, entryID string, req dto.UpdateInflationEntryRequest) (*domain.InflationEntry, error) {
	if req.Percent == nil && req.Description == nil {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}

	entry, err := s.inflationRepo.FindInflationEntryByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inflation entry for update: %w", err)
	}

	if req.Percent != nil {
		entry.Percent = *req.Percent
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = userID

	if err := s.inflationRepo.UpdateInflationEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update inflation entry in service: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes an entry permanently.
func (s *InflationService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := s.inflationRepo.DeleteInflationEntry(ctx, userID, entryID); err != nil {
		return fmt.Errorf("failed to delete inflation entry in service: %w", err)
	}
	return nil
}

// PeriodTotals sums the per-category percentages of each recorded
// (year, month), newest first. A plain sum, not a weighted index.
func (s *InflationService) PeriodTotals(ctx context.Context, userID string) ([]dto.InflationPeriodTotal, error) {
	entries, err := s.inflationRepo.FindInflationEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inflation entries for totals: %w", err)
	}

	// Entries arrive ordered year DESC, month DESC, so grouping preserves
	// newest-first order.
	totals := make([]dto.InflationPeriodTotal, 0)
	for _, entry := range entries {
		if n := len(totals); n > 0 && totals[n-1].Year == entry.Year && totals[n-1].Month == entry.Month {
			totals[n-1].TotalPercent = totals[n-1].TotalPercent.Add(entry.Percent)
			totals[n-1].EntryCount++
			continue
		}
		totals = append(totals, dto.InflationPeriodTotal{
			Year:         entry.Year,
			Month:        entry.Month,
			TotalPercent: entry.Percent,
			EntryCount:   1,
		})
	}
	return totals, nil
}
