package dto

import (
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInflationEntryRequest defines the payload to record an inflation
// figure for one category in one calendar month.
type CreateInflationEntryRequest struct {
	Year        int             `json:"year" binding:"required,min=2000,max=2100"`
	Month       int             `json:"month" binding:"required,min=1,max=12"`
	Category    string          `json:"category" binding:"omitempty,max=100"`
	Percent     decimal.Decimal `json:"percent" binding:"required"`
	Description string          `json:"description" binding:"omitempty,max=500"`
}

// UpdateInflationEntryRequest updates the recorded percentage or description.
type UpdateInflationEntryRequest struct {
	Percent     *decimal.Decimal `json:"percent" binding:"omitempty"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
}

// InflationEntryResponse is the API representation of an inflation entry.
type InflationEntryResponse struct {
	EntryID     string          `json:"entryID"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Category    string          `json:"category,omitempty"`
	Percent     decimal.Decimal `json:"percent"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// InflationPeriodTotal aggregates the recorded entries for one month: the
// summed percentage across categories plus how many entries contributed.
type InflationPeriodTotal struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	TotalPercent decimal.Decimal `json:"totalPercent"`
	EntryCount   int             `json:"entryCount"`
}

// ToInflationEntryResponse converts a domain.InflationEntry to its response DTO.
func ToInflationEntryResponse(entry *domain.InflationEntry) InflationEntryResponse {
	return InflationEntryResponse{
		EntryID:     entry.EntryID,
		Year:        entry.Year,
		Month:       entry.Month,
		Category:    entry.Category,
		Percent:     entry.Percent,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}

// ToListInflationEntryResponse converts a slice of inflation entries.
func ToListInflationEntryResponse(records []domain.InflationEntry) []InflationEntryResponse {
	responses := make([]InflationEntryResponse, len(records))
	for i := range records {
		responses[i] = ToInflationEntryResponse(&records[i])
	}
	return responses
}
