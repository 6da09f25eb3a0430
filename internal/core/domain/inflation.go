package domain

import "github.com/shopspring/decimal"

// InflationEntry is a user-recorded inflation figure for one category in one
// calendar month. Several entries may share (year, month) across categories.
type InflationEntry struct {
	EntryID     string          `json:"entryID"`
	UserID      string          `json:"userID"`
	Year        int             `json:"year"`
	Month       int             `json:"month"` // 1-12
	Category    string          `json:"category"`
	Percent     decimal.Decimal `json:"percent"`
	Description string          `json:"description,omitempty"`
	AuditFields
}
