package dto

import (
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for record dates.
const DateLayout = "2006-01-02"

// SetSalaryRequest defines the payload to record a new fixed salary.
type SetSalaryRequest struct {
	Description  string          `json:"description" binding:"required,max=255"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,uppercase"`
}

// CreateIncomeRequest defines the payload to record an extra income.
type CreateIncomeRequest struct {
	Description  string          `json:"description" binding:"required,max=255"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	Category     string          `json:"category" binding:"omitempty,max=100"`
	Date         string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// SalaryResponse is the API representation of a salary record.
type SalaryResponse struct {
	SalaryID     string          `json:"salaryID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// IncomeResponse is the API representation of an extra income record.
type IncomeResponse struct {
	IncomeID     string          `json:"incomeID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Category     string          `json:"category,omitempty"`
	Date         string          `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToSalaryResponse converts a domain.SalaryRecord to its response DTO.
func ToSalaryResponse(s *domain.SalaryRecord) SalaryResponse {
	return SalaryResponse{
		SalaryID:     s.SalaryID,
		Description:  s.Description,
		Amount:       s.Amount,
		CurrencyCode: s.CurrencyCode,
		Active:       s.Active,
		CreatedAt:    s.CreatedAt,
	}
}

// ToListSalaryResponse converts a slice of salary records.
func ToListSalaryResponse(records []domain.SalaryRecord) []SalaryResponse {
	responses := make([]SalaryResponse, len(records))
	for i := range records {
		responses[i] = ToSalaryResponse(&records[i])
	}
	return responses
}

// ToIncomeResponse converts a domain.IncomeRecord to its response DTO.
func ToIncomeResponse(r *domain.IncomeRecord) IncomeResponse {
	return IncomeResponse{
		IncomeID:     r.IncomeID,
		Description:  r.Description,
		Amount:       r.Amount,
		CurrencyCode: r.CurrencyCode,
		Category:     r.Category,
		Date:         r.Date.Format(DateLayout),
		CreatedAt:    r.CreatedAt,
	}
}

// ToListIncomeResponse converts a slice of income records.
func ToListIncomeResponse(records []domain.IncomeRecord) []IncomeResponse {
	responses := make([]IncomeResponse, len(records))
	for i := range records {
		responses[i] = ToIncomeResponse(&records[i])
	}
	return responses
}
