package dto

import (
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the payload to record an expense. Discount and
// cashback percentages are optional; a cashback percentage produces a derived
// extra income on creation.
type CreateExpenseRequest struct {
	Description      string           `json:"description" binding:"required,max=255"`
	Amount           decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode     string           `json:"currencyCode" binding:"required,len=3,uppercase"`
	Category         string           `json:"category" binding:"omitempty,max=100"`
	Date             string           `json:"date" binding:"required,datetime=2006-01-02"`
	DiscountPercent  *decimal.Decimal `json:"discountPercent" binding:"omitempty"`
	DiscountCurrency string           `json:"discountCurrency" binding:"omitempty,len=3,uppercase"`
	CashbackPercent  *decimal.Decimal `json:"cashbackPercent" binding:"omitempty"`
	CashbackCurrency string           `json:"cashbackCurrency" binding:"omitempty,len=3,uppercase"`
}

// ExpenseResponse is the API representation of an expense record.
type ExpenseResponse struct {
	ExpenseID        string          `json:"expenseID"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	Category         string          `json:"category,omitempty"`
	Date             string          `json:"date"`
	DiscountPercent  decimal.Decimal `json:"discountPercent"`
	DiscountCurrency string          `json:"discountCurrency,omitempty"`
	CashbackPercent  decimal.Decimal `json:"cashbackPercent"`
	CashbackCurrency string          `json:"cashbackCurrency,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// CreateExpenseResponse bundles the created expense with the cashback income
// it produced, if any.
type CreateExpenseResponse struct {
	Expense        ExpenseResponse `json:"expense"`
	CashbackIncome *IncomeResponse `json:"cashbackIncome,omitempty"`
}

// ToExpenseResponse converts a domain.ExpenseRecord to its response DTO.
func ToExpenseResponse(e *domain.ExpenseRecord) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:        e.ExpenseID,
		Description:      e.Description,
		Amount:           e.Amount,
		CurrencyCode:     e.CurrencyCode,
		Category:         e.Category,
		Date:             e.Date.Format(DateLayout),
		DiscountPercent:  e.DiscountPercent,
		DiscountCurrency: e.DiscountCurrency,
		CashbackPercent:  e.CashbackPercent,
		CashbackCurrency: e.CashbackCurrency,
		CreatedAt:        e.CreatedAt,
	}
}

// ToListExpenseResponse converts a slice of expense records.
func ToListExpenseResponse(records []domain.ExpenseRecord) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(records))
	for i := range records {
		responses[i] = ToExpenseResponse(&records[i])
	}
	return responses
}
