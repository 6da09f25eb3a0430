package dto

import (
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRequest defines the payload to record a currency exchange.
// The destination amount is derived server-side from the rate.
type CreateExchangeRequest struct {
	SourceCurrency string          `json:"sourceCurrency" binding:"required,len=3,uppercase"`
	SourceAmount   decimal.Decimal `json:"sourceAmount" binding:"required"`
	DestCurrency   string          `json:"destCurrency" binding:"required,len=3,uppercase"`
	Rate           decimal.Decimal `json:"rate" binding:"required"`
	Date           string          `json:"date" binding:"required,datetime=2006-01-02"`
	SourceKind     string          `json:"sourceKind" binding:"omitempty,oneof=cash investment"`
	SourceTicker   string          `json:"sourceTicker" binding:"omitempty,max=20"`
	Notes          string          `json:"notes" binding:"omitempty,max=500"`
}

// ExchangeResponse is the API representation of a currency exchange.
type ExchangeResponse struct {
	ExchangeID     string          `json:"exchangeID"`
	SourceCurrency string          `json:"sourceCurrency"`
	SourceAmount   decimal.Decimal `json:"sourceAmount"`
	DestCurrency   string          `json:"destCurrency"`
	DestAmount     decimal.Decimal `json:"destAmount"`
	Rate           decimal.Decimal `json:"rate"`
	Date           string          `json:"date"`
	SourceKind     string          `json:"sourceKind,omitempty"`
	SourceTicker   string          `json:"sourceTicker,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToExchangeResponse converts a domain.CurrencyExchange to its response DTO.
func ToExchangeResponse(e *domain.CurrencyExchange) ExchangeResponse {
	return ExchangeResponse{
		ExchangeID:     e.ExchangeID,
		SourceCurrency: e.SourceCurrency,
		SourceAmount:   e.SourceAmount,
		DestCurrency:   e.DestCurrency,
		DestAmount:     e.DestAmount,
		Rate:           e.Rate,
		Date:           e.Date.Format(DateLayout),
		SourceKind:     string(e.SourceKind),
		SourceTicker:   e.SourceTicker,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
	}
}

// ToListExchangeResponse converts a slice of exchange records.
func ToListExchangeResponse(records []domain.CurrencyExchange) []ExchangeResponse {
	responses := make([]ExchangeResponse, len(records))
	for i := range records {
		responses[i] = ToExchangeResponse(&records[i])
	}
	return responses
}
