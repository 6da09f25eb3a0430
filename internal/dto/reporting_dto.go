package dto

import (
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/finance"
	"github.com/shopspring/decimal"
)

// RateInfoResponse reports the exchange rate a summary was computed with and
// whether it came from a live source or the configured fallback.
type RateInfoResponse struct {
	Currency string          `json:"currency"`
	Value    decimal.Decimal `json:"value"`
	Source   string          `json:"source"`
}

// DashboardSummaryResponse is the dashboard header for the anchor month.
type DashboardSummaryResponse struct {
	Period            string             `json:"period"`
	ReportingCurrency string             `json:"reportingCurrency"`
	TotalIncome       decimal.Decimal    `json:"totalIncome"`
	TotalExpense      decimal.Decimal    `json:"totalExpense"`
	Savings           decimal.Decimal    `json:"savings"`
	SavingsRate       decimal.Decimal    `json:"savingsRate"`
	Rates             []RateInfoResponse `json:"rates,omitempty"`
}

// ToDashboardSummaryResponse builds the dashboard header from one monthly
// summary plus the rates used to normalize it.
func ToDashboardSummaryResponse(summary finance.MonthlySummary, reportingCurrency string, rates []RateInfoResponse) *DashboardSummaryResponse {
	return &DashboardSummaryResponse{
		Period:            summary.Bucket.Label,
		ReportingCurrency: reportingCurrency,
		TotalIncome:       summary.TotalIncome,
		TotalExpense:      summary.TotalExpense,
		Savings:           summary.Savings,
		SavingsRate:       summary.SavingsRate,
		Rates:             rates,
	}
}
