package services

import (
	"context"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/finance"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
)

// ReportingSvcFacade computes the dashboards. It refreshes the rate table
// before delegating to the finance engine, so results only depend on the
// fetched records, the rates, and the explicit anchor time.
type ReportingSvcFacade interface {
	// Summary is the dashboard header: the anchor month's income, expense,
	// savings and rate, normalized to the reporting currency.
	Summary(ctx context.Context, userID string, anchor time.Time) (*dto.DashboardSummaryResponse, error)

	// MonthlyEvolution aggregates income/expense/savings per month over the
	// lookback window ending at anchor's month.
	MonthlyEvolution(ctx context.Context, userID string, lookbackMonths int, anchor time.Time) ([]finance.MonthlySummary, error)

	// CategoryBreakdown returns normalized expense totals per category,
	// largest first.
	CategoryBreakdown(ctx context.Context, userID string) ([]finance.CategoryTotal, error)

	// PersonalInflation derives month-over-month expense change, most recent
	// period first.
	PersonalInflation(ctx context.Context, userID string) ([]finance.InflationPoint, error)

	// Portfolio values the active holdings with live quotes, manual prices
	// taking precedence.
	Portfolio(ctx context.Context, userID string) (*finance.PortfolioSummary, error)

	// ConsolidatedBalances returns the user's positions valued in the
	// reporting currency, largest first, with USD rows revalued at the
	// current USD rate.
	ConsolidatedBalances(ctx context.Context, userID string) ([]domain.ConsolidatedBalance, error)
}
