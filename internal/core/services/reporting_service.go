package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/finance"
	portsrepo "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/repositories"
	portssvc "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/middleware"
)

// defaultLookbackMonths is the window for the monthly evolution dashboard.
const defaultLookbackMonths = 6

// ReportingService computes the dashboards on top of the finance engine. It
// refreshes the rate table before each computation so every figure in one
// response is derived from the same rates.
type ReportingService struct {
	salaryRepo     portsrepo.SalaryReader
	incomeRepo     portsrepo.IncomeReader
	expenseRepo    portsrepo.ExpenseReader
	investmentRepo portsrepo.InvestmentReader
	balanceRepo    portsrepo.BalanceReader
	quotes         portssvc.QuoteProvider
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	salaryRepo portsrepo.SalaryReader,
	incomeRepo portsrepo.IncomeReader,
	expenseRepo portsrepo.ExpenseReader,
	investmentRepo portsrepo.InvestmentReader,
	balanceRepo portsrepo.BalanceReader,
	quotes portssvc.QuoteProvider,
) *ReportingService {
	return &ReportingService{
		salaryRepo:     salaryRepo,
		incomeRepo:     incomeRepo,
		expenseRepo:    expenseRepo,
		investmentRepo: investmentRepo,
		balanceRepo:    balanceRepo,
		quotes:         quotes,
	}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// rateTable builds a fresh rate table into the reporting currency. The USD
// rate comes from the live quote when available; otherwise the hardcoded
// fallback is registered so summaries degrade instead of failing.
func (s *ReportingService) rateTable(ctx context.Context) *finance.RateTable {
	table := finance.NewRateTable(domain.ReportingCurrency)
	rate, live := s.quotes.GetUSDARSRate(ctx)
	if live {
		table.SetRate("USD", rate, finance.RateSourceLive)
	} else {
		table.SetFallback("USD", rate)
	}
	return table
}

func rateInfos(table *finance.RateTable) []dto.RateInfoResponse {
	usd, ok := table.Lookup("USD")
	if !ok {
		return nil
	}
	return []dto.RateInfoResponse{{
		Currency: "USD",
		Value:    usd.Value,
		Source:   string(usd.Source),
	}}
}

// loadLedger fetches the records every aggregation needs. A missing salary is
// not an error; it just means no recurring income.
func (s *ReportingService) loadLedger(ctx context.Context, userID string) (*domain.SalaryRecord, []domain.IncomeRecord, []domain.ExpenseRecord, error) {
	salary, err := s.salaryRepo.FindActiveSalary(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, nil, fmt.Errorf("failed to load salary for report: %w", err)
	}
	incomes, err := s.incomeRepo.FindIncomes(ctx, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load incomes for report: %w", err)
	}
	expenses, err := s.expenseRepo.FindExpenses(ctx, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load expenses for report: %w", err)
	}
	return salary, incomes, expenses, nil
}

// Summary is the dashboard header: the anchor month's totals normalized to
// the reporting currency, plus the rates they were computed with.
func (s *ReportingService) Summary(ctx context.Context, userID string, anchor time.Time) (*dto.DashboardSummaryResponse, error) {
	salary, incomes, expenses, err := s.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}
	table := s.rateTable(ctx)

	buckets := finance.BuildBuckets(1, anchor)
	summaries, err := finance.AggregateMonthly(buckets, salary, incomes, expenses, table)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate summary: %w", err)
	}
	if len(summaries) == 0 {
		return nil, fmt.Errorf("%w: no summary produced for anchor %s", apperrors.ErrValidation, anchor.Format(dto.DateLayout))
	}

	return dto.ToDashboardSummaryResponse(summaries[0], domain.ReportingCurrency, rateInfos(table)), nil
}

// MonthlyEvolution aggregates income/expense/savings per month over the
// lookback window ending at anchor's month.
func (s *ReportingService) MonthlyEvolution(ctx context.Context, userID string, lookbackMonths int, anchor time.Time) ([]finance.MonthlySummary, error) {
	if lookbackMonths <= 0 {
		lookbackMonths = defaultLookbackMonths
	}
	salary, incomes, expenses, err := s.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}
	table := s.rateTable(ctx)

	buckets := finance.BuildBuckets(lookbackMonths, anchor)
	summaries, err := finance.AggregateMonthly(buckets, salary, incomes, expenses, table)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly evolution: %w", err)
	}
	return summaries, nil
}

// CategoryBreakdown returns normalized expense totals per category, largest first.
func (s *ReportingService) CategoryBreakdown(ctx context.Context, userID string) ([]finance.CategoryTotal, error) {
	expenses, err := s.expenseRepo.FindExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for breakdown: %w", err)
	}
	table := s.rateTable(ctx)

	totals, err := finance.ExpensesByCategory(expenses, table)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}
	return totals, nil
}

// PersonalInflation derives month-over-month expense change, most recent
// period first.
func (s *ReportingService) PersonalInflation(ctx context.Context, userID string) ([]finance.InflationPoint, error) {
	expenses, err := s.expenseRepo.FindExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for inflation: %w", err)
	}
	table := s.rateTable(ctx)

	points, err := finance.PersonalInflation(expenses, table)
	if err != nil {
		return nil, fmt.Errorf("failed to compute personal inflation: %w", err)
	}
	return points, nil
}

// Portfolio values the active holdings with live quotes; manual prices take
// precedence inside the engine.
func (s *ReportingService) Portfolio(ctx context.Context, userID string) (*finance.PortfolioSummary, error) {
	investments, err := s.investmentRepo.FindActiveInvestments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments for portfolio: %w", err)
	}

	livePrices := currentPricesForPortfolio(ctx, s.quotes, investments)
	summary, err := finance.ValuePortfolio(investments, livePrices)
	if err != nil {
		return nil, fmt.Errorf("failed to value portfolio: %w", err)
	}
	return &summary, nil
}

// ConsolidatedBalances returns the user's positions valued in the reporting
// currency, largest first. USD cash rows are revalued at the current rate so
// the view stays consistent with the summary header.
func (s *ReportingService) ConsolidatedBalances(ctx context.Context, userID string) ([]domain.ConsolidatedBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balances, err := s.balanceRepo.FindConsolidatedBalances(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load consolidated balances: %w", err)
	}

	table := s.rateTable(ctx)
	usd, ok := table.Lookup("USD")
	if !ok {
		logger.Warn("no USD rate available, returning stored balance values")
		return balances, nil
	}

	for i := range balances {
		if balances[i].CurrencyCode != "USD" {
			continue
		}
		balances[i].UnitPriceARS = usd.Value
		balances[i].ValueARS = balances[i].Quantity.Mul(usd.Value).Round(2)
	}

	// The view sorts by stored value, which is zero for foreign-currency
	// rows, so the order only holds after revaluation.
	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].ValueARS.GreaterThan(balances[j].ValueARS)
	})
	return balances, nil
}
