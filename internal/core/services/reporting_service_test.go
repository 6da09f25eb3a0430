package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/finance"
	portssvc "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockSalaryRepo     *MockSalaryRepository
	mockIncomeRepo     *MockIncomeRepository
	mockExpenseRepo    *MockExpenseRepository
	mockInvestmentRepo *MockInvestmentRepository
	mockBalanceRepo    *MockBalanceRepository
	mockQuotes         *MockQuoteProvider
	service            portssvc.ReportingSvcFacade
	userID             string
	anchor             time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockSalaryRepo = new(MockSalaryRepository)
	suite.mockIncomeRepo = new(MockIncomeRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockInvestmentRepo = new(MockInvestmentRepository)
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.mockQuotes = new(MockQuoteProvider)
	suite.service = services.NewReportingService(
		suite.mockSalaryRepo,
		suite.mockIncomeRepo,
		suite.mockExpenseRepo,
		suite.mockInvestmentRepo,
		suite.mockBalanceRepo,
		suite.mockQuotes,
	)
	suite.userID = uuid.NewString()
	suite.anchor = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) TestSummary_NormalizesUSDWithFallbackRate() {
	ctx := context.Background()
	fallback := decimal.NewFromInt(1185)
	incomes := []domain.IncomeRecord{
		{IncomeID: uuid.NewString(), Amount: decimal.NewFromInt(100), CurrencyCode: "USD", Date: suite.anchor},
	}
	expenses := []domain.ExpenseRecord{
		{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(50000), CurrencyCode: "ARS", Date: suite.anchor},
	}

	suite.mockSalaryRepo.On("FindActiveSalary", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockIncomeRepo.On("FindIncomes", ctx, suite.userID).Return(incomes, nil).Once()
	suite.mockExpenseRepo.On("FindExpenses", ctx, suite.userID).Return(expenses, nil).Once()
	suite.mockQuotes.On("GetUSDARSRate", ctx).Return(fallback, false).Once()

	summary, err := suite.service.Summary(ctx, suite.userID, suite.anchor)

	suite.Require().NoError(err)
	suite.Equal("ARS", summary.ReportingCurrency)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(118500)), "got %s", summary.TotalIncome)
	suite.True(summary.TotalExpense.Equal(decimal.NewFromInt(50000)))
	suite.True(summary.Savings.Equal(decimal.NewFromInt(68500)))
	suite.Require().Len(summary.Rates, 1)
	suite.Equal("USD", summary.Rates[0].Currency)
	suite.Equal(string(finance.RateSourceFallback), summary.Rates[0].Source)
}

func (suite *ReportingServiceTestSuite) TestSummary_LiveRateTagged() {
	ctx := context.Background()

	suite.mockSalaryRepo.On("FindActiveSalary", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockIncomeRepo.On("FindIncomes", ctx, suite.userID).Return([]domain.IncomeRecord{}, nil).Once()
	suite.mockExpenseRepo.On("FindExpenses", ctx, suite.userID).Return([]domain.ExpenseRecord{}, nil).Once()
	suite.mockQuotes.On("GetUSDARSRate", ctx).Return(decimal.NewFromFloat(1190.5), true).Once()

	summary, err := suite.service.Summary(ctx, suite.userID, suite.anchor)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Rates, 1)
	suite.Equal(string(finance.RateSourceLive), summary.Rates[0].Source)
	suite.True(summary.TotalIncome.IsZero())
	suite.True(summary.SavingsRate.IsZero())
}

func (suite *ReportingServiceTestSuite) TestSummary_SalaryCountsTowardAnchorMonth() {
	ctx := context.Background()
	salary := &domain.SalaryRecord{
		SalaryID:     uuid.NewString(),
		Amount:       decimal.NewFromInt(1000000),
		CurrencyCode: "ARS",
		Active:       true,
	}

	suite.mockSalaryRepo.On("FindActiveSalary", ctx, suite.userID).Return(salary, nil).Once()
	suite.mockIncomeRepo.On("FindIncomes", ctx, suite.userID).Return([]domain.IncomeRecord{}, nil).Once()
	suite.mockExpenseRepo.On("FindExpenses", ctx, suite.userID).Return([]domain.ExpenseRecord{}, nil).Once()
	suite.mockQuotes.On("GetUSDARSRate", ctx).Return(decimal.NewFromInt(1185), false).Once()

	summary, err := suite.service.Summary(ctx, suite.userID, suite.anchor)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(1000000)))
	suite.True(summary.SavingsRate.Equal(decimal.NewFromInt(100)))
}

func (suite *ReportingServiceTestSuite) TestMonthlyEvolution_DefaultLookback() {
	ctx := context.Background()

	suite.mockSalaryRepo.On("FindActiveSalary", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockIncomeRepo.On("FindIncomes", ctx, suite.userID).Return([]domain.IncomeRecord{}, nil).Once()
	suite.mockExpenseRepo.On("FindExpenses", ctx, suite.userID).Return([]domain.ExpenseRecord{}, nil).Once()
	suite.mockQuotes.On("GetUSDARSRate", ctx).Return(decimal.NewFromInt(1185), false).Once()

	summaries, err := suite.service.MonthlyEvolution(ctx, suite.userID, 0, suite.anchor)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 6)
	// Oldest first, ending at the anchor month.
	suite.Equal(time.October, summaries[0].Bucket.Month)
	suite.Equal(2025, summaries[0].Bucket.Year)
	suite.Equal(time.March, summaries[5].Bucket.Month)
	suite.Equal(2026, summaries[5].Bucket.Year)
}

func (suite *ReportingServiceTestSuite) TestConsolidatedBalances_RevaluesUSDRows() {
	ctx := context.Background()
	rate := decimal.NewFromInt(1200)
	balances := []domain.ConsolidatedBalance{
		{CurrencyCode: "USD", AssetType: domain.BalanceCurrency, Quantity: decimal.NewFromInt(10), UnitPriceARS: decimal.NewFromInt(1000), ValueARS: decimal.NewFromInt(10000)},
		{CurrencyCode: "ARS", AssetType: domain.BalanceCash, Quantity: decimal.NewFromInt(5000), UnitPriceARS: decimal.NewFromInt(1), ValueARS: decimal.NewFromInt(5000)},
	}

	suite.mockBalanceRepo.On("FindConsolidatedBalances", ctx, suite.userID).Return(balances, nil).Once()
	suite.mockQuotes.On("GetUSDARSRate", ctx).Return(rate, true).Once()

	got, err := suite.service.ConsolidatedBalances(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].UnitPriceARS.Equal(rate))
	suite.True(got[0].ValueARS.Equal(decimal.NewFromInt(12000)))
	suite.True(got[1].ValueARS.Equal(decimal.NewFromInt(5000)))
}

func (suite *ReportingServiceTestSuite) TestConsolidatedBalances_ReordersAfterRevaluation() {
	ctx := context.Background()
	rate := decimal.NewFromInt(1200)
	// Rows arrive in stored-value order: foreign-currency positions carry a
	// zero stored value, so they sort last until revalued.
	balances := []domain.ConsolidatedBalance{
		{CurrencyCode: "ARS", AssetType: domain.BalanceCash, Quantity: decimal.NewFromInt(5000), UnitPriceARS: decimal.NewFromInt(1), ValueARS: decimal.NewFromInt(5000)},
		{CurrencyCode: "USD", AssetType: domain.BalanceCurrency, Quantity: decimal.NewFromInt(100), UnitPriceARS: decimal.Zero, ValueARS: decimal.Zero},
	}

	suite.mockBalanceRepo.On("FindConsolidatedBalances", ctx, suite.userID).Return(balances, nil).Once()
	suite.mockQuotes.On("GetUSDARSRate", ctx).Return(rate, true).Once()

	got, err := suite.service.ConsolidatedBalances(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("USD", got[0].CurrencyCode)
	suite.True(got[0].ValueARS.Equal(decimal.NewFromInt(120000)))
	suite.Equal("ARS", got[1].CurrencyCode)
	suite.True(got[1].ValueARS.Equal(decimal.NewFromInt(5000)))
}

func (suite *ReportingServiceTestSuite) TestPortfolio_UsesLivePrices() {
	ctx := context.Background()
	qty := decimal.NewFromInt(2)
	purchase := decimal.NewFromInt(100)
	investments := []domain.Investment{
		{
			InvestmentID:  uuid.NewString(),
			Ticker:        "AAPL",
			Mode:          domain.ByQuantity,
			Quantity:      &qty,
			PurchasePrice: &purchase,
			Active:        true,
		},
	}

	suite.mockInvestmentRepo.On("FindActiveInvestments", ctx, suite.userID).Return(investments, nil).Once()
	suite.mockQuotes.On("GetSpotPrices", ctx, []string{"AAPL"}).Return(map[string]domain.Quote{
		"AAPL": {Ticker: "AAPL", Price: decimal.NewFromInt(150), Source: domain.QuoteSourceStatic},
	}).Once()

	portfolio, err := suite.service.Portfolio(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(portfolio.TotalCostBasis.Equal(decimal.NewFromInt(200)))
	suite.True(portfolio.TotalValue.Equal(decimal.NewFromInt(300)))
	suite.True(portfolio.TotalGainLoss.Equal(decimal.NewFromInt(100)))
	suite.mockQuotes.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCategoryBreakdown_PropagatesRepoError() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("FindExpenses", ctx, suite.userID).Return(nil, context.DeadlineExceeded).Once()

	totals, err := suite.service.CategoryBreakdown(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(totals)
	suite.mockQuotes.AssertNotCalled(suite.T(), "GetUSDARSRate", mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
