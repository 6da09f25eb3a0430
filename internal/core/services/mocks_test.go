package services_test

import (
	"context"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Shared repository and quote-provider mocks for the service test suites.
// Begin returns a nil pgx.Tx: the services only thread the handle through to
// the repository, so the mocks never need a real transaction.

// --- MockSalaryRepository ---

type MockSalaryRepository struct {
	mock.Mock
}

func (m *MockSalaryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockSalaryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSalaryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSalaryRepository) FindActiveSalary(ctx context.Context, userID string) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, userID)
	var salary *domain.SalaryRecord
	if args.Get(0) != nil {
		salary = args.Get(0).(*domain.SalaryRecord)
	}
	return salary, args.Error(1)
}

func (m *MockSalaryRepository) FindSalaryHistory(ctx context.Context, userID string) ([]domain.SalaryRecord, error) {
	args := m.Called(ctx, userID)
	var history []domain.SalaryRecord
	if args.Get(0) != nil {
		history = args.Get(0).([]domain.SalaryRecord)
	}
	return history, args.Error(1)
}

func (m *MockSalaryRepository) SaveSalary(ctx context.Context, tx pgx.Tx, salary domain.SalaryRecord) error {
	args := m.Called(ctx, tx, salary)
	return args.Error(0)
}

func (m *MockSalaryRepository) DeactivateSalaries(ctx context.Context, tx pgx.Tx, userID string, updatedBy string) error {
	args := m.Called(ctx, tx, userID, updatedBy)
	return args.Error(0)
}

// --- MockIncomeRepository ---

type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, userID, incomeID string) (*domain.IncomeRecord, error) {
	args := m.Called(ctx, userID, incomeID)
	var income *domain.IncomeRecord
	if args.Get(0) != nil {
		income = args.Get(0).(*domain.IncomeRecord)
	}
	return income, args.Error(1)
}

func (m *MockIncomeRepository) FindIncomes(ctx context.Context, userID string) ([]domain.IncomeRecord, error) {
	args := m.Called(ctx, userID)
	var incomes []domain.IncomeRecord
	if args.Get(0) != nil {
		incomes = args.Get(0).([]domain.IncomeRecord)
	}
	return incomes, args.Error(1)
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.IncomeRecord) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) SaveIncomeTx(ctx context.Context, tx pgx.Tx, income domain.IncomeRecord) error {
	args := m.Called(ctx, tx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	args := m.Called(ctx, userID, incomeID)
	return args.Error(0)
}

// --- MockExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockExpenseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockExpenseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.ExpenseRecord, error) {
	args := m.Called(ctx, userID, expenseID)
	var expense *domain.ExpenseRecord
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.ExpenseRecord)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) FindExpenses(ctx context.Context, userID string) ([]domain.ExpenseRecord, error) {
	args := m.Called(ctx, userID)
	var expenses []domain.ExpenseRecord
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.ExpenseRecord)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) SaveExpenseTx(ctx context.Context, tx pgx.Tx, expense domain.ExpenseRecord) error {
	args := m.Called(ctx, tx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}

// --- MockInvestmentRepository ---

type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, userID, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, userID, investmentID)
	var investment *domain.Investment
	if args.Get(0) != nil {
		investment = args.Get(0).(*domain.Investment)
	}
	return investment, args.Error(1)
}

func (m *MockInvestmentRepository) FindActiveInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	var investments []domain.Investment
	if args.Get(0) != nil {
		investments = args.Get(0).([]domain.Investment)
	}
	return investments, args.Error(1)
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) UpdateInvestment(ctx context.Context, userID, investmentID string, currentPrice *decimal.Decimal, notes *string, updatedBy string) (*domain.Investment, error) {
	args := m.Called(ctx, userID, investmentID, currentPrice, notes, updatedBy)
	var investment *domain.Investment
	if args.Get(0) != nil {
		investment = args.Get(0).(*domain.Investment)
	}
	return investment, args.Error(1)
}

func (m *MockInvestmentRepository) DeactivateInvestment(ctx context.Context, userID, investmentID string, updatedBy string) error {
	args := m.Called(ctx, userID, investmentID, updatedBy)
	return args.Error(0)
}

// --- MockInflationRepository ---

type MockInflationRepository struct {
	mock.Mock
}

func (m *MockInflationRepository) FindInflationEntryByID(ctx context.Context, userID, entryID string) (*domain.InflationEntry, error) {
	args := m.Called(ctx, userID, entryID)
	var entry *domain.InflationEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.InflationEntry)
	}
	return entry, args.Error(1)
}

func (m *MockInflationRepository) FindInflationEntries(ctx context.Context, userID string) ([]domain.InflationEntry, error) {
	args := m.Called(ctx, userID)
	var entries []domain.InflationEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.InflationEntry)
	}
	return entries, args.Error(1)
}

func (m *MockInflationRepository) SaveInflationEntry(ctx context.Context, entry domain.InflationEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockInflationRepository) UpdateInflationEntry(ctx context.Context, entry domain.InflationEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockInflationRepository) DeleteInflationEntry(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

// --- MockBalanceRepository ---

type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) FindConsolidatedBalances(ctx context.Context, userID string) ([]domain.ConsolidatedBalance, error) {
	args := m.Called(ctx, userID)
	var balances []domain.ConsolidatedBalance
	if args.Get(0) != nil {
		balances = args.Get(0).([]domain.ConsolidatedBalance)
	}
	return balances, args.Error(1)
}

// --- MockUserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- MockQuoteProvider ---

type MockQuoteProvider struct {
	mock.Mock
}

func (m *MockQuoteProvider) GetSpotPrice(ctx context.Context, ticker string) (*domain.Quote, error) {
	args := m.Called(ctx, ticker)
	var quote *domain.Quote
	if args.Get(0) != nil {
		quote = args.Get(0).(*domain.Quote)
	}
	return quote, args.Error(1)
}

func (m *MockQuoteProvider) GetSpotPrices(ctx context.Context, tickers []string) map[string]domain.Quote {
	args := m.Called(ctx, tickers)
	var quotes map[string]domain.Quote
	if args.Get(0) != nil {
		quotes = args.Get(0).(map[string]domain.Quote)
	}
	return quotes
}

func (m *MockQuoteProvider) GetUSDARSRate(ctx context.Context) (decimal.Decimal, bool) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Bool(1)
}
