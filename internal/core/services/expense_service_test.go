package services_test

import (
	"context"
	"testing"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	portssvc "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockIncomeRepo  *MockIncomeRepository
	service         portssvc.ExpenseSvcFacade
	userID          string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockIncomeRepo = new(MockIncomeRepository)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockIncomeRepo)
	suite.userID = uuid.NewString()
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func (suite *ExpenseServiceTestSuite) TestCreateExpense_WithCashback() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description:     "Supermercado",
		Amount:          decimal.NewFromInt(10000),
		CurrencyCode:    "ARS",
		Category:        "Comida",
		Date:            "2026-03-15",
		CashbackPercent: decimalPtr(decimal.NewFromInt(10)),
	}

	suite.mockExpenseRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockExpenseRepo.On("SaveExpenseTx", ctx, mock.Anything, mock.MatchedBy(func(e domain.ExpenseRecord) bool {
		return e.Description == "Supermercado" && e.CashbackPercent.Equal(decimal.NewFromInt(10))
	})).Return(nil).Once()
	suite.mockIncomeRepo.On("SaveIncomeTx", ctx, mock.Anything, mock.MatchedBy(func(i domain.IncomeRecord) bool {
		return i.Description == "Cashback de Supermercado" &&
			i.Category == domain.CashbackCategory &&
			i.CurrencyCode == "ARS" &&
			i.Amount.Equal(decimal.NewFromInt(1000)) &&
			i.Date.Format(dto.DateLayout) == "2026-03-15"
	})).Return(nil).Once()
	suite.mockExpenseRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockExpenseRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	expense, cashback, err := suite.service.CreateExpense(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Require().NotNil(cashback)
	suite.Equal(expense.Date, cashback.Date)
	suite.Equal(suite.userID, cashback.UserID)

	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockIncomeRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_CashbackCurrencyOverride() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description:      "Vuelo",
		Amount:           decimal.NewFromInt(500),
		CurrencyCode:     "USD",
		Date:             "2026-01-10",
		CashbackPercent:  decimalPtr(decimal.NewFromInt(5)),
		CashbackCurrency: "ARS",
	}

	suite.mockExpenseRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockExpenseRepo.On("SaveExpenseTx", ctx, mock.Anything, mock.AnythingOfType("domain.ExpenseRecord")).Return(nil).Once()
	suite.mockIncomeRepo.On("SaveIncomeTx", ctx, mock.Anything, mock.MatchedBy(func(i domain.IncomeRecord) bool {
		return i.CurrencyCode == "ARS" && i.Amount.Equal(decimal.NewFromInt(25))
	})).Return(nil).Once()
	suite.mockExpenseRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockExpenseRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	_, cashback, err := suite.service.CreateExpense(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(cashback)
	suite.Equal("ARS", cashback.CurrencyCode)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NoCashback() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description:  "Alquiler",
		Amount:       decimal.NewFromInt(300000),
		CurrencyCode: "ARS",
		Date:         "2026-03-01",
	}

	suite.mockExpenseRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockExpenseRepo.On("SaveExpenseTx", ctx, mock.Anything, mock.AnythingOfType("domain.ExpenseRecord")).Return(nil).Once()
	suite.mockExpenseRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockExpenseRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	expense, cashback, err := suite.service.CreateExpense(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(expense)
	suite.Nil(cashback)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "SaveIncomeTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_CashbackSaveFailureRollsBack() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description:     "Nafta",
		Amount:          decimal.NewFromInt(20000),
		CurrencyCode:    "ARS",
		Date:            "2026-03-20",
		CashbackPercent: decimalPtr(decimal.NewFromInt(3)),
	}

	suite.mockExpenseRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockExpenseRepo.On("SaveExpenseTx", ctx, mock.Anything, mock.AnythingOfType("domain.ExpenseRecord")).Return(nil).Once()
	suite.mockIncomeRepo.On("SaveIncomeTx", ctx, mock.Anything, mock.AnythingOfType("domain.IncomeRecord")).Return(assert.AnError).Once()
	suite.mockExpenseRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	expense, cashback, err := suite.service.CreateExpense(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.Nil(cashback)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_InvalidAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description:  "Nada",
		Amount:       decimal.Zero,
		CurrencyCode: "ARS",
		Date:         "2026-03-01",
	}

	_, _, err := suite.service.CreateExpense(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_CashbackPercentOutOfRange() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description:     "Dudoso",
		Amount:          decimal.NewFromInt(100),
		CurrencyCode:    "ARS",
		Date:            "2026-03-01",
		CashbackPercent: decimalPtr(decimal.NewFromInt(150)),
	}

	_, _, err := suite.service.CreateExpense(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockExpenseRepo.On("DeleteExpense", ctx, suite.userID, expenseID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, suite.userID, expenseID)

	suite.Require().NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
