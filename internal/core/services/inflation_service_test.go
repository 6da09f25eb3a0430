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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InflationServiceTestSuite struct {
	suite.Suite
	mockInflationRepo *MockInflationRepository
	service           portssvc.InflationSvcFacade
	userID            string
}

func (suite *InflationServiceTestSuite) SetupTest() {
	suite.mockInflationRepo = new(MockInflationRepository)
	suite.service = services.NewInflationService(suite.mockInflationRepo)
	suite.userID = uuid.NewString()
}

func (suite *InflationServiceTestSuite) TestCreateEntry() {
	ctx := context.Background()
	req := dto.CreateInflationEntryRequest{
		Year:     2026,
		Month:    3,
		Category: "Comida",
		Percent:  decimal.NewFromFloat(4.2),
	}

	suite.mockInflationRepo.On("SaveInflationEntry", ctx, mock.MatchedBy(func(e domain.InflationEntry) bool {
		return e.Year == 2026 && e.Month == 3 && e.Category == "Comida" && e.UserID == suite.userID
	})).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(entry.EntryID)
	suite.mockInflationRepo.AssertExpectations(suite.T())
}

func (suite *InflationServiceTestSuite) TestCreateEntry_DuplicatePeriodCategory() {
	ctx := context.Background()
	req := dto.CreateInflationEntryRequest{
		Year:     2026,
		Month:    3,
		Category: "Comida",
		Percent:  decimal.NewFromFloat(4.2),
	}

	suite.mockInflationRepo.On("SaveInflationEntry", ctx, mock.AnythingOfType("domain.InflationEntry")).Return(apperrors.ErrDuplicate).Once()

	entry, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(entry)
}

func (suite *InflationServiceTestSuite) TestUpdateEntry_NothingToUpdate() {
	ctx := context.Background()

	entry, err := suite.service.UpdateEntry(ctx, suite.userID, uuid.NewString(), dto.UpdateInflationEntryRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
}

func (suite *InflationServiceTestSuite) TestUpdateEntry_ChangesPercent() {
	ctx := context.Background()
	entryID := uuid.NewString()
	existing := &domain.InflationEntry{
		EntryID:  entryID,
		UserID:   suite.userID,
		Year:     2026,
		Month:    2,
		Category: "Transporte",
		Percent:  decimal.NewFromFloat(3.1),
	}
	newPercent := decimal.NewFromFloat(3.8)

	suite.mockInflationRepo.On("FindInflationEntryByID", ctx, suite.userID, entryID).Return(existing, nil).Once()
	suite.mockInflationRepo.On("UpdateInflationEntry", ctx, mock.MatchedBy(func(e domain.InflationEntry) bool {
		return e.EntryID == entryID && e.Percent.Equal(newPercent)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEntry(ctx, suite.userID, entryID, dto.UpdateInflationEntryRequest{Percent: &newPercent})

	suite.Require().NoError(err)
	suite.True(updated.Percent.Equal(newPercent))
	suite.mockInflationRepo.AssertExpectations(suite.T())
}

func (suite *InflationServiceTestSuite) TestPeriodTotals_GroupsByMonth() {
	ctx := context.Background()
	// Repository order: year DESC, month DESC, category ASC.
	entries := []domain.InflationEntry{
		{Year: 2026, Month: 3, Category: "Comida", Percent: decimal.NewFromFloat(4.0)},
		{Year: 2026, Month: 3, Category: "Transporte", Percent: decimal.NewFromFloat(2.5)},
		{Year: 2026, Month: 2, Category: "Comida", Percent: decimal.NewFromFloat(3.0)},
	}

	suite.mockInflationRepo.On("FindInflationEntries", ctx, suite.userID).Return(entries, nil).Once()

	totals, err := suite.service.PeriodTotals(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(totals, 2)
	suite.Equal(2026, totals[0].Year)
	suite.Equal(3, totals[0].Month)
	suite.True(totals[0].TotalPercent.Equal(decimal.NewFromFloat(6.5)))
	suite.Equal(2, totals[0].EntryCount)
	suite.Equal(2, totals[1].Month)
	suite.True(totals[1].TotalPercent.Equal(decimal.NewFromFloat(3.0)))
	suite.Equal(1, totals[1].EntryCount)
}

func (suite *InflationServiceTestSuite) TestPeriodTotals_Empty() {
	ctx := context.Background()

	suite.mockInflationRepo.On("FindInflationEntries", ctx, suite.userID).Return([]domain.InflationEntry{}, nil).Once()

	totals, err := suite.service.PeriodTotals(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(totals)
}

func TestInflationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InflationServiceTestSuite))
}
