package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	portssvc "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/platform/config"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg          *config.Config
	mockUserRepo *MockUserRepository
	userService  portssvc.UserSvcFacade
	service      portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-at-least-32-chars-long",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "bolsillo-digital-pro-test",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	suite.mockUserRepo = new(MockUserRepository)
	suite.userService = services.NewUserService(suite.mockUserRepo)
	suite.service = services.NewTokenService(suite.cfg, suite.userService)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RoundTrips() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(suite.cfg.JWTExpiryDuration), expiresAt, time.Minute)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_StoresOnlyHash() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}
	var storedHash string

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil).Once()

	rawToken, expiresAt, err := suite.service.GenerateRefreshToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(rawToken)
	suite.NotEqual(rawToken, storedHash)
	suite.True(utils.CompareRefreshTokenHash(rawToken, storedHash))
	suite.WithinDuration(time.Now().Add(suite.cfg.RefreshTokenExpiryDuration), expiresAt, time.Minute)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Valid() {
	ctx := context.Background()
	userID := uuid.NewString()
	raw := "raw-refresh-token-value"
	expiry := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:             userID,
		RefreshTokenHash:   utils.HashRefreshToken(raw),
		RefreshTokenExpiry: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, raw)

	suite.Require().NoError(err)
	suite.Equal(userID, user.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	userID := uuid.NewString()
	raw := "raw-refresh-token-value"
	expiry := time.Now().Add(-time.Minute)
	stored := &domain.User{
		UserID:             userID,
		RefreshTokenHash:   utils.HashRefreshToken(raw),
		RefreshTokenExpiry: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, raw)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
	suite.Nil(user)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Mismatch() {
	ctx := context.Background()
	userID := uuid.NewString()
	expiry := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:             userID,
		RefreshTokenHash:   utils.HashRefreshToken("the-real-token"),
		RefreshTokenExpiry: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, "a-forged-token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoTokenStored() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
