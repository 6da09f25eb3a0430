package repositories

import (
	"context"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvestmentReader defines read operations for investment holdings.
type InvestmentReader interface {
	// FindInvestmentByID retrieves one holding, active or not.
	FindInvestmentByID(ctx context.Context, userID, investmentID string) (*domain.Investment, error)

	// FindActiveInvestments retrieves the user's active holdings, newest
	// purchase first. Soft-deleted holdings are never returned.
	FindActiveInvestments(ctx context.Context, userID string) ([]domain.Investment, error)
}

// InvestmentWriter defines write operations for investment holdings.
type InvestmentWriter interface {
	// SaveInvestment persists a new holding.
	SaveInvestment(ctx context.Context, investment domain.Investment) error

	// UpdateInvestment updates the holding's current price and/or notes.
	UpdateInvestment(ctx context.Context, userID, investmentID string, currentPrice *decimal.Decimal, notes *string, updatedBy string) (*domain.Investment, error)

	// DeactivateInvestment soft-deletes a holding. The transition is one-way.
	DeactivateInvestment(ctx context.Context, userID, investmentID string, updatedBy string) error
}

// InvestmentRepositoryFacade combines all investment-related repository interfaces.
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}
