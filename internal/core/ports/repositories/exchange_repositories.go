package repositories

import (
	"context"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
)

// ExchangeReader defines read operations for currency exchanges.
type ExchangeReader interface {
	// FindExchangeByID retrieves one exchange record.
	FindExchangeByID(ctx context.Context, userID, exchangeID string) (*domain.CurrencyExchange, error)

	// FindExchanges retrieves the user's exchanges, newest first.
	FindExchanges(ctx context.Context, userID string) ([]domain.CurrencyExchange, error)
}

// ExchangeWriter defines write operations for currency exchanges.
type ExchangeWriter interface {
	// SaveExchange persists a new exchange record.
	SaveExchange(ctx context.Context, exchange domain.CurrencyExchange) error
}

// ExchangeRepositoryFacade combines all exchange-related repository interfaces.
type ExchangeRepositoryFacade interface {
	ExchangeReader
	ExchangeWriter
}
