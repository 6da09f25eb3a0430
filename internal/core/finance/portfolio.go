package finance

import (
	"errors"
	"fmt"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidHolding indicates a holding whose populated fields do not match
// its mode. This is a contract violation on stored data, not a recoverable
// valuation state.
var ErrInvalidHolding = errors.New("invalid holding")

// PriceKind tags the provenance of the effective price used for a valuation.
type PriceKind string

const (
	// PriceManual is a user-entered current price; it always wins over quotes.
	PriceManual PriceKind = "manual"
	// PriceQuoted came from the market-data source.
	PriceQuoted PriceKind = "quoted"
	// PriceUnknown means no price is available; the holding values to zero.
	PriceUnknown PriceKind = "unknown"
)

// Price is the effective price of a holding, resolved once per valuation
// instead of re-derived at every display site.
type Price struct {
	Kind  PriceKind       `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// Valuation is the computed state of one holding.
type Valuation struct {
	InvestmentID string          `json:"investmentID"`
	Ticker       string          `json:"ticker"`
	Price        Price           `json:"price"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	CostBasis    decimal.Decimal `json:"costBasis"`
	GainLoss     decimal.Decimal `json:"gainLoss"`
	// NoPriceAvailable means the holding displays as unknown and values to
	// zero; it is not an error.
	NoPriceAvailable bool `json:"noPriceAvailable"`
}

// PortfolioSummary aggregates all active holdings.
type PortfolioSummary struct {
	TotalValue         decimal.Decimal `json:"totalValue"`
	TotalCostBasis     decimal.Decimal `json:"totalCostBasis"`
	TotalGainLoss      decimal.Decimal `json:"totalGainLoss"`
	TotalReturnPercent decimal.Decimal `json:"totalReturnPercent"` // 0 on zero cost basis
	Holdings           []Valuation     `json:"holdings"`
}

// ResolvePrice picks the effective price for a holding: a manually entered
// current price overrides a live quote; with neither, the price is unknown.
func ResolvePrice(h domain.Investment, livePrice *decimal.Decimal) Price {
	if h.CurrentPrice != nil && h.CurrentPrice.IsPositive() {
		return Price{Kind: PriceManual, Value: *h.CurrentPrice}
	}
	if livePrice != nil && livePrice.IsPositive() {
		return Price{Kind: PriceQuoted, Value: *livePrice}
	}
	return Price{Kind: PriceUnknown}
}

// ValueHolding computes current value, cost basis and unrealized gain/loss
// for one holding. livePrice may be nil when no quote could be fetched.
func ValueHolding(h domain.Investment, livePrice *decimal.Decimal) (Valuation, error) {
	v := Valuation{
		InvestmentID: h.InvestmentID,
		Ticker:       h.Ticker,
		Price:        ResolvePrice(h, livePrice),
	}

	purchase := decimal.Zero
	if h.PurchasePrice != nil {
		purchase = *h.PurchasePrice
	}

	switch h.Mode {
	case domain.ByQuantity:
		if h.Quantity == nil {
			return Valuation{}, fmt.Errorf("%w: mode %s without quantity (id=%s)", ErrInvalidHolding, h.Mode, h.InvestmentID)
		}
		v.CostBasis = h.Quantity.Mul(purchase)
		if v.Price.Kind == PriceUnknown {
			v.NoPriceAvailable = true
			return v, nil
		}
		v.CurrentValue = h.Quantity.Mul(v.Price.Value)
		v.GainLoss = v.CurrentValue.Sub(v.CostBasis)

	case domain.ByAmount:
		if h.InvestedAmount == nil {
			return Valuation{}, fmt.Errorf("%w: mode %s without invested amount (id=%s)", ErrInvalidHolding, h.Mode, h.InvestmentID)
		}
		v.CostBasis = *h.InvestedAmount
		if v.Price.Kind == PriceUnknown {
			v.NoPriceAvailable = true
			return v, nil
		}
		// A zero purchase price would make the percent change undefined;
		// the holding reports no gain instead of dividing by zero.
		if !purchase.IsPositive() {
			return v, nil
		}
		percentChange := v.Price.Value.Sub(purchase).Div(purchase)
		v.CurrentValue = h.InvestedAmount.Mul(decimal.NewFromInt(1).Add(percentChange))
		v.GainLoss = h.InvestedAmount.Mul(percentChange)

	default:
		return Valuation{}, fmt.Errorf("%w: unknown mode %q (id=%s)", ErrInvalidHolding, h.Mode, h.InvestmentID)
	}
	return v, nil
}

// ValuePortfolio values every active holding and totals the results. Inactive
// (soft-deleted) holdings are skipped. livePrices maps ticker to quote and may
// be missing entries for tickers that failed to price.
func ValuePortfolio(holdings []domain.Investment, livePrices map[string]decimal.Decimal) (PortfolioSummary, error) {
	summary := PortfolioSummary{Holdings: make([]Valuation, 0, len(holdings))}
	for _, h := range holdings {
		if !h.Active {
			continue
		}
		var live *decimal.Decimal
		if p, ok := livePrices[h.Ticker]; ok {
			live = &p
		}
		v, err := ValueHolding(h, live)
		if err != nil {
			return PortfolioSummary{}, err
		}
		summary.Holdings = append(summary.Holdings, v)
		summary.TotalValue = summary.TotalValue.Add(v.CurrentValue)
		summary.TotalCostBasis = summary.TotalCostBasis.Add(v.CostBasis)
		summary.TotalGainLoss = summary.TotalGainLoss.Add(v.GainLoss)
	}
	if summary.TotalCostBasis.IsPositive() {
		summary.TotalReturnPercent = summary.TotalGainLoss.Div(summary.TotalCostBasis).Mul(oneHundred)
	}
	return summary, nil
}
