// Package finance is the pure aggregation engine behind every report: it
// normalizes currency-tagged records into the reporting currency and derives
// monthly, portfolio and inflation metrics. It performs no I/O and holds no
// state; callers fetch records and rates first, then hand them in.
package finance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMissingRate indicates the rate table has no conversion (and no fallback)
// for a currency.
var ErrMissingRate = errors.New("missing exchange rate")

// RateSource says where a conversion rate came from. Fallback rates must stay
// distinguishable from live quotes for auditing.
type RateSource string

const (
	RateSourceLive     RateSource = "live"
	RateSourceFallback RateSource = "fallback"
)

// Rate is a conversion factor into the reporting currency, tagged with its
// provenance.
type Rate struct {
	Value  decimal.Decimal `json:"value"`
	Source RateSource      `json:"source"`
}

// RateTable maps currency codes to their rate against the reporting currency.
// Registered fallback constants are substituted when a live rate is absent,
// tagged RateSourceFallback, rather than failing the whole aggregation.
type RateTable struct {
	reporting string
	rates     map[string]Rate
	fallbacks map[string]decimal.Decimal
}

// NewRateTable creates an empty table for the given reporting currency.
func NewRateTable(reportingCurrency string) *RateTable {
	return &RateTable{
		reporting: reportingCurrency,
		rates:     make(map[string]Rate),
		fallbacks: make(map[string]decimal.Decimal),
	}
}

// Reporting returns the table's reporting currency code.
func (t *RateTable) Reporting() string {
	return t.reporting
}

// SetRate registers a conversion rate into the reporting currency.
func (t *RateTable) SetRate(currency string, value decimal.Decimal, source RateSource) {
	t.rates[currency] = Rate{Value: value, Source: source}
}

// SetFallback registers a constant used when no rate is present for currency.
func (t *RateTable) SetFallback(currency string, value decimal.Decimal) {
	t.fallbacks[currency] = value
}

// Lookup returns the rate that Convert would apply for currency.
func (t *RateTable) Lookup(currency string) (Rate, bool) {
	if currency == t.reporting {
		return Rate{Value: decimal.NewFromInt(1), Source: RateSourceLive}, true
	}
	if r, ok := t.rates[currency]; ok {
		return r, true
	}
	if fb, ok := t.fallbacks[currency]; ok {
		return Rate{Value: fb, Source: RateSourceFallback}, true
	}
	return Rate{}, false
}

// Convert normalizes amount from currency into the reporting currency. The
// applied Rate is returned so callers can audit fallback usage. Conversion in
// the reporting currency itself is the identity.
func (t *RateTable) Convert(amount decimal.Decimal, currency string) (decimal.Decimal, Rate, error) {
	rate, ok := t.Lookup(currency)
	if !ok {
		return decimal.Zero, Rate{}, fmt.Errorf("%w: %s to %s", ErrMissingRate, currency, t.reporting)
	}
	if currency == t.reporting {
		return amount, rate, nil
	}
	return amount.Mul(rate.Value), rate, nil
}
