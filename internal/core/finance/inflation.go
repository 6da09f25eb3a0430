package finance

import (
	"sort"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryChange compares one expense category across a month pair.
type CategoryChange struct {
	Category string          `json:"category"`
	Previous decimal.Decimal `json:"previous"`
	Current  decimal.Decimal `json:"current"`
	Percent  decimal.Decimal `json:"percent"`
	// NewCategory flags a category with no prior-month spend; the percent is
	// reported as 100 instead of an unbounded arithmetic result.
	NewCategory bool `json:"newCategory"`
}

// InflationPoint is the month-over-month change of total expenses for one
// calendar month against the month before it.
type InflationPoint struct {
	Year          int             `json:"year"`
	Month         time.Month      `json:"month"`
	PreviousTotal decimal.Decimal `json:"previousTotal"`
	CurrentTotal  decimal.Decimal `json:"currentTotal"`
	Percent       decimal.Decimal `json:"percent"`
	// NoBaseline flags a zero prior-month total; the percent is reported as 0
	// instead of infinity.
	NoBaseline bool             `json:"noBaseline"`
	ByCategory []CategoryChange `json:"byCategory"`
}

type monthKey struct {
	year  int
	month time.Month
}

func (k monthKey) before(o monthKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	return k.month < o.month
}

func (k monthKey) next() monthKey {
	if k.month == time.December {
		return monthKey{year: k.year + 1, month: time.January}
	}
	return monthKey{year: k.year, month: k.month + 1}
}

// PersonalInflation derives the user's own cost-of-living change from their
// recorded expenses: the percentage change of normalized month totals for
// every calendar month between the earliest and latest recorded expense.
// Fewer than two distinct expense months yields an empty result. The walk is
// chronological to keep the pairing correct; the output is reversed so the
// most recent period comes first for display.
func PersonalInflation(expenses []domain.ExpenseRecord, table *RateTable) ([]InflationPoint, error) {
	totals := make(map[monthKey]decimal.Decimal)
	byCategory := make(map[monthKey]map[string]decimal.Decimal)
	for _, e := range expenses {
		key := monthKey{year: e.Date.Year(), month: e.Date.Month()}
		normalized, _, err := table.Convert(e.Amount, e.CurrencyCode)
		if err != nil {
			return nil, err
		}
		totals[key] = totals[key].Add(normalized)

		category := e.Category
		if category == "" {
			category = domain.UncategorizedLabel
		}
		if byCategory[key] == nil {
			byCategory[key] = make(map[string]decimal.Decimal)
		}
		byCategory[key][category] = byCategory[key][category].Add(normalized)
	}
	if len(totals) < 2 {
		return nil, nil
	}

	first, last := monthRange(totals)
	points := make([]InflationPoint, 0)
	for key := first.next(); !last.before(key); key = key.next() {
		priorKey := previousMonth(key)
		point := InflationPoint{
			Year:          key.year,
			Month:         key.month,
			PreviousTotal: totals[priorKey],
			CurrentTotal:  totals[key],
			ByCategory:    categoryChanges(byCategory[priorKey], byCategory[key]),
		}
		if point.PreviousTotal.IsPositive() {
			point.Percent = point.CurrentTotal.Sub(point.PreviousTotal).Div(point.PreviousTotal).Mul(oneHundred)
		} else {
			point.NoBaseline = true
		}
		points = append(points, point)
	}

	// Most recent period first.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}

func previousMonth(k monthKey) monthKey {
	if k.month == time.January {
		return monthKey{year: k.year - 1, month: time.December}
	}
	return monthKey{year: k.year, month: k.month - 1}
}

func monthRange(totals map[monthKey]decimal.Decimal) (first, last monthKey) {
	started := false
	for key := range totals {
		if !started {
			first, last = key, key
			started = true
			continue
		}
		if key.before(first) {
			first = key
		}
		if last.before(key) {
			last = key
		}
	}
	return first, last
}

func categoryChanges(prior, current map[string]decimal.Decimal) []CategoryChange {
	seen := make(map[string]struct{}, len(prior)+len(current))
	changes := make([]CategoryChange, 0, len(prior)+len(current))
	add := func(category string) {
		if _, ok := seen[category]; ok {
			return
		}
		seen[category] = struct{}{}
		change := CategoryChange{
			Category: category,
			Previous: prior[category],
			Current:  current[category],
		}
		switch {
		case change.Previous.IsPositive():
			change.Percent = change.Current.Sub(change.Previous).Div(change.Previous).Mul(oneHundred)
		case change.Current.IsPositive():
			change.NewCategory = true
			change.Percent = oneHundred
		}
		changes = append(changes, change)
	}
	for category := range current {
		add(category)
	}
	for category := range prior {
		add(category)
	}
	sort.Slice(changes, func(i, j int) bool {
		if !changes[i].Percent.Abs().Equal(changes[j].Percent.Abs()) {
			return changes[i].Percent.Abs().GreaterThan(changes[j].Percent.Abs())
		}
		return changes[i].Category < changes[j].Category
	})
	return changes
}
