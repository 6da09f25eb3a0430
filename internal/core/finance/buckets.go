package finance

import (
	"fmt"
	"time"
)

// MonthBucket identifies one calendar month in a reporting window.
type MonthBucket struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"`
}

// Contains reports whether t falls inside the bucket's calendar month.
func (b MonthBucket) Contains(t time.Time) bool {
	return t.Year() == b.Year && t.Month() == b.Month
}

// BuildBuckets returns exactly lookbackMonths buckets, oldest first, ending at
// the anchor's month inclusive. Months without records still get a bucket so
// charts show zeroes instead of gaps.
func BuildBuckets(lookbackMonths int, anchor time.Time) []MonthBucket {
	if lookbackMonths <= 0 {
		return nil
	}
	buckets := make([]MonthBucket, 0, lookbackMonths)
	for i := lookbackMonths - 1; i >= 0; i-- {
		// Normalizing to the first of the month keeps AddDate from
		// overflowing on short months.
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		m := first.AddDate(0, -i, 0)
		buckets = append(buckets, MonthBucket{
			Year:  m.Year(),
			Month: m.Month(),
			Label: fmt.Sprintf("%d/%d", int(m.Month()), m.Year()),
		})
	}
	return buckets
}
