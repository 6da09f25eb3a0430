package finance_test

import (
	"testing"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBuckets_CountOrderAndNoGaps(t *testing.T) {
	anchor := time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC)

	for _, lookback := range []int{1, 3, 6, 12, 24} {
		buckets := finance.BuildBuckets(lookback, anchor)
		require.Len(t, buckets, lookback)

		// Ends at the anchor's month.
		last := buckets[len(buckets)-1]
		assert.Equal(t, 2024, last.Year)
		assert.Equal(t, time.November, last.Month)

		// Oldest first, consecutive months, no duplicates.
		for i := 1; i < len(buckets); i++ {
			prev := time.Date(buckets[i-1].Year, buckets[i-1].Month, 1, 0, 0, 0, 0, time.UTC)
			cur := time.Date(buckets[i].Year, buckets[i].Month, 1, 0, 0, 0, 0, time.UTC)
			assert.Equal(t, prev.AddDate(0, 1, 0), cur, "buckets %d and %d are not consecutive", i-1, i)
		}
	}
}

func TestBuildBuckets_CrossesYearBoundary(t *testing.T) {
	anchor := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	buckets := finance.BuildBuckets(4, anchor)

	require.Len(t, buckets, 4)
	assert.Equal(t, time.November, buckets[0].Month)
	assert.Equal(t, 2024, buckets[0].Year)
	assert.Equal(t, "11/2024", buckets[0].Label)
	assert.Equal(t, time.February, buckets[3].Month)
	assert.Equal(t, 2025, buckets[3].Year)
}

func TestBuildBuckets_AnchorOnMonthEnd(t *testing.T) {
	// Jan 31 minus one month must land in December, not skip it.
	anchor := time.Date(2025, time.January, 31, 23, 59, 0, 0, time.UTC)
	buckets := finance.BuildBuckets(2, anchor)

	require.Len(t, buckets, 2)
	assert.Equal(t, time.December, buckets[0].Month)
	assert.Equal(t, 2024, buckets[0].Year)
}

func TestBuildBuckets_NonPositiveLookback(t *testing.T) {
	anchor := time.Now()
	assert.Empty(t, finance.BuildBuckets(0, anchor))
	assert.Empty(t, finance.BuildBuckets(-3, anchor))
}

func TestMonthBucket_Contains(t *testing.T) {
	bucket := finance.MonthBucket{Year: 2024, Month: time.November}

	assert.True(t, bucket.Contains(time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bucket.Contains(time.Date(2024, time.November, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, bucket.Contains(time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, bucket.Contains(time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC)))
}
