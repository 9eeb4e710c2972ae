package scanner

import (
	"testing"

	"VolScanner/internal/collector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_SkipsFailedTickers(t *testing.T) {
	fetcher := &collector.MockFetcher{
		Closes: map[string][]float64{
			"AAA": {100, 102, 101, 105},
			"CCC": {50, 52, 51, 54},
		},
		Fail: map[string]bool{"XYZ": true},
	}
	sc := New(fetcher, []string{"AAA", "XYZ", "CCC"}, 30)

	result := sc.Scan()
	require.Len(t, result.Records, 2)
	assert.Equal(t, 3, result.Watchlist)

	// Watchlist order preserved, no placeholder for the failed ticker.
	assert.Equal(t, "AAA", result.Records[0].Ticker)
	assert.Equal(t, "CCC", result.Records[1].Ticker)
	for _, r := range result.Records {
		assert.NotEqual(t, "XYZ", r.Ticker)
	}
}

func TestScan_SkipsDegenerateSeries(t *testing.T) {
	fetcher := &collector.MockFetcher{
		Closes: map[string][]float64{
			"AAA": {100, 102, 101, 105},
			"BBB": {50, 51}, // one return: not enough for the sample estimator
			"CCC": {42},     // single close
		},
	}
	sc := New(fetcher, []string{"AAA", "BBB", "CCC"}, 30)

	result := sc.Scan()
	require.Len(t, result.Records, 1)
	assert.Equal(t, "AAA", result.Records[0].Ticker)
}

func TestScan_AllFail(t *testing.T) {
	fetcher := &collector.MockFetcher{
		Fail: map[string]bool{"AAA": true, "BBB": true},
	}
	sc := New(fetcher, []string{"AAA", "BBB"}, 30)

	// A total failure still completes with an empty, non-nil record list.
	result := sc.Scan()
	require.NotNil(t, result)
	assert.NotNil(t, result.Records)
	assert.Empty(t, result.Records)
	assert.Equal(t, 2, result.Watchlist)
}

func TestScan_RecordValues(t *testing.T) {
	fetcher := &collector.MockFetcher{
		Closes: map[string][]float64{"AAA": {100, 102, 101, 105}},
	}
	sc := New(fetcher, []string{"AAA"}, 30)

	result := sc.Scan()
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.Equal(t, 105.0, rec.Price)
	assert.Equal(t, 38.95, rec.VolatilityPct)
	assert.Equal(t, 5.66, rec.ExpectedMove)
	assert.Equal(t, 113.5, rec.TargetPrice)
	assert.Equal(t, "5-7 Days", rec.HoldTime)
}

func TestScan_LookbackTrimsSeries(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i%5)
	}
	fetcher := &collector.MockFetcher{
		Closes: map[string][]float64{"AAA": closes},
	}
	sc := New(fetcher, []string{"AAA"}, 30)

	result := sc.Scan()
	require.Len(t, result.Records, 1)
	// Price comes from the tail of the trimmed series.
	assert.Equal(t, 104.0, result.Records[0].Price)
}
