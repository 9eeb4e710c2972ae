package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yahooChartFixture = `{
  "chart": {
    "result": [{
      "timestamp": [1755518400, 1755604800, 1755691200, 1755777600],
      "indicators": {
        "quote": [{
          "open":   [99.5, 101.2, 100.8, null],
          "high":   [102.1, 103.0, 101.9, null],
          "low":    [99.0, 100.5, 100.1, null],
          "close":  [100.0, 102.0, 101.0, null],
          "volume": [1200000, 1500000, 900000, null]
        }]
      }
    }],
    "error": null
  }
}`

func newYahooTestFetcher(srv *httptest.Server) *YahooFetcher {
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return f
}

func TestYahooFetchDailyBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v8/finance/chart/AAA")
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "1mo", r.URL.Query().Get("range"))
		fmt.Fprint(w, yahooChartFixture)
	}))
	defer srv.Close()

	bars, err := newYahooTestFetcher(srv).FetchDailyBars("AAA", 30)
	require.NoError(t, err)
	// The null bar (holiday) is dropped.
	require.Len(t, bars, 3)
	assert.Equal(t, 100.0, bars[0].Close)
	assert.Equal(t, 102.0, bars[1].Close)
	assert.Equal(t, 101.0, bars[2].Close)
	assert.True(t, bars[0].Time.Before(bars[1].Time))
}

func TestYahooFetchDailyBars_TrimsToRequested(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, yahooChartFixture)
	}))
	defer srv.Close()

	bars, err := newYahooTestFetcher(srv).FetchDailyBars("AAA", 2)
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, 102.0, bars[0].Close)
	assert.Equal(t, 101.0, bars[1].Close)
}

func TestYahooFetchDailyBars_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer srv.Close()

	_, err := newYahooTestFetcher(srv).FetchDailyBars("NOPE", 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delisted")
}

func TestYahooFetchDailyBars_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newYahooTestFetcher(srv).FetchDailyBars("AAA", 30)
	assert.Error(t, err)
}

func TestYahooFetchDailyBars_MissingQuoteData(t *testing.T) {
	// Timestamps without quote arrays must surface as an error, not a
	// panic; the scanner relies on the error to skip the ticker.
	fixtures := []string{
		`{"chart":{"result":[{"timestamp":[1755518400,1755604800],"indicators":{"quote":[]}}],"error":null}}`,
		`{"chart":{"result":[{"timestamp":[1755518400,1755604800],"indicators":{"quote":[{"open":[99.5],"high":[102.1],"low":[99.0],"close":[100.0],"volume":[1200000]}]}}],"error":null}}`,
	}
	for _, fixture := range fixtures {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, fixture)
		}))
		_, err := newYahooTestFetcher(srv).FetchDailyBars("AAA", 30)
		assert.Error(t, err)
		srv.Close()
	}
}

func TestYahooFetchDailyBars_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
	}))
	defer srv.Close()

	_, err := newYahooTestFetcher(srv).FetchDailyBars("AAA", 30)
	assert.Error(t, err)
}
