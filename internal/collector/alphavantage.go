package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"VolScanner/internal/model"
)

const alphaVantageBaseURL = "https://www.alphavantage.co/query"

// AlphaVantageFetcher implements Fetcher using the Alpha Vantage
// TIME_SERIES_DAILY endpoint. Used when an API key is configured.
type AlphaVantageFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAlphaVantageFetcher creates a new fetcher with optional proxy support.
func NewAlphaVantageFetcher(apiKey, proxyURL string) *AlphaVantageFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlphaVantageFetcher{
		BaseURL: alphaVantageBaseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

// avDailyBar is one date entry in the Alpha Vantage time series.
// All fields arrive as strings.
type avDailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// avResponse is the TIME_SERIES_DAILY response shape.
type avResponse struct {
	TimeSeries map[string]avDailyBar `json:"Time Series (Daily)"`
	Note       string                `json:"Note"`
	ErrorMsg   string                `json:"Error Message"`
}

// FetchDailyBars returns up to `days` daily bars in chronological order.
// The compact output size covers the latest 100 data points, which is
// plenty for a 1-month lookback.
func (f *AlphaVantageFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY")
	params.Set("symbol", symbol)
	params.Set("outputsize", "compact")
	params.Set("apikey", f.APIKey)

	resp, err := f.Client.Get(fmt.Sprintf("%s?%s", f.BaseURL, params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("alphavantage: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result avResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	if result.ErrorMsg != "" {
		return nil, fmt.Errorf("alphavantage api error: %s", result.ErrorMsg)
	}
	if result.Note != "" {
		// Rate limit responses come back as 200 with a Note body.
		return nil, fmt.Errorf("alphavantage throttled: %s", result.Note)
	}
	if len(result.TimeSeries) == 0 {
		return nil, fmt.Errorf("alphavantage: no data returned for %s", symbol)
	}

	dates := make([]string, 0, len(result.TimeSeries))
	for d := range result.TimeSeries {
		dates = append(dates, d)
	}
	sort.Strings(dates) // YYYY-MM-DD keys sort chronologically

	bars := make([]model.OHLCV, 0, len(dates))
	for _, d := range dates {
		raw := result.TimeSeries[d]
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Errorf("alphavantage parse date %q: %w", d, err)
		}
		open, err := strconv.ParseFloat(raw.Open, 64)
		if err != nil {
			return nil, fmt.Errorf("alphavantage parse open for %s: %w", d, err)
		}
		high, err := strconv.ParseFloat(raw.High, 64)
		if err != nil {
			return nil, fmt.Errorf("alphavantage parse high for %s: %w", d, err)
		}
		low, err := strconv.ParseFloat(raw.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("alphavantage parse low for %s: %w", d, err)
		}
		closePrice, err := strconv.ParseFloat(raw.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("alphavantage parse close for %s: %w", d, err)
		}
		volume, _ := strconv.ParseFloat(raw.Volume, 64)
		bars = append(bars, model.OHLCV{
			Time:   t,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePrice,
			Volume: volume,
		})
	}

	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}
