package collector

import (
	"fmt"
	"time"

	"VolScanner/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Closes maps a symbol to its closing-price series; symbols listed in
// Fail return an error instead.
type MockFetcher struct {
	Closes map[string][]float64
	Fail   map[string]bool
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if m.Fail[symbol] {
		return nil, fmt.Errorf("mock: no data for %s", symbol)
	}
	closes, ok := m.Closes[symbol]
	if !ok {
		return nil, fmt.Errorf("mock: unknown symbol %s", symbol)
	}
	if len(closes) > days {
		closes = closes[len(closes)-days:]
	}
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(len(closes) - i)),
			Open:   c,
			High:   c * 1.005,
			Low:    c * 0.995,
			Close:  c,
			Volume: 1000000,
		}
	}
	return bars, nil
}
