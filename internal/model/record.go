package model

import "time"

// TickerRecord holds the computed metrics for one watchlist ticker.
// All numeric fields are rounded to 2 decimal places; VolatilityPct is
// the annualized volatility expressed as a percentage.
type TickerRecord struct {
	Ticker        string  `json:"ticker"`
	Price         float64 `json:"price"`
	VolatilityPct float64 `json:"volatility_pct"`
	ExpectedMove  float64 `json:"expected_move"`
	TargetPrice   float64 `json:"target_price"`
	HoldTime      string  `json:"hold_time"`
}

// ScanResult is the output of one full watchlist scan. Records are in
// watchlist order; tickers without usable data are omitted entirely.
type ScanResult struct {
	Records   []TickerRecord `json:"records"`
	Watchlist int            `json:"watchlist"`
	StartedAt time.Time      `json:"started_at"`
	Elapsed   float64        `json:"elapsed_seconds"`
}
