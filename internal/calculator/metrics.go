package calculator

import (
	"math"

	"VolScanner/internal/model"
)

// Heuristic constants from the scanning strategy. They encode the
// strategy's assumptions, not a derivable pricing model.
const (
	// TradingDaysPerYear annualizes the daily return stddev.
	TradingDaysPerYear = 252
	// HorizonCalendarDays is the expected-move horizon.
	HorizonCalendarDays = 7
	// TargetMultiplier amplifies the expected move into a target price.
	TargetMultiplier = 1.5
	// HoldTimeLabel is the fixed suggested holding period.
	HoldTimeLabel = "5-7 Days"
)

// ComputeRecord derives the full metric record for one ticker from its
// chronological closing-price series. Any failure (series too short,
// non-positive close, degenerate arithmetic) returns ErrNoData; a
// partial record is never produced.
func ComputeRecord(ticker string, closes []float64) (*model.TickerRecord, error) {
	if len(closes) == 0 {
		return nil, ErrNoData
	}
	price := closes[len(closes)-1]

	volatility, err := AnnualizedVolatility(closes)
	if err != nil {
		return nil, ErrNoData
	}

	// Annualized volatility scaled down to the move horizon, treated
	// as a stand-in for options-market implied volatility.
	expectedMove := price * volatility * math.Sqrt(HorizonCalendarDays/365.0)
	targetPrice := price + expectedMove*TargetMultiplier

	if math.IsNaN(volatility) || math.IsInf(volatility, 0) ||
		math.IsNaN(expectedMove) || math.IsInf(expectedMove, 0) {
		return nil, ErrNoData
	}

	return &model.TickerRecord{
		Ticker:        ticker,
		Price:         round2(price),
		VolatilityPct: round2(volatility * 100),
		ExpectedMove:  round2(expectedMove),
		TargetPrice:   round2(targetPrice),
		HoldTime:      HoldTimeLabel,
	}, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
