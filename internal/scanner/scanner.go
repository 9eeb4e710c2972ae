package scanner

import (
	"log"
	"time"

	"VolScanner/internal/calculator"
	"VolScanner/internal/collector"
	"VolScanner/internal/model"
)

// Scanner runs the watchlist through fetch and metric computation.
type Scanner struct {
	Fetcher      collector.Fetcher
	Watchlist    []string
	LookbackDays int
}

// New creates a new Scanner.
func New(fetcher collector.Fetcher, watchlist []string, lookbackDays int) *Scanner {
	return &Scanner{Fetcher: fetcher, Watchlist: watchlist, LookbackDays: lookbackDays}
}

// Scan processes the watchlist sequentially. Tickers whose data cannot
// be fetched or computed are skipped; the result carries only the
// tickers that qualified, in watchlist order. A scan never fails as a
// whole: with zero qualifying tickers the record list is just empty.
func (s *Scanner) Scan() *model.ScanResult {
	started := time.Now()
	records := make([]model.TickerRecord, 0, len(s.Watchlist))

	for _, symbol := range s.Watchlist {
		bars, err := s.Fetcher.FetchDailyBars(symbol, s.LookbackDays)
		if err != nil {
			log.Printf("[WARN] %s: fetch daily bars: %v, skipping", symbol, err)
			continue
		}
		record, err := calculator.ComputeRecord(symbol, collector.Closes(bars))
		if err != nil {
			log.Printf("[WARN] %s: compute metrics: %v, skipping", symbol, err)
			continue
		}
		records = append(records, *record)
	}

	elapsed := time.Since(started)
	log.Printf("[INFO] scan complete: %d/%d tickers qualified in %.2fs",
		len(records), len(s.Watchlist), elapsed.Seconds())

	return &model.ScanResult{
		Records:   records,
		Watchlist: len(s.Watchlist),
		StartedAt: started,
		Elapsed:   elapsed.Seconds(),
	}
}
