package notifier

import (
	"fmt"
	"strings"

	"VolScanner/internal/model"
)

// FormatScanReport formats a scan result into a Telegram message with a
// monospace result table.
func FormatScanReport(result *model.ScanResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🚀 <b>1-Week Opportunity Scan</b> | %s\n\n",
		result.StartedAt.Format("2006-01-02 15:04")))

	if len(result.Records) == 0 {
		b.WriteString("No qualifying tickers.\n")
	} else {
		b.WriteString("<pre>")
		b.WriteString(fmt.Sprintf("%-6s %9s %7s %8s %9s %s\n",
			"Ticker", "Price", "Vol%", "Move", "Target", "Hold"))
		for _, r := range result.Records {
			b.WriteString(fmt.Sprintf("%-6s %9.2f %7.2f %8.2f %9.2f %s\n",
				r.Ticker, r.Price, r.VolatilityPct, r.ExpectedMove, r.TargetPrice, r.HoldTime))
		}
		b.WriteString("</pre>")
	}

	b.WriteString(fmt.Sprintf("\n%d/%d tickers qualified (%.1fs)\n",
		len(result.Records), result.Watchlist, result.Elapsed))
	return b.String()
}
