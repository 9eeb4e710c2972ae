package scheduler

import (
	"context"
	"fmt"
	"log"

	"VolScanner/internal/notifier"
	"VolScanner/internal/scanner"

	"github.com/robfig/cron/v3"
)

// Scheduler runs scheduled scans and serves Telegram commands.
// Notifier may be nil, in which case reports are only logged.
type Scheduler struct {
	Cron     *cron.Cron
	Scanner  *scanner.Scanner
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Scanner:  sc,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register adds the scheduled scan task. An empty spec disables it.
func (s *Scheduler) Register(scanCron string) error {
	if scanCron == "" {
		return nil
	}
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Println("[INFO] running scheduled scan")
	result := s.Scanner.Scan()
	report := notifier.FormatScanReport(result)
	s.trySend(report)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan", "scan":
		result := s.Scanner.Scan()
		return notifier.FormatScanReport(result)
	case "/watchlist", "watchlist":
		msg := "📋 <b>Watchlist</b>\n"
		for _, sym := range s.Scanner.Watchlist {
			msg += "• " + sym + "\n"
		}
		return msg
	default:
		return "Available commands:\n• /scan\n• /watchlist"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		log.Printf("[INFO] scan report:\n%s", text)
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
