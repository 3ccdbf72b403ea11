package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/repository/sheets"
	"github.com/rakapradana/printpos/internal/service/reporting"
	"github.com/rakapradana/printpos/pkg/clients/notify"
)

// CloseWriter persists daily close documents.
type CloseWriter interface {
	SaveDailyClose(ctx context.Context, close models.DailyClose) error
}

// Scheduler runs the end-of-day close on a cron schedule: aggregate the
// daily window, persist the summary, and fan it out to the optional ledger
// and webhook.
type Scheduler struct {
	cron      *cron.Cron
	schedule  string
	reporting *reporting.Service
	closes    CloseWriter
	ledger    sheets.Ledger
	notifier  notify.Client
	logger    *zap.Logger
}

// New creates a scheduler. Ledger and notifier may be nil; those sinks are
// then skipped.
func New(schedule string, loc *time.Location, reportingSvc *reporting.Service, closes CloseWriter, ledger sheets.Ledger, notifier notify.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		schedule:  schedule,
		reporting: reportingSvc,
		closes:    closes,
		ledger:    ledger,
		notifier:  notifier,
		logger:    logger,
	}
}

// Start registers the daily close job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runDailyClose); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("schedule", s.schedule))
	return nil
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailyClose() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dc, err := s.reporting.DailyClose(time.Now())
	if err != nil {
		s.logger.Error("failed to build daily close", zap.Error(err))
		return
	}

	if err := s.closes.SaveDailyClose(ctx, dc); err != nil {
		s.logger.Error("failed to persist daily close", zap.Error(err))
		return
	}
	s.logger.Info("daily close persisted",
		zap.Time("date", dc.Date),
		zap.Float64("sales", dc.TotalSales),
		zap.Float64("profit", dc.Profit))

	if s.ledger != nil {
		if err := s.ledger.AppendClose(ctx, dc); err != nil {
			s.logger.Error("failed to append daily close to ledger", zap.Error(err))
		}
	}

	if s.notifier != nil {
		if err := s.notifier.SendDailyClose(ctx, dc); err != nil {
			s.logger.Error("failed to notify daily close", zap.Error(err))
		}
	}
}
