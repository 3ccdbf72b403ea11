// Package reporting buckets orders and expenses into day/month/year windows
// and computes sales, expense, profit and cash-flow totals. The service holds
// the latest snapshots pushed by the document store and aggregates on demand.
package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/domain/models"
)

// Period selects the reporting window anchored at the current moment.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Valid reports whether the period is one of the known windows.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Window computes the half-open interval [start, end) containing now, in
// now's location. Daily runs midnight to midnight, monthly first-of-month to
// first-of-next-month, yearly Jan 1 to Jan 1.
func Window(period Period, now time.Time) (time.Time, time.Time, error) {
	loc := now.Location()
	switch period {
	case PeriodDaily:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 0, 1), nil
	case PeriodMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0), nil
	case PeriodYearly:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0), nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", period)
}

// Summary is the aggregation result for one window.
type Summary struct {
	Period        Period           `json:"period"`
	WindowStart   time.Time        `json:"windowStart"`
	WindowEnd     time.Time        `json:"windowEnd"`
	TotalSales    float64          `json:"totalSales"`
	TotalExpenses float64          `json:"totalExpenses"`
	Profit        float64          `json:"profit"`
	CashIn        float64          `json:"cashIn"`
	CashFlow      float64          `json:"cashFlow"`
	Orders        []models.Order   `json:"orders"`
	Expenses      []models.Expense `json:"expenses"`
}

// Aggregate filters the snapshots to the window containing now and computes
// the totals. Sales accrue on every order in the window regardless of payment
// status; cash-in counts only paid orders' paid amounts.
func Aggregate(orders []models.Order, expenses []models.Expense, period Period, now time.Time) (Summary, error) {
	start, end, err := Window(period, now)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Period: period, WindowStart: start, WindowEnd: end}

	inWindow := func(t time.Time) bool {
		return !t.Before(start) && t.Before(end)
	}

	for _, o := range orders {
		if !inWindow(o.CreatedAt) {
			continue
		}
		summary.Orders = append(summary.Orders, o)
		summary.TotalSales += o.TotalCost
		if o.PaymentStatus == models.PaymentPaid {
			summary.CashIn += o.PaidAmount
		}
	}

	for _, e := range expenses {
		if !inWindow(e.CreatedAt) {
			continue
		}
		summary.Expenses = append(summary.Expenses, e)
		summary.TotalExpenses += e.Cost
	}

	summary.Profit = summary.TotalSales - summary.TotalExpenses
	summary.CashFlow = summary.CashIn - summary.TotalExpenses
	return summary, nil
}

// Service holds the latest orders and expenses snapshots and serves window
// aggregations over them.
type Service struct {
	loc    *time.Location
	logger *zap.Logger

	mu       sync.RWMutex
	orders   []models.Order
	expenses []models.Expense
}

// NewService wires a new reporting service instance. Windows are computed in
// the provided location.
func NewService(loc *time.Location, logger *zap.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{loc: loc, logger: logger}
}

// Run consumes snapshot pushes until both channels close or ctx is done.
// Each delivery replaces the cached snapshot wholesale.
func (s *Service) Run(ctx context.Context, orders <-chan []models.Order, expenses <-chan []models.Expense) {
	for orders != nil || expenses != nil {
		select {
		case snapshot, ok := <-orders:
			if !ok {
				orders = nil
				continue
			}
			s.mu.Lock()
			s.orders = snapshot
			s.mu.Unlock()
			s.logger.Debug("orders snapshot refreshed", zap.Int("count", len(snapshot)))
		case snapshot, ok := <-expenses:
			if !ok {
				expenses = nil
				continue
			}
			s.mu.Lock()
			s.expenses = snapshot
			s.mu.Unlock()
			s.logger.Debug("expenses snapshot refreshed", zap.Int("count", len(snapshot)))
		case <-ctx.Done():
			return
		}
	}
}

// SetSnapshots primes the cache from a one-time read, used at bootstrap
// before the watchers deliver their first push.
func (s *Service) SetSnapshots(orders []models.Order, expenses []models.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	s.expenses = expenses
}

// Report aggregates the cached snapshots over the window containing the
// current moment.
func (s *Service) Report(period Period) (Summary, error) {
	s.mu.RLock()
	orders, expenses := s.orders, s.expenses
	s.mu.RUnlock()

	return Aggregate(orders, expenses, period, time.Now().In(s.loc))
}

// DailyClose builds the end-of-day summary document for the daily window
// containing now.
func (s *Service) DailyClose(now time.Time) (models.DailyClose, error) {
	s.mu.RLock()
	orders, expenses := s.orders, s.expenses
	s.mu.RUnlock()

	summary, err := Aggregate(orders, expenses, PeriodDaily, now.In(s.loc))
	if err != nil {
		return models.DailyClose{}, err
	}

	return models.DailyClose{
		Date:          summary.WindowStart,
		TotalSales:    summary.TotalSales,
		TotalExpenses: summary.TotalExpenses,
		Profit:        summary.Profit,
		CashIn:        summary.CashIn,
		CashFlow:      summary.CashFlow,
		OrderCount:    len(summary.Orders),
		ExpenseCount:  len(summary.Expenses),
		CreatedAt:     now,
	}, nil
}
