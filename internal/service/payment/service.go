// Package payment records settlements against orders and derives their
// paid/unpaid status.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/domain/models"
)

// ErrValidation is wrapped by all input validation failures.
var ErrValidation = errors.New("validation failed")

// Only cash is taken at the counter; method selection is not configurable.
const defaultPaymentMethod = "Cash"

// Repository is the slice of the document store the settlement flow needs.
type Repository interface {
	GetOrder(ctx context.Context, id string) (models.Order, error)
	UpdateOrderPayment(ctx context.Context, id string, paidAmount float64, status models.PaymentStatus, method string, updatedAt time.Time) error
}

// Result is a settled order plus the display-only derived amounts. Change and
// Outstanding are never persisted; at most one of them is non-zero.
type Result struct {
	Order       models.Order `json:"order"`
	Change      float64      `json:"change"`
	Outstanding float64      `json:"outstanding"`
}

// Service implements the settlement engine.
type Service struct {
	repo   Repository
	logger *zap.Logger

	now func() time.Time
}

// NewService wires a new settlement service instance.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Settle records a paid amount against the order. The status derives from the
// paid amount versus the snapshotted total; settling twice with the same
// amount yields the same result.
func (s *Service) Settle(ctx context.Context, orderID string, paidAmount float64) (Result, error) {
	if paidAmount < 0 {
		return Result{}, fmt.Errorf("%w: paid amount must not be negative", ErrValidation)
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return Result{}, fmt.Errorf("load order: %w", err)
	}

	status := models.PaymentUnpaid
	if paidAmount >= order.TotalCost {
		status = models.PaymentPaid
	}

	now := s.now()
	if err := s.repo.UpdateOrderPayment(ctx, orderID, paidAmount, status, defaultPaymentMethod, now); err != nil {
		return Result{}, fmt.Errorf("save payment: %w", err)
	}

	order.PaidAmount = paidAmount
	order.PaymentStatus = status
	order.PaymentMethod = defaultPaymentMethod
	order.UpdatedAt = &now

	result := Result{Order: order}
	if diff := paidAmount - order.TotalCost; diff > 0 {
		result.Change = diff
	} else if diff < 0 {
		result.Outstanding = -diff
	}

	s.logger.Info("payment settled",
		zap.String("order_id", orderID),
		zap.Float64("paid", paidAmount),
		zap.String("status", string(status)))
	return result, nil
}
