// Package expense tracks operating costs. Entries are immutable except for
// deletion.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/service/account"
)

// ErrValidation is wrapped by all input validation failures.
var ErrValidation = errors.New("validation failed")

// Repository is the slice of the document store the expense service needs.
type Repository interface {
	CreateExpense(ctx context.Context, expense models.Expense) error
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// Service implements expense tracking.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService wires a new expense service instance.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Add records a new expense.
func (s *Service) Add(ctx context.Context, description string, cost float64) (models.Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Expense{}, fmt.Errorf("%w: description is required", ErrValidation)
	}

	exp := models.Expense{
		ID:          uuid.NewString(),
		Description: description,
		Cost:        cost,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateExpense(ctx, exp); err != nil {
		return models.Expense{}, fmt.Errorf("save expense: %w", err)
	}

	s.logger.Info("expense added", zap.String("description", exp.Description), zap.Float64("cost", exp.Cost))
	return exp, nil
}

// List returns the current expenses snapshot.
func (s *Service) List(ctx context.Context) ([]models.Expense, error) {
	return s.repo.ListExpenses(ctx)
}

// Delete removes an expense permanently. Supervisor or owner only.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := account.RequireRole(ctx, models.RoleSupervisor, models.RoleOwner); err != nil {
		return err
	}
	if err := s.repo.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	s.logger.Info("expense deleted", zap.String("expense_id", id))
	return nil
}
