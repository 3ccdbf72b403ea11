// Package order implements the order lifecycle: create, edit, delete, search
// and receipt rendering. Totals are recomputed from the catalog snapshot on
// every save; payment fields are owned by the payment package.
package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/repository/mongodb"
	"github.com/rakapradana/printpos/internal/service/account"
	"github.com/rakapradana/printpos/internal/service/pricing"
)

// ErrValidation is wrapped by all input validation failures.
var ErrValidation = errors.New("validation failed")

// ErrIDExhausted is returned when id generation keeps colliding. With a
// second-resolution timestamp plus a six digit random suffix this indicates
// a store-side problem, not bad luck.
var ErrIDExhausted = errors.New("could not generate a unique order id")

const idCollisionRetries = 3

// Repository is the slice of the document store the order service needs.
type Repository interface {
	CreateOrder(ctx context.Context, order models.Order) error
	GetOrder(ctx context.Context, id string) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderDetails(ctx context.Context, id string, customerName string, items []models.OrderItem, totalCost float64, updatedAt time.Time) error
	DeleteOrder(ctx context.Context, id string) error
}

// ProductReader provides the catalog snapshot used to price items.
type ProductReader interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Service manages the order lifecycle.
type Service struct {
	repo     Repository
	products ProductReader
	logger   *zap.Logger

	now func() time.Time
}

// NewService wires a new order service instance.
func NewService(repo Repository, products ProductReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, products: products, logger: logger, now: time.Now}
}

// GenerateID builds a human-readable order id of the form
// P-YYYYMMDD-HHMMSS-NNNNNN with a random six digit suffix.
func GenerateID(now time.Time) string {
	suffix := 100000 + rand.Intn(900000)
	return fmt.Sprintf("P-%s-%s-%d", now.Format("20060102"), now.Format("150405"), suffix)
}

// CreateParams holds the editable fields of an order.
type CreateParams struct {
	CustomerName string
	Items        []models.OrderItem
}

func (p CreateParams) validate() error {
	if strings.TrimSpace(p.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	// An empty item list is allowed; it produces a zero-total order.
	return nil
}

// Create persists a new unpaid order. The total is snapshotted from the
// current catalog, and id generation retries on a store-reported collision.
func (s *Service) Create(ctx context.Context, params CreateParams) (models.Order, error) {
	if err := params.validate(); err != nil {
		return models.Order{}, err
	}

	catalog, err := s.catalog(ctx)
	if err != nil {
		return models.Order{}, err
	}

	now := s.now()
	order := models.Order{
		CustomerName:  strings.TrimSpace(params.CustomerName),
		Items:         params.Items,
		TotalCost:     pricing.Total(params.Items, catalog),
		PaymentStatus: models.PaymentUnpaid,
		PaymentMethod: "",
		PaidAmount:    0,
		CreatedAt:     now,
	}

	for attempt := 0; attempt < idCollisionRetries; attempt++ {
		order.ID = GenerateID(now)
		err := s.repo.CreateOrder(ctx, order)
		if err == nil {
			s.logger.Info("order created",
				zap.String("order_id", order.ID),
				zap.String("customer", order.CustomerName),
				zap.Float64("total", order.TotalCost))
			return order, nil
		}
		if !errors.Is(err, mongodb.ErrDuplicateID) {
			return models.Order{}, fmt.Errorf("save order: %w", err)
		}
		s.logger.Warn("order id collision, regenerating", zap.String("order_id", order.ID))
	}

	return models.Order{}, ErrIDExhausted
}

// Edit updates the customer name and item list of an existing order and
// recomputes the total. Payment fields are untouched: editing never resets a
// settlement.
func (s *Service) Edit(ctx context.Context, id string, params CreateParams) (models.Order, error) {
	if err := params.validate(); err != nil {
		return models.Order{}, err
	}

	existing, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("load order: %w", err)
	}

	catalog, err := s.catalog(ctx)
	if err != nil {
		return models.Order{}, err
	}

	now := s.now()
	existing.CustomerName = strings.TrimSpace(params.CustomerName)
	existing.Items = params.Items
	existing.TotalCost = pricing.Total(params.Items, catalog)
	existing.UpdatedAt = &now

	if err := s.repo.UpdateOrderDetails(ctx, id, existing.CustomerName, existing.Items, existing.TotalCost, now); err != nil {
		return models.Order{}, fmt.Errorf("save order: %w", err)
	}

	s.logger.Info("order updated", zap.String("order_id", id), zap.Float64("total", existing.TotalCost))
	return existing, nil
}

// Get fetches a single order.
func (s *Service) Get(ctx context.Context, id string) (models.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// List returns the current orders snapshot.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	return s.repo.ListOrders(ctx)
}

// Delete removes an order permanently. Supervisor or owner only.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := account.RequireRole(ctx, models.RoleSupervisor, models.RoleOwner); err != nil {
		return err
	}
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	s.logger.Info("order deleted", zap.String("order_id", id))
	return nil
}

// Search returns every order whose id or customer name contains the query,
// case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]models.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var matches []models.Order
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ID), q) || strings.Contains(strings.ToLower(o.CustomerName), q) {
			matches = append(matches, o)
		}
	}
	return matches, nil
}

func (s *Service) catalog(ctx context.Context) (pricing.Catalog, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return pricing.NewCatalog(products), nil
}
