// Package catalog manages the product list and the singleton store profile.
package catalog

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

// Repository is the slice of the document store the catalog service needs.
type Repository interface {
	CreateProduct(ctx context.Context, product models.Product) error
	GetProduct(ctx context.Context, id string) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id string, name string, unitPrice float64, method models.CalculationMethod, updatedAt time.Time) error
	DeleteProduct(ctx context.Context, id string) error
	GetSettings(ctx context.Context) (models.StoreSettings, error)
	UpsertSettings(ctx context.Context, settings models.StoreSettings) error
}

// Service implements product and store profile administration.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService wires a new catalog service instance.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// ProductParams holds the editable fields of a product.
type ProductParams struct {
	Name      string
	UnitPrice float64
	Method    models.CalculationMethod
}

func (p *ProductParams) validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if !p.Method.Valid() {
		return fmt.Errorf("%w: unknown calculation method %q", ErrValidation, p.Method)
	}
	return nil
}

func requireProductRole(ctx context.Context) error {
	return account.RequireRole(ctx, models.RoleDesigner, models.RoleSupervisor, models.RoleOwner)
}

// CreateProduct adds a catalog entry. Designer, supervisor or owner.
func (s *Service) CreateProduct(ctx context.Context, params ProductParams) (models.Product, error) {
	if err := requireProductRole(ctx); err != nil {
		return models.Product{}, err
	}
	if err := params.validate(); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ID:        uuid.NewString(),
		Name:      params.Name,
		UnitPrice: params.UnitPrice,
		Method:    params.Method,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("save product: %w", err)
	}

	s.logger.Info("product created", zap.String("name", product.Name), zap.String("method", string(product.Method)))
	return product, nil
}

// UpdateProduct rewrites a product. Already-saved order totals are snapshots
// and stay as they were.
func (s *Service) UpdateProduct(ctx context.Context, id string, params ProductParams) error {
	if err := requireProductRole(ctx); err != nil {
		return err
	}
	if err := params.validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateProduct(ctx, id, params.Name, params.UnitPrice, params.Method, time.Now()); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteProduct removes a catalog entry. Orders referencing it keep their
// snapshotted totals and price the dangling item as zero from then on.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := requireProductRole(ctx); err != nil {
		return err
	}
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ListProducts returns the current catalog snapshot.
func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListProducts(ctx)
}

// Settings returns the store profile, created with defaults on first access.
func (s *Service) Settings(ctx context.Context) (models.StoreSettings, error) {
	return s.repo.GetSettings(ctx)
}

// UpdateSettings merges the provided profile into the singleton. Owner only.
func (s *Service) UpdateSettings(ctx context.Context, settings models.StoreSettings) error {
	if err := account.RequireRole(ctx, models.RoleOwner); err != nil {
		return err
	}
	if strings.TrimSpace(settings.StoreName) == "" {
		return fmt.Errorf("%w: store name is required", ErrValidation)
	}
	if err := s.repo.UpsertSettings(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.logger.Info("store settings updated", zap.String("store", settings.StoreName))
	return nil
}
