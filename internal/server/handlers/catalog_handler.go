package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/service/catalog"
)

// CatalogHandler exposes product and store profile administration over HTTP.
type CatalogHandler struct {
	catalog *catalog.Service
	logger  *zap.Logger
}

// NewCatalogHandler constructs the HTTP adapter for the catalog service.
func NewCatalogHandler(catalogSvc *catalog.Service, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{catalog: catalogSvc, logger: logger}
}

type productRequest struct {
	Name      string                   `json:"name"`
	UnitPrice float64                  `json:"unitPrice"`
	Method    models.CalculationMethod `json:"method"`
}

// ListProducts returns the current catalog snapshot.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct adds a catalog entry.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.catalog.CreateProduct(c.Request.Context(), catalog.ProductParams{
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Method:    req.Method,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct rewrites a catalog entry.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), catalog.ProductParams{
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Method:    req.Method,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteProduct removes a catalog entry.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Settings returns the store profile.
func (h *CatalogHandler) Settings(c *gin.Context) {
	settings, err := h.catalog.Settings(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings merges changes into the store profile.
func (h *CatalogHandler) UpdateSettings(c *gin.Context) {
	var settings models.StoreSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.catalog.UpdateSettings(c.Request.Context(), settings); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
