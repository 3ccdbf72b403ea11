package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/service/catalog"
	"github.com/rakapradana/printpos/internal/service/order"
	"github.com/rakapradana/printpos/internal/service/pricing"
)

// OrderHandler exposes the order lifecycle over HTTP.
type OrderHandler struct {
	orders  *order.Service
	catalog *catalog.Service
	logger  *zap.Logger
}

// NewOrderHandler constructs the HTTP adapter for the order service.
func NewOrderHandler(orders *order.Service, catalogSvc *catalog.Service, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{orders: orders, catalog: catalogSvc, logger: logger}
}

type orderRequest struct {
	CustomerName string             `json:"customerName"`
	Items        []models.OrderItem `json:"items"`
}

// List returns the current orders snapshot.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Create saves a new order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.orders.Create(c.Request.Context(), order.CreateParams{
		CustomerName: req.CustomerName,
		Items:        req.Items,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update edits an existing order's customer and items.
func (h *OrderHandler) Update(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.orders.Edit(c.Request.Context(), c.Param("id"), order.CreateParams{
		CustomerName: req.CustomerName,
		Items:        req.Items,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes an order.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search looks up orders by id or customer name for the settlement flow.
func (h *OrderHandler) Search(c *gin.Context) {
	matches, err := h.orders.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// Receipt renders the printable receipt for an order.
func (h *OrderHandler) Receipt(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.orders.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	settings, err := h.catalog.Settings(ctx)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.String(http.StatusOK, order.Receipt(o, pricing.NewCatalog(products), settings))
}
