package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/service/expense"
)

// ExpenseHandler exposes expense tracking over HTTP.
type ExpenseHandler struct {
	expenses *expense.Service
	logger   *zap.Logger
}

// NewExpenseHandler constructs the HTTP adapter for the expense service.
func NewExpenseHandler(expenses *expense.Service, logger *zap.Logger) *ExpenseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpenseHandler{expenses: expenses, logger: logger}
}

type expenseRequest struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// List returns the current expenses snapshot.
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenses.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Create records a new expense.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.expenses.Add(c.Request.Context(), req.Description, req.Cost)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Delete removes an expense.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.expenses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
