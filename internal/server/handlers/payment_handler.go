package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/service/payment"
)

// PaymentHandler exposes the settlement engine over HTTP.
type PaymentHandler struct {
	payments *payment.Service
	logger   *zap.Logger
}

// NewPaymentHandler constructs the HTTP adapter for the settlement service.
func NewPaymentHandler(payments *payment.Service, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{payments: payments, logger: logger}
}

type settleRequest struct {
	PaidAmount float64 `json:"paidAmount"`
}

// Settle records a payment against one order and returns the updated order
// with the derived change or outstanding balance.
func (h *PaymentHandler) Settle(c *gin.Context) {
	var req settleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.payments.Settle(c.Request.Context(), c.Param("id"), req.PaidAmount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
