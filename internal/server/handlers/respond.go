package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/repository/mongodb"
	"github.com/rakapradana/printpos/internal/service/account"
	"github.com/rakapradana/printpos/internal/service/catalog"
	"github.com/rakapradana/printpos/internal/service/expense"
	"github.com/rakapradana/printpos/internal/service/order"
	"github.com/rakapradana/printpos/internal/service/payment"
)

func isValidation(err error) bool {
	return errors.Is(err, order.ErrValidation) ||
		errors.Is(err, payment.ErrValidation) ||
		errors.Is(err, expense.ErrValidation) ||
		errors.Is(err, catalog.ErrValidation) ||
		errors.Is(err, account.ErrValidation)
}

// respondError maps service errors onto HTTP statuses. Store failures come
// back as 502 so the client can show a transient retry message without
// losing its draft.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var storeErr *mongodb.StoreError

	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		c.JSON(401, gin.H{"error": "invalid username or password"})
	case errors.Is(err, account.ErrForbidden):
		c.JSON(403, gin.H{"error": "insufficient role"})
	case isValidation(err):
		c.JSON(400, gin.H{"error": err.Error()})
	case errors.Is(err, mongodb.ErrNotFound):
		c.JSON(404, gin.H{"error": "not found"})
	case errors.As(err, &storeErr):
		logger.Error("store operation failed", zap.Error(err))
		c.JSON(502, gin.H{"error": "store unavailable, please retry"})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "internal error"})
	}
}
