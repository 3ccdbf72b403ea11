package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/service/account"
)

// SessionHeader carries the opaque session identity supplied by the external
// auth collaborator.
const SessionHeader = "X-Session-Id"

// AuthHandler handles login and logout.
type AuthHandler struct {
	accounts *account.Service
	logger   *zap.Logger
}

// NewAuthHandler constructs the HTTP adapter for the account service.
func NewAuthHandler(accounts *account.Service, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{accounts: accounts, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and binds the caller's session identity to the
// account.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	acc, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password, c.GetHeader(SessionHeader))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, acc)
}

// Logout releases the caller's session binding.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.accounts.Logout(c.Request.Context(), c.GetHeader(SessionHeader)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
