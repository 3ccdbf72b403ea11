package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/repository/mongodb"
	"github.com/rakapradana/printpos/internal/server/handlers"
	"github.com/rakapradana/printpos/internal/service/account"
)

// Handlers bundles the HTTP adapters wired into the engine.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Orders   *handlers.OrderHandler
	Payments *handlers.PaymentHandler
	Expenses *handlers.ExpenseHandler
	Reports  *handlers.ReportHandler
	Catalog  *handlers.CatalogHandler
	Accounts *handlers.AccountHandler
}

// New wires the Gin engine with required routes and middlewares. Route-level
// role gates mirror the menu matrix; the engines re-check authorization
// themselves.
func New(h Handlers, accounts *account.Service, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/login", h.Auth.Login)

	authed := api.Group("")
	authed.Use(sessionMiddleware(accounts, logger))

	authed.POST("/logout", h.Auth.Logout)

	orders := authed.Group("/orders")
	orders.GET("", h.Orders.List)
	orders.POST("", h.Orders.Create)
	orders.PUT("/:id", h.Orders.Update)
	orders.DELETE("/:id", h.Orders.Delete)
	orders.GET("/search", h.Orders.Search)
	orders.GET("/:id/receipt", h.Orders.Receipt)
	orders.POST("/:id/payment", requireRole(models.RoleCashier, models.RoleOwner), h.Payments.Settle)

	expenses := authed.Group("/expenses", requireRole(models.RoleCashier, models.RoleSupervisor, models.RoleOwner))
	expenses.GET("", h.Expenses.List)
	expenses.POST("", h.Expenses.Create)
	expenses.DELETE("/:id", h.Expenses.Delete)

	reports := authed.Group("/reports", requireRole(models.RoleSupervisor, models.RoleOwner))
	reports.GET("", h.Reports.Summary)
	reports.GET("/export", h.Reports.Export)

	products := authed.Group("/products")
	products.GET("", h.Catalog.ListProducts)
	products.POST("", h.Catalog.CreateProduct)
	products.PUT("/:id", h.Catalog.UpdateProduct)
	products.DELETE("/:id", h.Catalog.DeleteProduct)

	accountsGroup := authed.Group("/accounts", requireRole(models.RoleOwner))
	accountsGroup.GET("", h.Accounts.List)
	accountsGroup.POST("", h.Accounts.Create)
	accountsGroup.DELETE("/:id", h.Accounts.Delete)

	settings := authed.Group("/settings")
	settings.GET("", h.Catalog.Settings)
	settings.PUT("", requireRole(models.RoleOwner), h.Catalog.UpdateSettings)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// sessionMiddleware resolves the opaque session identity to its bound account
// and stores the actor in the request context.
func sessionMiddleware(accounts *account.Service, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		sessionID := c.GetHeader(handlers.SessionHeader)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session identity"})
			return
		}

		actor, err := accounts.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, mongodb.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
				return
			}
			logger.Error("session resolution failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "store unavailable, please retry"})
			return
		}

		c.Request = c.Request.WithContext(account.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

func requireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := account.RequireRole(c.Request.Context(), roles...); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
