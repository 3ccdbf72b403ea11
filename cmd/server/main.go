package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/config"
	"github.com/rakapradana/printpos/internal/repository/mongodb"
	"github.com/rakapradana/printpos/internal/repository/sheets"
	"github.com/rakapradana/printpos/internal/scheduler"
	"github.com/rakapradana/printpos/internal/server/handlers"
	"github.com/rakapradana/printpos/internal/server/router"
	accountsvc "github.com/rakapradana/printpos/internal/service/account"
	catalogsvc "github.com/rakapradana/printpos/internal/service/catalog"
	expensesvc "github.com/rakapradana/printpos/internal/service/expense"
	ordersvc "github.com/rakapradana/printpos/internal/service/order"
	paymentsvc "github.com/rakapradana/printpos/internal/service/payment"
	reportingsvc "github.com/rakapradana/printpos/internal/service/reporting"
	"github.com/rakapradana/printpos/pkg/clients/notify"
	"github.com/rakapradana/printpos/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repo, err := mongodb.NewRepository(ctx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	accountSvc := accountsvc.NewService(repo, baseLogger.Named("svc.account"))
	if err := accountSvc.SeedDefaultOwner(ctx, cfg.Bootstrap.OwnerPassword); err != nil {
		baseLogger.Fatal("failed to seed default owner", zap.Error(err))
	}

	catalogSvc := catalogsvc.NewService(repo, baseLogger.Named("svc.catalog"))
	orderSvc := ordersvc.NewService(repo, repo, baseLogger.Named("svc.order"))
	paymentSvc := paymentsvc.NewService(repo, baseLogger.Named("svc.payment"))
	expenseSvc := expensesvc.NewService(repo, baseLogger.Named("svc.expense"))
	reportingSvc := reportingsvc.NewService(cfg.Location(), baseLogger.Named("svc.reporting"))

	// Prime the reporting cache, then keep it live off the change streams.
	initialOrders, err := repo.ListOrders(ctx)
	if err != nil {
		baseLogger.Fatal("failed to load orders snapshot", zap.Error(err))
	}
	initialExpenses, err := repo.ListExpenses(ctx)
	if err != nil {
		baseLogger.Fatal("failed to load expenses snapshot", zap.Error(err))
	}
	reportingSvc.SetSnapshots(initialOrders, initialExpenses)

	orderFeed, err := repo.WatchOrders(ctx, baseLogger.Named("watch.orders"))
	if err != nil {
		baseLogger.Fatal("failed to watch orders", zap.Error(err))
	}
	expenseFeed, err := repo.WatchExpenses(ctx, baseLogger.Named("watch.expenses"))
	if err != nil {
		baseLogger.Fatal("failed to watch expenses", zap.Error(err))
	}
	go reportingSvc.Run(ctx, orderFeed, expenseFeed)

	var ledger sheets.Ledger
	if cfg.Sheets.SpreadsheetID != "" {
		ledger, err = sheets.NewGoogleSheetLedger(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets ledger", zap.Error(err))
		}
		baseLogger.Info("sheets ledger enabled")
	}

	var notifier notify.Client
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookClient(cfg.Notify.WebhookURL)
		baseLogger.Info("daily close webhook enabled")
	}

	sched := scheduler.New(cfg.Reporting.CloseSchedule, cfg.Location(), reportingSvc, repo, ledger, notifier, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	h := router.Handlers{
		Auth:     handlers.NewAuthHandler(accountSvc, baseLogger.Named("handlers.auth")),
		Orders:   handlers.NewOrderHandler(orderSvc, catalogSvc, baseLogger.Named("handlers.orders")),
		Payments: handlers.NewPaymentHandler(paymentSvc, baseLogger.Named("handlers.payments")),
		Expenses: handlers.NewExpenseHandler(expenseSvc, baseLogger.Named("handlers.expenses")),
		Reports:  handlers.NewReportHandler(reportingSvc, baseLogger.Named("handlers.reports")),
		Catalog:  handlers.NewCatalogHandler(catalogSvc, baseLogger.Named("handlers.catalog")),
		Accounts: handlers.NewAccountHandler(accountSvc, baseLogger.Named("handlers.accounts")),
	}
	engine := router.New(h, accountSvc, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
