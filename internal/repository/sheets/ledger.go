// Package sheets mirrors daily close summaries into a Google Sheets
// bookkeeping ledger, one appended row per close.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/rakapradana/printpos/internal/config"
	"github.com/rakapradana/printpos/internal/domain/models"
)

const ledgerRange = "Ledger!A:H"

// Ledger appends daily close rows to an external bookkeeping sheet.
type Ledger interface {
	AppendClose(ctx context.Context, close models.DailyClose) error
}

// GoogleSheetLedger implements Ledger with the official Sheets API.
type GoogleSheetLedger struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetLedger builds a Sheets-backed ledger from the configured
// service account credentials.
func NewGoogleSheetLedger(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetLedger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetLedger{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendClose appends one row with the close date and totals.
func (l *GoogleSheetLedger) AppendClose(ctx context.Context, close models.DailyClose) error {
	row := []interface{}{
		close.Date.Format("2006-01-02"),
		close.TotalSales,
		close.TotalExpenses,
		close.Profit,
		close.CashIn,
		close.CashFlow,
		close.OrderCount,
		close.ExpenseCount,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	call := l.service.Spreadsheets.Values.Append(l.spreadsheetID, ledgerRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append ledger row: %w", err)
	}

	l.logger.Debug("daily close appended to ledger", zap.Time("date", close.Date))
	return nil
}
