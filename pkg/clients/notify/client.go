// Package notify posts daily close summaries to a configurable webhook, for
// shops that pipe them into a chat channel or a bookkeeping tool.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rakapradana/printpos/internal/domain/models"
)

// Client delivers close-of-day notifications.
type Client interface {
	SendDailyClose(ctx context.Context, close models.DailyClose) error
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewWebhookClient builds a webhook notifier targeting the given URL.
func NewWebhookClient(url string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        url,
	}
}

type dailyClosePayload struct {
	Event   string            `json:"event"`
	Message string            `json:"message"`
	Close   models.DailyClose `json:"close"`
}

// SendDailyClose posts the close summary as JSON. Any non-2xx response is an
// error.
func (c *WebhookClient) SendDailyClose(ctx context.Context, close models.DailyClose) error {
	payload := dailyClosePayload{
		Event: "daily_close",
		Message: fmt.Sprintf("Tutup buku %s: penjualan %.0f, pengeluaran %.0f, laba %.0f, arus kas %.0f",
			close.Date.Format("2006-01-02"), close.TotalSales, close.TotalExpenses, close.Profit, close.CashFlow),
		Close: close,
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send daily close webhook: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("webhook rejected daily close: status=%d body=%s", resp.StatusCode(), resp.String())
	}

	return nil
}
