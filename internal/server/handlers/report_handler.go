package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/service/reporting"
)

// ReportHandler serves window aggregations and CSV exports.
type ReportHandler struct {
	reports *reporting.Service
	logger  *zap.Logger
}

// NewReportHandler constructs the HTTP adapter for the reporting service.
func NewReportHandler(reports *reporting.Service, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reports: reports, logger: logger}
}

func parsePeriod(c *gin.Context) (reporting.Period, bool) {
	period := reporting.Period(c.DefaultQuery("period", string(reporting.PeriodDaily)))
	if !period.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown period %q", period)})
		return "", false
	}
	return period, true
}

// Summary returns the aggregation for the requested period.
func (h *ReportHandler) Summary(c *gin.Context) {
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	summary, err := h.reports.Report(period)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Export streams the filtered window as a CSV attachment.
func (h *ReportHandler) Export(c *gin.Context) {
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	summary, err := h.reports.Report(period)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := reporting.WriteCSV(&buf, summary); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", reporting.Filename(period)))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
