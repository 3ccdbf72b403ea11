package mongodb

import (
	"context"
	"fmt"

	"github.com/rakapradana/printpos/internal/domain/models"
)

// SaveDailyClose persists an end-of-day summary document.
func (r *Repository) SaveDailyClose(ctx context.Context, close models.DailyClose) error {
	if _, err := r.collection(dailyCloseCollection).InsertOne(ctx, close); err != nil {
		return fmt.Errorf("failed to insert daily close: %w", err)
	}
	return nil
}
