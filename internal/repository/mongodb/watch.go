package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/rakapradana/printpos/internal/domain/models"
)

// WatchOrders delivers the current full orders snapshot immediately and a
// fresh snapshot after every committed change. The channel closes when ctx is
// cancelled. Delivery is at-least-once per change: consecutive changes may be
// coalesced into a single snapshot, but every subscriber eventually observes
// a state that includes each committed write.
func (r *Repository) WatchOrders(ctx context.Context, logger *zap.Logger) (<-chan []models.Order, error) {
	return watchSnapshots(ctx, r.collection(ordersCollection), r.ListOrders, logger)
}

// WatchExpenses mirrors WatchOrders for the expenses collection.
func (r *Repository) WatchExpenses(ctx context.Context, logger *zap.Logger) (<-chan []models.Expense, error) {
	return watchSnapshots(ctx, r.collection(expensesCollection), r.ListExpenses, logger)
}

func watchSnapshots[T any](ctx context.Context, coll *mongo.Collection, fetch func(context.Context) ([]T, error), logger *zap.Logger) (<-chan []T, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	stream, err := coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, storeErr("watch "+coll.Name(), err)
	}

	out := make(chan []T, 1)

	push := func() {
		snapshot, err := fetch(ctx)
		if err != nil {
			logger.Warn("snapshot refresh failed", zap.String("collection", coll.Name()), zap.Error(err))
			return
		}
		// Drop the stale pending snapshot so a slow consumer always reads
		// the newest state.
		select {
		case <-out:
		default:
		}
		out <- snapshot
	}

	push()

	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			push()
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			logger.Error("change stream stopped", zap.String("collection", coll.Name()), zap.Error(err))
		}
	}()

	return out, nil
}
