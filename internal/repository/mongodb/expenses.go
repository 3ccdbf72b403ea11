package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rakapradana/printpos/internal/domain/models"
)

// CreateExpense inserts a new expense entry.
func (r *Repository) CreateExpense(ctx context.Context, expense models.Expense) error {
	if _, err := r.collection(expensesCollection).InsertOne(ctx, expense); err != nil {
		return storeErr("create expense", err)
	}
	return nil
}

// ListExpenses returns the full expenses snapshot, newest first.
func (r *Repository) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection(expensesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list expenses", err)
	}
	defer cursor.Close(ctx)

	var expenses []models.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, storeErr("decode expenses", err)
	}
	return expenses, nil
}

// DeleteExpense removes an expense permanently.
func (r *Repository) DeleteExpense(ctx context.Context, id string) error {
	res, err := r.collection(expensesCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete expense", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
