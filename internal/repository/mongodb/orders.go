package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rakapradana/printpos/internal/domain/models"
)

// CreateOrder inserts a new order document. The order id doubles as the
// document id, so a generated-id collision surfaces as ErrDuplicateID.
func (r *Repository) CreateOrder(ctx context.Context, order models.Order) error {
	if _, err := r.collection(ordersCollection).InsertOne(ctx, order); err != nil {
		return storeErr("create order", err)
	}
	return nil
}

// GetOrder fetches a single order by id.
func (r *Repository) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	err := r.collection(ordersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, storeErr("get order", err)
	}
	return order, nil
}

// ListOrders returns the full orders snapshot, newest first.
func (r *Repository) ListOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection(ordersCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list orders", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, storeErr("decode orders", err)
	}
	return orders, nil
}

// UpdateOrderDetails rewrites the editable fields of an order. Payment fields
// are deliberately left untouched; they belong to the settlement flow.
func (r *Repository) UpdateOrderDetails(ctx context.Context, id string, customerName string, items []models.OrderItem, totalCost float64, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"customer_name": customerName,
		"items":         items,
		"total_cost":    totalCost,
		"updated_at":    updatedAt,
	}}
	res, err := r.collection(ordersCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return storeErr("update order", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateOrderPayment records a settlement on an order.
func (r *Repository) UpdateOrderPayment(ctx context.Context, id string, paidAmount float64, status models.PaymentStatus, method string, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"paid_amount":    paidAmount,
		"payment_status": status,
		"payment_method": method,
		"updated_at":     updatedAt,
	}}
	res, err := r.collection(ordersCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return storeErr("update order payment", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOrder removes an order permanently.
func (r *Repository) DeleteOrder(ctx context.Context, id string) error {
	res, err := r.collection(ordersCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete order", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
