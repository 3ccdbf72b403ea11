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

// CreateProduct inserts a new catalog entry.
func (r *Repository) CreateProduct(ctx context.Context, product models.Product) error {
	if _, err := r.collection(productsCollection).InsertOne(ctx, product); err != nil {
		return storeErr("create product", err)
	}
	return nil
}

// GetProduct fetches a product by id.
func (r *Repository) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := r.collection(productsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, storeErr("get product", err)
	}
	return product, nil
}

// ListProducts returns the full catalog snapshot ordered by name.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection(productsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list products", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, storeErr("decode products", err)
	}
	return products, nil
}

// UpdateProduct rewrites a product's name, price and method. Historical order
// totals are snapshots and are not affected.
func (r *Repository) UpdateProduct(ctx context.Context, id string, name string, unitPrice float64, method models.CalculationMethod, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"name":       name,
		"unit_price": unitPrice,
		"method":     method,
		"updated_at": updatedAt,
	}}
	res, err := r.collection(productsCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return storeErr("update product", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product from the catalog.
func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.collection(productsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete product", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
