package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ordersCollection     = "orders"
	productsCollection   = "products"
	expensesCollection   = "expenses"
	accountsCollection   = "users"
	settingsCollection   = "store_settings"
	dailyCloseCollection = "daily_closes"
	settingsSingletonID  = "main"
)

// ErrNotFound is returned when a referenced document no longer exists.
var ErrNotFound = errors.New("document not found")

// ErrDuplicateID is returned when an insert collides with an existing id.
var ErrDuplicateID = errors.New("duplicate document id")

// StoreError wraps a driver failure so callers can tell connectivity and
// permission problems apart from domain errors.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, ErrDuplicateID)
	}
	return &StoreError{Op: op, Err: err}
}

// Repository is the MongoDB-backed document store behind all collections.
type Repository struct {
	client *mongo.Client
	dbName string
}

// NewRepository connects to MongoDB and verifies the connection.
func NewRepository(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{client: client, dbName: dbName}, nil
}

func (r *Repository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// Close disconnects from MongoDB.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
