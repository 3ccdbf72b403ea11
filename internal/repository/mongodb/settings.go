package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rakapradana/printpos/internal/domain/models"
)

type settingsDoc struct {
	ID string `bson:"_id"`
	models.StoreSettings `bson:",inline"`
}

// GetSettings reads the singleton store profile, creating it with defaults on
// first access.
func (r *Repository) GetSettings(ctx context.Context) (models.StoreSettings, error) {
	var doc settingsDoc
	err := r.collection(settingsCollection).FindOne(ctx, bson.M{"_id": settingsSingletonID}).Decode(&doc)
	if err == nil {
		return doc.StoreSettings, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.StoreSettings{}, storeErr("get settings", err)
	}

	defaults := models.DefaultStoreSettings()
	if err := r.UpsertSettings(ctx, defaults); err != nil {
		return models.StoreSettings{}, err
	}
	return defaults, nil
}

// UpsertSettings merges the provided profile into the singleton document.
func (r *Repository) UpsertSettings(ctx context.Context, settings models.StoreSettings) error {
	update := bson.M{"$set": settings}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection(settingsCollection).UpdateOne(ctx, bson.M{"_id": settingsSingletonID}, update, opts); err != nil {
		return storeErr("upsert settings", err)
	}
	return nil
}
