package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rakapradana/printpos/internal/domain/models"
)

// CreateAccount inserts a new staff account.
func (r *Repository) CreateAccount(ctx context.Context, account models.Account) error {
	if _, err := r.collection(accountsCollection).InsertOne(ctx, account); err != nil {
		return storeErr("create account", err)
	}
	return nil
}

// ListAccounts returns the full accounts snapshot.
func (r *Repository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	cursor, err := r.collection(accountsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr("list accounts", err)
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, storeErr("decode accounts", err)
	}
	return accounts, nil
}

// GetAccountByUsername fetches an account by its login name.
func (r *Repository) GetAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	var account models.Account
	err := r.collection(accountsCollection).FindOne(ctx, bson.M{"username": username}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Account{}, ErrNotFound
		}
		return models.Account{}, storeErr("get account by username", err)
	}
	return account, nil
}

// GetAccountBySession resolves the account currently bound to a session
// identity.
func (r *Repository) GetAccountBySession(ctx context.Context, sessionID string) (models.Account, error) {
	var account models.Account
	err := r.collection(accountsCollection).FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Account{}, ErrNotFound
		}
		return models.Account{}, storeErr("get account by session", err)
	}
	return account, nil
}

// BindSession attaches a session identity to an account.
func (r *Repository) BindSession(ctx context.Context, accountID string, sessionID string) error {
	update := bson.M{"$set": bson.M{"session_id": sessionID}}
	res, err := r.collection(accountsCollection).UpdateOne(ctx, bson.M{"_id": accountID}, update)
	if err != nil {
		return storeErr("bind session", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReleaseSession clears the session identity from every account holding it.
// Together with BindSession this keeps at most one account per session.
func (r *Repository) ReleaseSession(ctx context.Context, sessionID string) error {
	update := bson.M{"$unset": bson.M{"session_id": ""}}
	if _, err := r.collection(accountsCollection).UpdateMany(ctx, bson.M{"session_id": sessionID}, update); err != nil {
		return storeErr("release session", err)
	}
	return nil
}

// DeleteAccount removes a staff account.
func (r *Repository) DeleteAccount(ctx context.Context, id string) error {
	res, err := r.collection(accountsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete account", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountAccounts reports how many accounts exist, used by the bootstrap seed
// check.
func (r *Repository) CountAccounts(ctx context.Context) (int64, error) {
	count, err := r.collection(accountsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeErr("count accounts", err)
	}
	return count, nil
}
