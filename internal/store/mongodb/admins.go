package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cakeshop-api/internal/models"
	"cakeshop-api/internal/store"
)

// AdminStore reads the identity written by cmd/adminctl. The collection holds
// a single administrator; there is no multi-user support.
type AdminStore struct {
	coll *mongo.Collection
}

func NewAdminStore(db *mongo.Database) *AdminStore {
	return &AdminStore{coll: db.Collection("users")}
}

func (s *AdminStore) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := s.coll.FindOne(ctx, bson.M{"username": username}, options.FindOne().SetProjection(noObjectID)).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func (s *AdminStore) Upsert(ctx context.Context, admin *models.Admin) error {
	_, err := s.coll.UpdateOne(
		ctx,
		bson.M{"username": admin.Username},
		bson.M{"$set": admin},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}
	return nil
}
