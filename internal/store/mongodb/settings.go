package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cakeshop-api/internal/models"
)

type SettingsStore struct {
	coll *mongo.Collection
}

func NewSettingsStore(db *mongo.Database) *SettingsStore {
	return &SettingsStore{coll: db.Collection("settings")}
}

func (s *SettingsStore) Get(ctx context.Context) (*models.StoreSettings, error) {
	var settings models.StoreSettings
	err := s.coll.FindOne(ctx, bson.M{"id": models.SettingsID}, options.FindOne().SetProjection(noObjectID)).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		defaults := models.DefaultSettings()
		if _, err := s.coll.InsertOne(ctx, defaults); err != nil {
			return nil, fmt.Errorf("insert default settings: %w", err)
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &settings, nil
}

func (s *SettingsStore) Replace(ctx context.Context, settings *models.StoreSettings) (*models.StoreSettings, error) {
	settings.ID = models.SettingsID

	_, err := s.coll.UpdateOne(
		ctx,
		bson.M{"id": models.SettingsID},
		bson.M{"$set": settings},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return settings, nil
}
