package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cakeshop-api/internal/models"
	"cakeshop-api/internal/store"
)

// Internal Mongo object ids never leave the store; every read projects _id out.
var noObjectID = bson.M{"_id": 0}

type ProductStore struct {
	coll *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{coll: db.Collection("products")}
}

func (s *ProductStore) List(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cur, err := s.coll.Find(ctx, filter, options.Find().SetProjection(noObjectID))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := make([]models.Product, 0)
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.coll.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(noObjectID)).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

func (s *ProductStore) Create(ctx context.Context, input *models.ProductInput) (*models.Product, error) {
	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Size:        input.Size,
		Servings:    input.Servings,
		ImageURL:    input.ImageURL,
		Featured:    input.Featured,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := s.coll.InsertOne(ctx, product); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

func (s *ProductStore) Replace(ctx context.Context, id string, input *models.ProductInput) (*models.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price,
		"category":    input.Category,
		"subcategory": input.Subcategory,
		"size":        input.Size,
		"servings":    input.Servings,
		"image_url":   input.ImageURL,
		"featured":    input.Featured,
	}}

	res, err := s.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, store.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
