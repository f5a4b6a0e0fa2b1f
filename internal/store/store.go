// Package store declares the persistence contracts the HTTP layer is wired
// against. The mongodb subpackage is the production implementation; the
// memory subpackage backs tests.
package store

import (
	"context"
	"errors"

	"cakeshop-api/internal/models"
)

// ErrNotFound is returned when the requested document id does not exist.
var ErrNotFound = errors.New("not found")

type ProductStore interface {
	// List returns every product, or only those whose category exactly
	// equals the filter when it is non-empty. Storage order, no sort.
	List(ctx context.Context, category string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, input *models.ProductInput) (*models.Product, error)
	// Replace overwrites the mutable fields of the product with the given
	// id, preserving id and created_at.
	Replace(ctx context.Context, id string, input *models.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	// List returns all orders, newest first.
	List(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, input *models.OrderInput) (*models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type SettingsStore interface {
	// Get returns the singleton settings document, creating and persisting
	// the default one if the store is empty.
	Get(ctx context.Context) (*models.StoreSettings, error)
	// Replace upserts the singleton document.
	Replace(ctx context.Context, settings *models.StoreSettings) (*models.StoreSettings, error)
}

type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	Upsert(ctx context.Context, admin *models.Admin) error
}
