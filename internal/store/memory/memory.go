// Package memory holds map-backed store implementations. They exist for the
// test suites and local experiments; the server wires the mongodb package.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"cakeshop-api/internal/models"
	"cakeshop-api/internal/store"
)

type ProductStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: make([]models.Product, 0)}
}

func (s *ProductStore) List(_ context.Context, category string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProductStore) GetByID(_ context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *ProductStore) Create(_ context.Context, input *models.ProductInput) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := models.Product{
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
	s.products = append(s.products, product)
	return &product, nil
}

func (s *ProductStore) Replace(_ context.Context, id string, input *models.ProductInput) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		p.Name = input.Name
		p.Description = input.Description
		p.Price = input.Price
		p.Category = input.Category
		p.Subcategory = input.Subcategory
		p.Size = input.Size
		p.Servings = input.Servings
		p.ImageURL = input.ImageURL
		p.Featured = input.Featured
		copied := *p
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (s *ProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make([]models.Order, 0)}
}

func (s *OrderStore) List(_ context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *OrderStore) Create(_ context.Context, input *models.OrderInput) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.Order{
		ID:              uuid.NewString(),
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		Items:           input.Items,
		Subtotal:        input.Subtotal,
		DeliveryFee:     input.DeliveryFee,
		Total:           input.Total,
		PaymentMethod:   input.PaymentMethod,
		PaymentDetails:  input.PaymentDetails,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	s.orders = append(s.orders, order)
	return &order, nil
}

func (s *OrderStore) UpdateStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *OrderStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type SettingsStore struct {
	mu       sync.Mutex
	settings *models.StoreSettings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

func (s *SettingsStore) Get(_ context.Context) (*models.StoreSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		s.settings = models.DefaultSettings()
	}
	copied := *s.settings
	return &copied, nil
}

func (s *SettingsStore) Replace(_ context.Context, settings *models.StoreSettings) (*models.StoreSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings.ID = models.SettingsID
	copied := *settings
	s.settings = &copied
	return settings, nil
}

type AdminStore struct {
	mu     sync.RWMutex
	admins map[string]models.Admin
}

func NewAdminStore() *AdminStore {
	return &AdminStore{admins: make(map[string]models.Admin)}
}

func (s *AdminStore) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin, ok := s.admins[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &admin, nil
}

func (s *AdminStore) Upsert(_ context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.admins[admin.Username] = *admin
	return nil
}
