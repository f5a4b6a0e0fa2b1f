package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakeshop-api/internal/models"
	"cakeshop-api/internal/store"
)

func TestProductStoreFilter(t *testing.T) {
	s := NewProductStore()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.ProductInput{Name: "Brigadeiro", Category: "Doces", Price: 140})
	require.NoError(t, err)
	_, err = s.Create(ctx, &models.ProductInput{Name: "Bolo 20cm", Category: "Bolos Redondos", Price: 170})
	require.NoError(t, err)
	_, err = s.Create(ctx, &models.ProductInput{Name: "Beijinho", Category: "Doces", Price: 140})
	require.NoError(t, err)

	doces, err := s.List(ctx, "Doces")
	require.NoError(t, err)
	require.Len(t, doces, 2)
	assert.Equal(t, "Brigadeiro", doces[0].Name)
	assert.Equal(t, "Beijinho", doces[1].Name)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := s.List(ctx, "doces")
	require.NoError(t, err)
	assert.Empty(t, none, "category match is exact, not case-insensitive")
}

func TestProductStoreReplacePreservesIdentity(t *testing.T) {
	s := NewProductStore()
	ctx := context.Background()

	created, err := s.Create(ctx, &models.ProductInput{Name: "Bolo 10cm", Category: "Bolos Redondos", Price: 100})
	require.NoError(t, err)

	replaced, err := s.Replace(ctx, created.ID, &models.ProductInput{Name: "Bolo 10cm Festivo", Category: "Bolos Redondos", Price: 110})
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, created.CreatedAt, replaced.CreatedAt)
	assert.Equal(t, "Bolo 10cm Festivo", replaced.Name)
	assert.Equal(t, 110.0, replaced.Price)
}

func TestProductStoreNotFound(t *testing.T) {
	s := NewProductStore()
	ctx := context.Background()

	_, err := s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Replace(ctx, "missing", &models.ProductInput{Name: "x", Category: "y"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "missing"), store.ErrNotFound)
}

func TestOrderStoreNewestFirst(t *testing.T) {
	s := NewOrderStore()
	ctx := context.Background()

	input := &models.OrderInput{
		CustomerName:    "Maria",
		CustomerPhone:   "1",
		CustomerAddress: "Rua A",
		Items:           []map[string]interface{}{{"name": "Bolo"}},
		Total:           95,
		PaymentMethod:   "pix",
	}

	first, err := s.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, first.Status)

	time.Sleep(5 * time.Millisecond)
	second, err := s.Create(ctx, input)
	require.NoError(t, err)

	orders, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrderStoreStatusAndDelete(t *testing.T) {
	s := NewOrderStore()
	ctx := context.Background()

	order, err := s.Create(ctx, &models.OrderInput{
		CustomerName:    "Maria",
		CustomerPhone:   "1",
		CustomerAddress: "Rua A",
		Items:           []map[string]interface{}{{"name": "Bolo"}},
		PaymentMethod:   "pix",
	})
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(ctx, order.ID, "Em produção"))

	orders, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Em produção", orders[0].Status)

	assert.ErrorIs(t, s.UpdateStatus(ctx, "missing", "x"), store.ErrNotFound)

	require.NoError(t, s.Delete(ctx, order.ID))
	assert.ErrorIs(t, s.Delete(ctx, order.ID), store.ErrNotFound)
}

func TestSettingsStoreCreatesDefaultOnce(t *testing.T) {
	s := NewSettingsStore()
	ctx := context.Background()

	first, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SettingsID, first.ID)
	assert.Equal(t, 5.0, first.DeliveryFee)

	second, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	updated, err := s.Replace(ctx, &models.StoreSettings{DeliveryFee: 7.5, PixKey: "outra@chave.com"})
	require.NoError(t, err)
	assert.Equal(t, models.SettingsID, updated.ID, "singleton key is enforced on replace")

	after, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7.5, after.DeliveryFee)
}

func TestAdminStore(t *testing.T) {
	s := NewAdminStore()
	ctx := context.Background()

	_, err := s.GetByUsername(ctx, "admin")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Upsert(ctx, &models.Admin{Username: "admin", HashedPassword: "h1", Role: "admin"}))
	require.NoError(t, s.Upsert(ctx, &models.Admin{Username: "admin", HashedPassword: "h2", Role: "admin"}))

	admin, err := s.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "h2", admin.HashedPassword, "upsert replaces the stored hash")
}
