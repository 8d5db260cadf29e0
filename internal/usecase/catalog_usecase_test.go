package usecase

import (
	"context"
	"testing"
	"time"

	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogGetProductCaches(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(catalogProduct("p1", 100))
	uc := NewCatalogUsecase(repo, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	first, err := uc.GetProduct(ctx, "p1")
	require.NoError(t, err)

	// Repo change invisible until the cache is flushed.
	repo.products["p1"].Price = 999

	second, err := uc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, first.Price, second.Price)
}

func TestCatalogWriteFlushesCache(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(catalogProduct("p1", 100))
	uc := NewCatalogUsecase(repo, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	_, err := uc.GetProduct(ctx, "p1")
	require.NoError(t, err)

	require.NoError(t, uc.UpdateProductStatus(ctx, "p1", domain.ProductStatusOutOfStock))

	fresh, err := uc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusOutOfStock, fresh.Status)
}

func TestCatalogProductValidation(t *testing.T) {
	ctx := context.Background()
	uc := NewCatalogUsecase(newFakeProductRepo(), cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	cases := []*domain.Product{
		{Name: "", Price: 100},
		{Name: "No price"},
		{Name: "Negative", Price: -5},
		{Name: "Too many cats", Price: 100, CategoryIDs: []string{"a", "b", "c", "d"}},
		{Name: "Bad status", Price: 100, Status: "available"},
		{Name: "Bad type", Price: 100, Type: "kit"},
	}
	for _, p := range cases {
		err := uc.CreateProduct(ctx, p)
		assert.ErrorIs(t, err, ErrValidation, "product %q", p.Name)
	}

	valid := &domain.Product{Name: "Candle", Price: 450}
	require.NoError(t, uc.CreateProduct(ctx, valid))
	assert.NotEmpty(t, valid.ID)
	assert.Equal(t, domain.ProductStatusInStock, valid.Status)
	assert.Equal(t, domain.ProductTypeProduct, valid.Type)
}

func TestCatalogListPaginationMeta(t *testing.T) {
	ctx := context.Background()
	uc := NewCatalogUsecase(
		newFakeProductRepo(catalogProduct("p1", 100), catalogProduct("p2", 200), catalogProduct("p3", 300)),
		cache.NewMemoryCache(time.Minute, time.Minute), time.Minute,
	)

	result, err := uc.ListProducts(ctx, domain.ProductFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Pagination.TotalItems)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.Equal(t, 1, result.Pagination.Page)
}
