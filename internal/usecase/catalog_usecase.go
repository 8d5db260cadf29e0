package usecase

import (
	"context"
	"fmt"
	"time"

	"surpriset-backend/internal/domain"
	"surpriset-backend/pkg/cache"
	"surpriset-backend/pkg/logger"
	"surpriset-backend/pkg/utils"
)

// CatalogUsecase serves the public product catalog and its admin CRUD.
// Read paths go through the cache; every admin write flushes it.
type CatalogUsecase struct {
	productRepo domain.ProductRepository
	cache       cache.CacheService
	cacheTTL    time.Duration
}

func NewCatalogUsecase(productRepo domain.ProductRepository, cacheService cache.CacheService, cacheTTL time.Duration) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo: productRepo,
		cache:       cacheService,
		cacheTTL:    cacheTTL,
	}
}

type ProductListResult struct {
	Products   []domain.Product  `json:"products"`
	Pagination domain.Pagination `json:"pagination"`
}

func listCacheKey(f domain.ProductFilter) string {
	featured := ""
	if f.IsFeatured != nil {
		featured = fmt.Sprintf("%t", *f.IsFeatured)
	}
	return fmt.Sprintf("products:%s:%v:%v:%v:%v:%s:%s:%d:%d:%s",
		f.Query, f.MinPrice, f.MaxPrice, f.Statuses, f.Types, f.Categories, f.Sort, f.Limit, f.Offset, featured)
}

func (uc *CatalogUsecase) ListProducts(ctx context.Context, filter domain.ProductFilter) (*ProductListResult, error) {
	key := listCacheKey(filter)
	if cached, found := uc.cache.Get(key); found {
		if result, ok := cached.(*ProductListResult); ok {
			return result, nil
		}
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	products, total, err := uc.productRepo.GetProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	pages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		pages++
	}

	result := &ProductListResult{
		Products: products,
		Pagination: domain.Pagination{
			Page:       filter.Offset/filter.Limit + 1,
			Limit:      filter.Limit,
			TotalItems: total,
			TotalPages: pages,
		},
	}

	uc.cache.Set(key, result, uc.cacheTTL)
	return result, nil
}

func (uc *CatalogUsecase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	key := "product:" + id
	if cached, found := uc.cache.Get(key); found {
		if p, ok := cached.(*domain.Product); ok {
			return p, nil
		}
	}

	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(key, product, uc.cacheTTL)
	return product, nil
}

func (uc *CatalogUsecase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if cached, found := uc.cache.Get("categories"); found {
		if cats, ok := cached.([]domain.Category); ok {
			return cats, nil
		}
	}

	cats, err := uc.productRepo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	uc.cache.Set("categories", cats, uc.cacheTTL)
	return cats, nil
}

// --- Admin ---

func validateProduct(p *domain.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if len(p.CategoryIDs) > 3 {
		return fmt.Errorf("%w: a product belongs to at most 3 categories", ErrValidation)
	}
	if !contains(domain.ProductStatuses, p.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, p.Status)
	}
	if !contains(domain.ProductTypes, p.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrValidation, p.Type)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func (uc *CatalogUsecase) CreateProduct(ctx context.Context, p *domain.Product) error {
	if p.Status == "" {
		p.Status = domain.ProductStatusInStock
	}
	if p.Type == "" {
		p.Type = domain.ProductTypeProduct
	}
	if err := validateProduct(p); err != nil {
		return err
	}

	now := time.Now()
	p.ID = utils.GenerateUUID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := uc.productRepo.CreateProduct(ctx, p); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	uc.cache.Flush()
	logger.Info().Str("product_id", p.ID).Str("sku", p.SKU).Msg("product created")
	return nil
}

func (uc *CatalogUsecase) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()

	if err := uc.productRepo.UpdateProduct(ctx, p); err != nil {
		return err
	}

	uc.cache.Flush()
	return nil
}

func (uc *CatalogUsecase) UpdateProductStatus(ctx context.Context, id, status string) error {
	if !contains(domain.ProductStatuses, status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if err := uc.productRepo.UpdateProductStatus(ctx, id, status); err != nil {
		return err
	}
	uc.cache.Flush()
	return nil
}

func (uc *CatalogUsecase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.productRepo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	uc.cache.Flush()
	logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (uc *CatalogUsecase) CreateCategory(ctx context.Context, c *domain.Category) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	now := time.Now()
	c.ID = utils.GenerateUUID()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := uc.productRepo.CreateCategory(ctx, c); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	uc.cache.Flush()
	return nil
}

func (uc *CatalogUsecase) UpdateCategory(ctx context.Context, c *domain.Category) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	c.UpdatedAt = time.Now()
	if err := uc.productRepo.UpdateCategory(ctx, c); err != nil {
		return err
	}
	uc.cache.Flush()
	return nil
}

func (uc *CatalogUsecase) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.productRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	uc.cache.Flush()
	return nil
}
