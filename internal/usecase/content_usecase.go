package usecase

import (
	"context"
	"fmt"
	"time"

	"surpriset-backend/internal/domain"
	"surpriset-backend/pkg/cache"
	"surpriset-backend/pkg/utils"
)

// ContentUsecase serves banners and packaging options. Public reads are
// cached; admin writes flush.
type ContentUsecase struct {
	contentRepo domain.ContentRepository
	cache       cache.CacheService
	cacheTTL    time.Duration
}

func NewContentUsecase(contentRepo domain.ContentRepository, cacheService cache.CacheService, cacheTTL time.Duration) *ContentUsecase {
	return &ContentUsecase{
		contentRepo: contentRepo,
		cache:       cacheService,
		cacheTTL:    cacheTTL,
	}
}

// --- Banners ---

func (uc *ContentUsecase) GetActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	if cached, found := uc.cache.Get("banners:active"); found {
		if banners, ok := cached.([]domain.Banner); ok {
			return banners, nil
		}
	}

	banners, err := uc.contentRepo.GetActiveBanners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}

	uc.cache.Set("banners:active", banners, uc.cacheTTL)
	return banners, nil
}

func (uc *ContentUsecase) GetAllBanners(ctx context.Context) ([]domain.Banner, error) {
	return uc.contentRepo.GetAllBanners(ctx)
}

func (uc *ContentUsecase) CreateBanner(ctx context.Context, b *domain.Banner) error {
	if b.Title == "" || b.Image == "" {
		return fmt.Errorf("%w: title and image are required", ErrValidation)
	}
	b.ID = utils.GenerateUUID()
	b.CreatedAt = time.Now()

	if err := uc.contentRepo.CreateBanner(ctx, b); err != nil {
		return fmt.Errorf("create banner: %w", err)
	}
	uc.cache.Delete("banners:active")
	return nil
}

func (uc *ContentUsecase) UpdateBanner(ctx context.Context, b *domain.Banner) error {
	if b.Title == "" || b.Image == "" {
		return fmt.Errorf("%w: title and image are required", ErrValidation)
	}
	if err := uc.contentRepo.UpdateBanner(ctx, b); err != nil {
		return err
	}
	uc.cache.Delete("banners:active")
	return nil
}

func (uc *ContentUsecase) DeleteBanner(ctx context.Context, id string) error {
	if err := uc.contentRepo.DeleteBanner(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete("banners:active")
	return nil
}

func (uc *ContentUsecase) ReorderBanners(ctx context.Context, updates []domain.BannerReorderItem) error {
	if len(updates) == 0 {
		return fmt.Errorf("%w: no reorder entries", ErrValidation)
	}
	if err := uc.contentRepo.ReorderBanners(ctx, updates); err != nil {
		return err
	}
	uc.cache.Delete("banners:active")
	return nil
}

// --- Packaging ---

func (uc *ContentUsecase) GetActivePackaging(ctx context.Context) ([]domain.Packaging, error) {
	if cached, found := uc.cache.Get("packaging:active"); found {
		if opts, ok := cached.([]domain.Packaging); ok {
			return opts, nil
		}
	}

	opts, err := uc.contentRepo.GetActivePackaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packaging: %w", err)
	}

	uc.cache.Set("packaging:active", opts, uc.cacheTTL)
	return opts, nil
}

func (uc *ContentUsecase) GetAllPackaging(ctx context.Context) ([]domain.Packaging, error) {
	return uc.contentRepo.GetAllPackaging(ctx)
}

func (uc *ContentUsecase) CreatePackaging(ctx context.Context, p *domain.Packaging) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	now := time.Now()
	p.ID = utils.GenerateUUID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := uc.contentRepo.CreatePackaging(ctx, p); err != nil {
		return fmt.Errorf("create packaging: %w", err)
	}
	uc.cache.Delete("packaging:active")
	return nil
}

func (uc *ContentUsecase) UpdatePackaging(ctx context.Context, p *domain.Packaging) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	p.UpdatedAt = time.Now()
	if err := uc.contentRepo.UpdatePackaging(ctx, p); err != nil {
		return err
	}
	uc.cache.Delete("packaging:active")
	return nil
}

func (uc *ContentUsecase) DeletePackaging(ctx context.Context, id string) error {
	if err := uc.contentRepo.DeletePackaging(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete("packaging:active")
	return nil
}
