package usecase

import (
	"context"

	"surpriset-backend/internal/domain"
	"surpriset-backend/pkg/cache"
)

// LikeUsecase toggles per-session product likes. The product row's
// likes_count is refreshed by recount inside the repository, so the popular
// sort can never drift from the likes table.
type LikeUsecase struct {
	likeRepo    domain.LikeRepository
	productRepo domain.ProductRepository
	cache       cache.CacheService
}

func NewLikeUsecase(likeRepo domain.LikeRepository, productRepo domain.ProductRepository, cacheService cache.CacheService) *LikeUsecase {
	return &LikeUsecase{
		likeRepo:    likeRepo,
		productRepo: productRepo,
		cache:       cacheService,
	}
}

type LikeResult struct {
	ProductID  string `json:"productId"`
	Liked      bool   `json:"liked"`
	LikesCount int64  `json:"likesCount"`
}

func (uc *LikeUsecase) Toggle(ctx context.Context, productID, sessionID string) (*LikeResult, error) {
	if _, err := uc.productRepo.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	liked, err := uc.likeRepo.ToggleLike(ctx, productID, sessionID)
	if err != nil {
		return nil, err
	}

	count, err := uc.likeRepo.RecountProductLikes(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Cached product payloads carry the old count.
	uc.cache.Delete("product:" + productID)

	return &LikeResult{ProductID: productID, Liked: liked, LikesCount: count}, nil
}

// GetSessionLikes returns the product IDs the session has liked.
func (uc *LikeUsecase) GetSessionLikes(ctx context.Context, sessionID string) ([]string, error) {
	ids, err := uc.likeRepo.GetSessionLikes(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
