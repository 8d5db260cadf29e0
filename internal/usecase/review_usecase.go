package usecase

import (
	"context"
	"fmt"
	"time"

	"surpriset-backend/internal/domain"
	"surpriset-backend/pkg/logger"
	"surpriset-backend/pkg/utils"
)

// ReviewUsecase handles product reviews. New reviews enter the moderation
// queue as pending; only approved reviews appear on the public product page.
type ReviewUsecase struct {
	reviewRepo  domain.ReviewRepository
	productRepo domain.ProductRepository
}

func NewReviewUsecase(reviewRepo domain.ReviewRepository, productRepo domain.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

type CreateReviewRequest struct {
	ProductID  string   `json:"productId"`
	AuthorName string   `json:"authorName"`
	Rating     int      `json:"rating"`
	Comment    string   `json:"comment"`
	Photos     []string `json:"photos"`
}

func (uc *ReviewUsecase) Create(ctx context.Context, sessionID string, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if req.AuthorName == "" {
		return nil, fmt.Errorf("%w: author name is required", ErrValidation)
	}
	if len(req.Photos) > 3 {
		return nil, fmt.Errorf("%w: at most 3 photos per review", ErrValidation)
	}

	if _, err := uc.productRepo.GetProductByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:         utils.GenerateUUID(),
		ProductID:  req.ProductID,
		SessionID:  sessionID,
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Photos:     req.Photos,
		Status:     domain.ReviewStatusPending,
		CreatedAt:  time.Now(),
	}

	if err := uc.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	logger.WithContext(ctx).Info().
		Str("review_id", review.ID).
		Str("product_id", review.ProductID).
		Int("rating", review.Rating).
		Msg("review submitted")
	return review, nil
}

// GetProductReviews returns the approved reviews for a product.
func (uc *ReviewUsecase) GetProductReviews(ctx context.Context, productID string, limit, offset int) ([]domain.Review, int64, error) {
	return uc.reviewRepo.GetReviews(ctx, domain.ReviewFilter{
		ProductID: productID,
		Status:    domain.ReviewStatusApproved,
		Limit:     limit,
		Offset:    offset,
	})
}

// --- Admin ---

func (uc *ReviewUsecase) GetReviews(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int64, error) {
	if filter.Status != "" && !contains(domain.ReviewStatuses, filter.Status) {
		return nil, 0, fmt.Errorf("%w: unknown status %q", ErrValidation, filter.Status)
	}
	return uc.reviewRepo.GetReviews(ctx, filter)
}

func (uc *ReviewUsecase) Moderate(ctx context.Context, id, status string) error {
	if status != domain.ReviewStatusApproved && status != domain.ReviewStatusRejected {
		return fmt.Errorf("%w: moderation status must be approved or rejected", ErrValidation)
	}
	return uc.reviewRepo.UpdateReviewStatus(ctx, id, status)
}

func (uc *ReviewUsecase) Delete(ctx context.Context, id string) error {
	return uc.reviewRepo.DeleteReview(ctx, id)
}
