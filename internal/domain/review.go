package domain

import (
	"context"
	"errors"
	"time"
)

type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	SessionID  string    `json:"-"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"` // 1-5
	Comment    string    `json:"comment"`
	Photos     []string  `json:"photos"` // at most 3 URLs
	Status     string    `json:"status"` // pending, approved, rejected
	CreatedAt  time.Time `json:"createdAt"`
}

var ErrReviewNotFound = errors.New("review not found")

type ReviewFilter struct {
	ProductID string
	Status    string
	Limit     int
	Offset    int
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *Review) error
	GetReviews(ctx context.Context, filter ReviewFilter) ([]Review, int64, error)
	GetReviewByID(ctx context.Context, id string) (*Review, error)
	UpdateReviewStatus(ctx context.Context, id, status string) error
	DeleteReview(ctx context.Context, id string) error
}
