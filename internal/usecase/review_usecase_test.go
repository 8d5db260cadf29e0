package usecase

import (
	"context"
	"testing"

	"surpriset-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews map[string]*domain.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (f *fakeReviewRepo) CreateReview(ctx context.Context, rv *domain.Review) error {
	cp := *rv
	f.reviews[rv.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) GetReviews(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int64, error) {
	var out []domain.Review
	for _, rv := range f.reviews {
		if filter.ProductID != "" && rv.ProductID != filter.ProductID {
			continue
		}
		if filter.Status != "" && rv.Status != filter.Status {
			continue
		}
		out = append(out, *rv)
	}
	return out, int64(len(out)), nil
}

func (f *fakeReviewRepo) GetReviewByID(ctx context.Context, id string) (*domain.Review, error) {
	if rv, ok := f.reviews[id]; ok {
		cp := *rv
		return &cp, nil
	}
	return nil, domain.ErrReviewNotFound
}

func (f *fakeReviewRepo) UpdateReviewStatus(ctx context.Context, id, status string) error {
	rv, ok := f.reviews[id]
	if !ok {
		return domain.ErrReviewNotFound
	}
	rv.Status = status
	return nil
}

func (f *fakeReviewRepo) DeleteReview(ctx context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func TestReviewCreateEntersModerationQueue(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReviewRepo()
	uc := NewReviewUsecase(repo, newFakeProductRepo(catalogProduct("p1", 100)))

	review, err := uc.Create(ctx, "sess", CreateReviewRequest{
		ProductID:  "p1",
		AuthorName: "Masha",
		Rating:     5,
		Comment:    "Lovely set",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusPending, review.Status)
	assert.Equal(t, "sess", review.SessionID)

	// Pending reviews are invisible on the public product page.
	public, total, err := uc.GetProductReviews(ctx, "p1", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, public)
	assert.Zero(t, total)

	require.NoError(t, uc.Moderate(ctx, review.ID, domain.ReviewStatusApproved))

	public, total, err = uc.GetProductReviews(ctx, "p1", 20, 0)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, int64(1), total)
}

func TestReviewValidation(t *testing.T) {
	ctx := context.Background()
	uc := NewReviewUsecase(newFakeReviewRepo(), newFakeProductRepo(catalogProduct("p1", 100)))

	cases := []CreateReviewRequest{
		{ProductID: "p1", AuthorName: "A", Rating: 0},
		{ProductID: "p1", AuthorName: "A", Rating: 6},
		{ProductID: "p1", AuthorName: "", Rating: 3},
		{ProductID: "p1", AuthorName: "A", Rating: 3, Photos: []string{"a", "b", "c", "d"}},
	}
	for _, req := range cases {
		_, err := uc.Create(ctx, "sess", req)
		assert.ErrorIs(t, err, ErrValidation)
	}

	_, err := uc.Create(ctx, "sess", CreateReviewRequest{ProductID: "ghost", AuthorName: "A", Rating: 3})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	err = uc.Moderate(ctx, "any", domain.ReviewStatusPending)
	assert.ErrorIs(t, err, ErrValidation)
}
