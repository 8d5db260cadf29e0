package postgres

import (
	"context"
	"fmt"
	"strings"

	"surpriset-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) domain.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = "id, product_id, session_id, author_name, rating, COALESCE(comment, ''), photos, status, created_at"

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	var photos []byte
	err := row.Scan(&rv.ID, &rv.ProductID, &rv.SessionID, &rv.AuthorName, &rv.Rating,
		&rv.Comment, &photos, &rv.Status, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	rv.Photos = unmarshalStringSlice(photos)
	return &rv, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, rv *domain.Review) error {
	_, err := q(ctx, r.db).Exec(ctx, `
		INSERT INTO reviews (id, product_id, session_id, author_name, rating, comment, photos, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rv.ID, rv.ProductID, rv.SessionID, rv.AuthorName, rv.Rating,
		strToPtr(rv.Comment), marshalJSON(rv.Photos), rv.Status, rv.CreatedAt)
	return err
}

func (r *reviewRepository) GetReviews(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int64, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		clauses = append(clauses, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	where := strings.Join(clauses, " AND ")

	var total int64
	if err := q(ctx, r.db).QueryRow(ctx, "SELECT COUNT(*) FROM reviews WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	sql := fmt.Sprintf("SELECT %s FROM reviews WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		reviewColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, filter.Offset)

	rows, err := q(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0, limit)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, *rv)
	}
	return reviews, total, rows.Err()
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id string) (*domain.Review, error) {
	rv, err := scanReview(q(ctx, r.db).QueryRow(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE id = $1", id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *reviewRepository) UpdateReviewStatus(ctx context.Context, id, status string) error {
	tag, err := q(ctx, r.db).Exec(ctx,
		"UPDATE reviews SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id string) error {
	tag, err := q(ctx, r.db).Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
