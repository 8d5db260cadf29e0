package postgres

import (
	"context"

	"surpriset-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type likeRepository struct {
	db *pgxpool.Pool
}

func NewLikeRepository(db *pgxpool.Pool) domain.LikeRepository {
	return &likeRepository{db: db}
}

// ToggleLike inserts or deletes the (product, session) like row and reports
// the resulting state. The denormalized likes_count is refreshed by recount
// inside the same call so it can never drift from the likes table.
func (r *likeRepository) ToggleLike(ctx context.Context, productID, session string) (bool, error) {
	tag, err := q(ctx, r.db).Exec(ctx,
		"DELETE FROM product_likes WHERE product_id = $1 AND session_id = $2", productID, session)
	if err != nil {
		return false, err
	}

	liked := false
	if tag.RowsAffected() == 0 {
		_, err = q(ctx, r.db).Exec(ctx,
			"INSERT INTO product_likes (product_id, session_id, created_at) VALUES ($1, $2, NOW()) ON CONFLICT DO NOTHING",
			productID, session)
		if err != nil {
			return false, err
		}
		liked = true
	}

	if _, err := r.RecountProductLikes(ctx, productID); err != nil {
		return liked, err
	}
	return liked, nil
}

func (r *likeRepository) GetSessionLikes(ctx context.Context, session string) ([]string, error) {
	rows, err := q(ctx, r.db).Query(ctx,
		"SELECT product_id FROM product_likes WHERE session_id = $1 ORDER BY created_at DESC", session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *likeRepository) RecountProductLikes(ctx context.Context, productID string) (int64, error) {
	var count int64
	err := q(ctx, r.db).QueryRow(ctx, `
		UPDATE products
		SET likes_count = (SELECT COUNT(*) FROM product_likes WHERE product_id = $1)
		WHERE id = $1
		RETURNING likes_count`, productID).Scan(&count)
	if err != nil {
		if isNoRows(err) {
			return 0, domain.ErrProductNotFound
		}
		return 0, err
	}
	return count, nil
}
