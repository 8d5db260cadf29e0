package postgres

import (
	"context"

	"surpriset-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contentRepository struct {
	db *pgxpool.Pool
}

func NewContentRepository(db *pgxpool.Pool) domain.ContentRepository {
	return &contentRepository{db: db}
}

// --- Banners ---

const bannerColumns = "id, title, COALESCE(description, ''), image, COALESCE(link, ''), is_active, order_index, created_at"

func scanBanner(row pgx.Row) (*domain.Banner, error) {
	var b domain.Banner
	err := row.Scan(&b.ID, &b.Title, &b.Description, &b.Image, &b.Link, &b.IsActive, &b.OrderIndex, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *contentRepository) queryBanners(ctx context.Context, sql string) ([]domain.Banner, error) {
	rows, err := q(ctx, r.db).Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []domain.Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, *b)
	}
	return banners, rows.Err()
}

func (r *contentRepository) GetActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	return r.queryBanners(ctx,
		"SELECT "+bannerColumns+" FROM banners WHERE is_active = true ORDER BY order_index, created_at")
}

func (r *contentRepository) GetAllBanners(ctx context.Context) ([]domain.Banner, error) {
	return r.queryBanners(ctx,
		"SELECT "+bannerColumns+" FROM banners ORDER BY order_index, created_at")
}

func (r *contentRepository) CreateBanner(ctx context.Context, b *domain.Banner) error {
	_, err := q(ctx, r.db).Exec(ctx, `
		INSERT INTO banners (id, title, description, image, link, is_active, order_index, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.Title, strToPtr(b.Description), b.Image, strToPtr(b.Link), b.IsActive, b.OrderIndex, b.CreatedAt)
	return err
}

func (r *contentRepository) UpdateBanner(ctx context.Context, b *domain.Banner) error {
	tag, err := q(ctx, r.db).Exec(ctx, `
		UPDATE banners SET title = $2, description = $3, image = $4, link = $5,
			is_active = $6, order_index = $7
		WHERE id = $1`,
		b.ID, b.Title, strToPtr(b.Description), b.Image, strToPtr(b.Link), b.IsActive, b.OrderIndex)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBannerNotFound
	}
	return nil
}

func (r *contentRepository) DeleteBanner(ctx context.Context, id string) error {
	tag, err := q(ctx, r.db).Exec(ctx, "DELETE FROM banners WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBannerNotFound
	}
	return nil
}

func (r *contentRepository) ReorderBanners(ctx context.Context, updates []domain.BannerReorderItem) error {
	for _, u := range updates {
		if _, err := q(ctx, r.db).Exec(ctx,
			"UPDATE banners SET order_index = $2 WHERE id = $1", u.ID, u.OrderIndex); err != nil {
			return err
		}
	}
	return nil
}

// --- Packaging ---

const packagingColumns = "id, name, price, width, height, depth, COALESCE(image_url, ''), is_active, created_at, updated_at"

func scanPackaging(row pgx.Row) (*domain.Packaging, error) {
	var p domain.Packaging
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Width, &p.Height, &p.Depth, &p.ImageURL,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *contentRepository) queryPackaging(ctx context.Context, sql string) ([]domain.Packaging, error) {
	rows, err := q(ctx, r.db).Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []domain.Packaging
	for rows.Next() {
		p, err := scanPackaging(rows)
		if err != nil {
			return nil, err
		}
		opts = append(opts, *p)
	}
	return opts, rows.Err()
}

func (r *contentRepository) GetActivePackaging(ctx context.Context) ([]domain.Packaging, error) {
	return r.queryPackaging(ctx,
		"SELECT "+packagingColumns+" FROM packaging WHERE is_active = true ORDER BY price, name")
}

func (r *contentRepository) GetAllPackaging(ctx context.Context) ([]domain.Packaging, error) {
	return r.queryPackaging(ctx,
		"SELECT "+packagingColumns+" FROM packaging ORDER BY created_at DESC")
}

func (r *contentRepository) GetPackagingByID(ctx context.Context, id string) (*domain.Packaging, error) {
	p, err := scanPackaging(q(ctx, r.db).QueryRow(ctx,
		"SELECT "+packagingColumns+" FROM packaging WHERE id = $1", id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrPackagingNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *contentRepository) CreatePackaging(ctx context.Context, p *domain.Packaging) error {
	_, err := q(ctx, r.db).Exec(ctx, `
		INSERT INTO packaging (id, name, price, width, height, depth, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Name, p.Price, p.Width, p.Height, p.Depth, strToPtr(p.ImageURL), p.IsActive, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *contentRepository) UpdatePackaging(ctx context.Context, p *domain.Packaging) error {
	tag, err := q(ctx, r.db).Exec(ctx, `
		UPDATE packaging SET name = $2, price = $3, width = $4, height = $5, depth = $6,
			image_url = $7, is_active = $8, updated_at = $9
		WHERE id = $1`,
		p.ID, p.Name, p.Price, p.Width, p.Height, p.Depth, strToPtr(p.ImageURL), p.IsActive, p.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPackagingNotFound
	}
	return nil
}

func (r *contentRepository) DeletePackaging(ctx context.Context, id string) error {
	tag, err := q(ctx, r.db).Exec(ctx, "DELETE FROM packaging WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPackagingNotFound
	}
	return nil
}
