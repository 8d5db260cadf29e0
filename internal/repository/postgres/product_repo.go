package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"surpriset-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) domain.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, sku, name, description, composition, price, original_price,
	images, category_ids, status, type, is_featured, likes_count, specifications,
	created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var description, composition *string
	var images, specs []byte

	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &description, &composition, &p.Price, &p.OriginalPrice,
		&images, &p.CategoryIDs, &p.Status, &p.Type, &p.IsFeatured, &p.LikesCount, &specs,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Description = ptrString(description)
	p.Composition = ptrString(composition)
	p.Images = unmarshalStringSlice(images)
	p.Specs = unmarshalStringMap(specs)
	return &p, nil
}

// buildProductWhere translates a catalog filter into a WHERE clause.
// Arguments are positional; argPos carries the next placeholder index.
func buildProductWhere(filter domain.ProductFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	argPos := 1

	next := func(v any) string {
		args = append(args, v)
		ph := fmt.Sprintf("$%d", argPos)
		argPos++
		return ph
	}

	if filter.Query != "" {
		ph := next("%" + filter.Query + "%")
		clauses = append(clauses, fmt.Sprintf("(name ILIKE %s OR description ILIKE %s OR sku ILIKE %s)", ph, ph, ph))
	}
	if filter.MinPrice > 0 {
		clauses = append(clauses, "price >= "+next(filter.MinPrice))
	}
	if filter.MaxPrice > 0 {
		clauses = append(clauses, "price <= "+next(filter.MaxPrice))
	}
	if len(filter.Statuses) > 0 {
		clauses = append(clauses, "status = ANY("+next(filter.Statuses)+")")
	}
	if len(filter.Types) > 0 {
		clauses = append(clauses, "type = ANY("+next(filter.Types)+")")
	}
	if len(filter.Categories) > 0 {
		clauses = append(clauses, "category_ids && "+next(filter.Categories))
	}
	if filter.IsFeatured != nil {
		clauses = append(clauses, "is_featured = "+next(*filter.IsFeatured))
	}

	return strings.Join(clauses, " AND "), args
}

func orderClause(sort string) string {
	switch sort {
	case "price_asc":
		return "ORDER BY price ASC, created_at DESC"
	case "price_desc":
		return "ORDER BY price DESC, created_at DESC"
	case "popular":
		return "ORDER BY likes_count DESC, created_at DESC"
	default: // newest
		return "ORDER BY created_at DESC"
	}
}

func (r *productRepository) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	where, args := buildProductWhere(filter)

	var total int64
	countSQL := "SELECT COUNT(*) FROM products WHERE " + where
	if err := q(ctx, r.db).QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	listSQL := fmt.Sprintf(
		"SELECT %s FROM products WHERE %s %s LIMIT $%d OFFSET $%d",
		productColumns, where, orderClause(filter.Sort), len(args)+1, len(args)+2,
	)
	args = append(args, limit, filter.Offset)

	rows, err := q(ctx, r.db).Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	sql := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)
	p, err := scanProduct(q(ctx, r.db).QueryRow(ctx, sql, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	sql := fmt.Sprintf("SELECT %s FROM products WHERE id = ANY($1)", productColumns)
	rows, err := q(ctx, r.db).Query(ctx, sql, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	_, err := q(ctx, r.db).Exec(ctx, `
		INSERT INTO products (id, sku, name, description, composition, price, original_price,
			images, category_ids, status, type, is_featured, likes_count, specifications,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, $13, $14, $15)`,
		p.ID, p.SKU, p.Name, strToPtr(p.Description), strToPtr(p.Composition), p.Price, p.OriginalPrice,
		marshalJSON(p.Images), p.CategoryIDs, p.Status, p.Type, p.IsFeatured, marshalJSON(p.Specs),
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *productRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	tag, err := q(ctx, r.db).Exec(ctx, `
		UPDATE products SET sku = $2, name = $3, description = $4, composition = $5,
			price = $6, original_price = $7, images = $8, category_ids = $9,
			status = $10, type = $11, is_featured = $12, specifications = $13, updated_at = $14
		WHERE id = $1`,
		p.ID, p.SKU, p.Name, strToPtr(p.Description), strToPtr(p.Composition),
		p.Price, p.OriginalPrice, marshalJSON(p.Images), p.CategoryIDs,
		p.Status, p.Type, p.IsFeatured, marshalJSON(p.Specs), p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) UpdateProductStatus(ctx context.Context, id string, status string) error {
	tag, err := q(ctx, r.db).Exec(ctx,
		"UPDATE products SET status = $2, updated_at = NOW() WHERE id = $1", id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	tag, err := q(ctx, r.db).Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// --- Categories ---

func (r *productRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := q(ctx, r.db).Query(ctx,
		"SELECT id, name, COALESCE(description, ''), created_at, updated_at FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *productRepository) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := q(ctx, r.db).QueryRow(ctx,
		"SELECT id, name, COALESCE(description, ''), created_at, updated_at FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *productRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	_, err := q(ctx, r.db).Exec(ctx,
		"INSERT INTO categories (id, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)",
		c.ID, c.Name, strToPtr(c.Description), c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *productRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	tag, err := q(ctx, r.db).Exec(ctx,
		"UPDATE categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1",
		c.ID, c.Name, strToPtr(c.Description), time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *productRepository) DeleteCategory(ctx context.Context, id string) error {
	// Detach the category from products before removing it
	if _, err := q(ctx, r.db).Exec(ctx,
		"UPDATE products SET category_ids = array_remove(category_ids, $1) WHERE $1 = ANY(category_ids)", id); err != nil {
		return err
	}
	tag, err := q(ctx, r.db).Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
