package postgres

import (
	"context"
	"fmt"
	"strings"

	"surpriset-backend/internal/domain"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) domain.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, session_id, customer_name, customer_email, customer_phone,
	customer_address, items, total, status, type, packaging_id, assembly_service_price,
	created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var email, phone, address *string
	var items []byte

	err := row.Scan(
		&o.ID, &o.SessionID, &o.CustomerName, &email, &phone,
		&address, &items, &o.Total, &o.Status, &o.Type, &o.PackagingID, &o.AssemblyServicePrice,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.CustomerEmail = ptrString(email)
	o.CustomerPhone = ptrString(phone)
	o.CustomerAddress = ptrString(address)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			o.Items = nil
		}
	}
	return &o, nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	_, err = q(ctx, r.db).Exec(ctx, `
		INSERT INTO orders (id, session_id, customer_name, customer_email, customer_phone,
			customer_address, items, total, status, type, packaging_id, assembly_service_price,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		o.ID, o.SessionID, o.CustomerName, strToPtr(o.CustomerEmail), strToPtr(o.CustomerPhone),
		strToPtr(o.CustomerAddress), items, o.Total, o.Status, o.Type, o.PackagingID, o.AssemblyServicePrice,
		o.CreatedAt, o.UpdatedAt,
	)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	sql := fmt.Sprintf("SELECT %s FROM orders WHERE id = $1", orderColumns)
	o, err := scanOrder(q(ctx, r.db).QueryRow(ctx, sql, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) GetBySessionID(ctx context.Context, sessionID string) ([]domain.Order, error) {
	sql := fmt.Sprintf("SELECT %s FROM orders WHERE session_id = $1 ORDER BY created_at DESC", orderColumns)
	rows, err := q(ctx, r.db).Query(ctx, sql, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) GetAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		clauses = append(clauses, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		ph := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(id::text ILIKE $%d OR customer_name ILIKE $%d OR customer_phone ILIKE $%d OR customer_email ILIKE $%d)",
			ph, ph, ph, ph))
	}
	where := strings.Join(clauses, " AND ")

	var total int64
	if err := q(ctx, r.db).QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	sql := fmt.Sprintf("SELECT %s FROM orders WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		orderColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := q(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, limit)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	return orders, total, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := q(ctx, r.db).Exec(ctx,
		"UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1", id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id string) error {
	tag, err := q(ctx, r.db).Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
