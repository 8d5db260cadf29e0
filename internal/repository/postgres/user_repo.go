package postgres

import (
	"context"

	"surpriset-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, COALESCE(telegram_id, 0), COALESCE(telegram_username, ''),
	COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(email, ''),
	COALESCE(password, ''), is_admin, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.TelegramID, &u.TelegramUsername, &u.FirstName, &u.LastName,
		&u.Email, &u.Password, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := q(ctx, r.db).Exec(ctx, `
		INSERT INTO users (id, telegram_id, telegram_username, first_name, last_name,
			email, password, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.TelegramID, strToPtr(u.TelegramUsername), strToPtr(u.FirstName), strToPtr(u.LastName),
		strToPtr(u.Email), strToPtr(u.Password), u.IsAdmin, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(q(ctx, r.db).QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetByIdentifier resolves a login identifier against email or telegram username.
func (r *userRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	u, err := scanUser(q(ctx, r.db).QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1 OR telegram_username = $1", identifier))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetAll(ctx context.Context, limit, offset int) ([]*domain.User, int64, error) {
	var total int64
	if err := q(ctx, r.db).QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}
	rows, err := q(ctx, r.db).Query(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	tag, err := q(ctx, r.db).Exec(ctx, `
		UPDATE users SET telegram_id = $2, telegram_username = $3, first_name = $4,
			last_name = $5, email = $6, password = $7, is_admin = $8, updated_at = $9
		WHERE id = $1`,
		u.ID, u.TelegramID, strToPtr(u.TelegramUsername), strToPtr(u.FirstName),
		strToPtr(u.LastName), strToPtr(u.Email), strToPtr(u.Password), u.IsAdmin, u.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
