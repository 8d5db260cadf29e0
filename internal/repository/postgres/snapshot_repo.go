package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository persists session cart and bundle snapshots in the
// store_snapshots table so a visitor's selection survives restarts.
type SnapshotRepository struct {
	db  *pgxpool.Pool
	ttl time.Duration
}

func NewSnapshotRepository(db *pgxpool.Pool, ttl time.Duration) *SnapshotRepository {
	return &SnapshotRepository{db: db, ttl: ttl}
}

func (r *SnapshotRepository) Load(ctx context.Context, scope, sessionID string) ([]byte, bool, error) {
	var data []byte
	err := q(ctx, r.db).QueryRow(ctx, `
		SELECT data FROM store_snapshots
		WHERE scope = $1 AND session_id = $2 AND expires_at > NOW()`,
		scope, sessionID).Scan(&data)
	if err != nil {
		if isNoRows(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, scope, sessionID string, data []byte) error {
	_, err := q(ctx, r.db).Exec(ctx, `
		INSERT INTO store_snapshots (scope, session_id, data, updated_at, expires_at)
		VALUES ($1, $2, $3, NOW(), NOW() + $4)
		ON CONFLICT (scope, session_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW(), expires_at = EXCLUDED.expires_at`,
		scope, sessionID, data, r.ttl)
	return err
}

func (r *SnapshotRepository) Delete(ctx context.Context, scope, sessionID string) error {
	_, err := q(ctx, r.db).Exec(ctx,
		"DELETE FROM store_snapshots WHERE scope = $1 AND session_id = $2", scope, sessionID)
	return err
}

// PurgeExpired removes stale snapshots. Called periodically from main.
func (r *SnapshotRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM store_snapshots WHERE expires_at <= NOW()")
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
