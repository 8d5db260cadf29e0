package usecase

import (
	"context"
	"fmt"
	"time"

	"surpriset-backend/internal/domain"
	"surpriset-backend/pkg/cache"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsUsecase aggregates the numbers shown on the admin dashboard. It
// queries the pool directly; the aggregates cut across every table and a
// repository per number would be noise.
type StatsUsecase struct {
	db    *pgxpool.Pool
	cache cache.CacheService
}

func NewStatsUsecase(db *pgxpool.Pool, cacheService cache.CacheService) *StatsUsecase {
	return &StatsUsecase{db: db, cache: cacheService}
}

type DashboardStats struct {
	TotalProducts   int64   `json:"totalProducts"`
	TotalOrders     int64   `json:"totalOrders"`
	PendingOrders   int64   `json:"pendingOrders"`
	PendingReviews  int64   `json:"pendingReviews"`
	Revenue         float64 `json:"revenue"`
	RevenueThisWeek float64 `json:"revenueThisWeek"`
	OrdersThisWeek  int64   `json:"ordersThisWeek"`
	TotalLikes      int64   `json:"totalLikes"`
}

func (uc *StatsUsecase) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	if cached, found := uc.cache.Get("stats:dashboard"); found {
		if stats, ok := cached.(*DashboardStats); ok {
			return stats, nil
		}
	}

	stats := &DashboardStats{}
	err := uc.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = $1),
			(SELECT COUNT(*) FROM reviews WHERE status = $2),
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status <> $3),
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status <> $3 AND created_at >= NOW() - INTERVAL '7 days'),
			(SELECT COUNT(*) FROM orders WHERE created_at >= NOW() - INTERVAL '7 days'),
			(SELECT COUNT(*) FROM product_likes)`,
		domain.OrderStatusPending, domain.ReviewStatusPending, domain.OrderStatusCancelled,
	).Scan(
		&stats.TotalProducts,
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.PendingReviews,
		&stats.Revenue,
		&stats.RevenueThisWeek,
		&stats.OrdersThisWeek,
		&stats.TotalLikes,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	uc.cache.Set("stats:dashboard", stats, time.Minute)
	return stats, nil
}
