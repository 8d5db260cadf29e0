package domain

import (
	"context"
	"errors"
	"time"
)

// Banner is a home-screen promo slide managed from the admin panel.
type Banner struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Link        string    `json:"link"` // deep link to a product or category
	IsActive    bool      `json:"isActive"`
	OrderIndex  int       `json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Packaging is a gift-wrap option offered at checkout. Dimensions in cm.
type Packaging struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Width     *float64  `json:"width"`
	Height    *float64  `json:"height"`
	Depth     *float64  `json:"depth"`
	ImageURL  string    `json:"imageUrl"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	ErrBannerNotFound    = errors.New("banner not found")
	ErrPackagingNotFound = errors.New("packaging not found")
)

type BannerReorderItem struct {
	ID         string `json:"id"`
	OrderIndex int    `json:"orderIndex"`
}

// --- Interfaces ---

type ContentRepository interface {
	// Banners
	GetActiveBanners(ctx context.Context) ([]Banner, error)
	GetAllBanners(ctx context.Context) ([]Banner, error)
	CreateBanner(ctx context.Context, banner *Banner) error
	UpdateBanner(ctx context.Context, banner *Banner) error
	DeleteBanner(ctx context.Context, id string) error
	ReorderBanners(ctx context.Context, updates []BannerReorderItem) error

	// Packaging
	GetActivePackaging(ctx context.Context) ([]Packaging, error)
	GetAllPackaging(ctx context.Context) ([]Packaging, error)
	GetPackagingByID(ctx context.Context, id string) (*Packaging, error)
	CreatePackaging(ctx context.Context, p *Packaging) error
	UpdatePackaging(ctx context.Context, p *Packaging) error
	DeletePackaging(ctx context.Context, id string) error
}
