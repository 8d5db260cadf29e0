package domain

import (
	"context"
	"errors"
	"time"
)

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Product struct {
	ID            string            `json:"id"`
	SKU           string            `json:"sku"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Composition   string            `json:"composition"`
	Price         float64           `json:"price"`
	OriginalPrice *float64          `json:"originalPrice"` // pre-discount price, shown struck through
	Images        []string          `json:"images"`
	CategoryIDs   []string          `json:"categoryIds"` // at most 3
	Status        string            `json:"status"`      // in_stock, coming_soon, out_of_stock
	Type          string            `json:"type"`        // product, bundle
	IsFeatured    bool              `json:"isFeatured"`
	LikesCount    int64             `json:"likesCount"`
	Specs         map[string]string `json:"specifications"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type ProductFilter struct {
	Query      string
	MinPrice   float64
	MaxPrice   float64
	Statuses   []string
	Types      []string
	Categories []string
	Sort       string // newest, price_asc, price_desc, popular
	Limit      int
	Offset     int
	IsFeatured *bool
}

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// --- Interfaces ---

type ProductRepository interface {
	GetProducts(ctx context.Context, filter ProductFilter) ([]Product, int64, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]Product, error)

	// Admin Management
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	UpdateProductStatus(ctx context.Context, id string, status string) error
	DeleteProduct(ctx context.Context, id string) error

	// Category Management
	GetCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id string) error
}

// LikeRepository tracks per-session product likes. The product's likesCount
// column is always refreshed by recounting the likes table, never by ad-hoc
// increments from call sites.
type LikeRepository interface {
	ToggleLike(ctx context.Context, productID, session string) (liked bool, err error)
	GetSessionLikes(ctx context.Context, session string) ([]string, error)
	RecountProductLikes(ctx context.Context, productID string) (int64, error)
}
