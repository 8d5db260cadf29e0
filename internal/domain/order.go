package domain

import (
	"context"
	"errors"
	"time"
)

type OrderFilter struct {
	Page   int
	Limit  int
	Status string
	Type   string
	Search string
}

// --- Order Entities ---

type Order struct {
	ID                   string      `json:"id"`
	SessionID            string      `json:"-"`
	CustomerName         string      `json:"customerName"`
	CustomerEmail        string      `json:"customerEmail"`
	CustomerPhone        string      `json:"customerPhone"`
	CustomerAddress      string      `json:"customerAddress"`
	Items                []OrderItem `json:"items"`
	Total                float64     `json:"total"`
	Status               string      `json:"status"` // pending, processing, shipped, delivered, cancelled
	Type                 string      `json:"type"`   // regular, custom_bundle
	PackagingID          *string     `json:"packagingId"`
	AssemblyServicePrice float64     `json:"assemblyServicePrice"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"` // price at time of purchase
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

var ErrOrderNotFound = errors.New("order not found")

// --- Interfaces ---

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]Order, error)
	GetAll(ctx context.Context, filter OrderFilter) ([]Order, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteOrder(ctx context.Context, id string) error
}
