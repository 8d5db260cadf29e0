package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"surpriset-backend/internal/delivery/http/middleware"
	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/store"
	"surpriset-backend/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductRepo covers the read paths the cart and bundle handlers hit.
type stubProductRepo struct {
	products map[string]*domain.Product
}

func (s *stubProductRepo) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	return nil, 0, nil
}

func (s *stubProductRepo) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubProductRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) CreateProduct(ctx context.Context, p *domain.Product) error       { return nil }
func (s *stubProductRepo) UpdateProduct(ctx context.Context, p *domain.Product) error       { return nil }
func (s *stubProductRepo) UpdateProductStatus(ctx context.Context, id, status string) error { return nil }
func (s *stubProductRepo) DeleteProduct(ctx context.Context, id string) error               { return nil }
func (s *stubProductRepo) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}
func (s *stubProductRepo) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	return nil, domain.ErrCategoryNotFound
}
func (s *stubProductRepo) CreateCategory(ctx context.Context, c *domain.Category) error { return nil }
func (s *stubProductRepo) UpdateCategory(ctx context.Context, c *domain.Category) error { return nil }
func (s *stubProductRepo) DeleteCategory(ctx context.Context, id string) error          { return nil }

func newStorefrontMux(t *testing.T) *http.ServeMux {
	t.Helper()

	repo := &stubProductRepo{products: map[string]*domain.Product{
		"p1": {ID: "p1", SKU: "SKU-1", Name: "Candle", Price: 450, Status: domain.ProductStatusInStock, Type: domain.ProductTypeProduct},
		"b1": {ID: "b1", Name: "Prebuilt Set", Price: 2500, Status: domain.ProductStatusInStock, Type: domain.ProductTypeBundle},
	}}
	snapshots := store.NewMemorySnapshots(time.Minute)

	cartHandler := NewCartHandler(usecase.NewCartUsecase(snapshots, repo, 99))
	bundleHandler := NewBundleHandler(usecase.NewBundleUsecase(snapshots, repo, store.Constraint{MinItems: 5, MaxItems: 20}))

	session := func(h http.HandlerFunc) http.Handler {
		return middleware.SessionMiddleware(h)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /api/v1/cart", session(cartHandler.GetCart))
	mux.Handle("POST /api/v1/cart", session(cartHandler.AddItem))
	mux.Handle("DELETE /api/v1/cart/{productId}", session(cartHandler.RemoveItem))
	mux.Handle("GET /api/v1/bundle", session(bundleHandler.GetBundle))
	mux.Handle("POST /api/v1/bundle", session(bundleHandler.AddItem))
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCartEndpoints(t *testing.T) {
	mux := newStorefrontMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/cart", "sess-1", `{"productId":"p1","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cart usecase.CartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Equal(t, 900.0, cart.Total)
	assert.Equal(t, 2, cart.ItemCount)

	// Different session sees an empty cart.
	rec = doJSON(t, mux, http.MethodGet, "/api/v1/cart", "sess-2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)

	// Unknown product is a 404.
	rec = doJSON(t, mux, http.MethodPost, "/api/v1/cart", "sess-1", `{"productId":"ghost","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, mux, http.MethodDelete, "/api/v1/cart/p1", "sess-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestBundleEndpointValidity(t *testing.T) {
	mux := newStorefrontMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/bundle", "sess-1", `{"productId":"p1","quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var bundle usecase.BundleView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
	assert.False(t, bundle.Validity.IsValid)
	assert.Equal(t, 2, bundle.Validity.Deficit)
	assert.Equal(t, store.StepSelection, bundle.Step)

	// Nested bundles are rejected.
	rec = doJSON(t, mux, http.MethodPost, "/api/v1/bundle", "sess-1", `{"productId":"b1","quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
