package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"surpriset-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withUser(r *http.Request, user *domain.User) context.Context {
	return context.WithValue(r.Context(), domain.UserContextKey, user)
}

func TestSessionMiddlewareIssuesID(t *testing.T) {
	var got string
	handler := SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Value(domain.SessionContextKey).(string)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	require.NotEmpty(t, got)
	assert.Equal(t, got, rec.Header().Get("X-Session-ID"), "issued ID echoed to the client")
}

func TestSessionMiddlewareKeepsClientID(t *testing.T) {
	var got string
	handler := SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Value(domain.SessionContextKey).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Session-ID", "sess-abc")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "sess-abc", got)
	assert.Equal(t, "sess-abc", rec.Header().Get("X-Session-ID"))
}

func TestSessionMiddlewareRejectsOversizedID(t *testing.T) {
	var got string
	handler := SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Value(domain.SessionContextKey).(string)
	}))

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Session-ID", string(long))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEqual(t, string(long), got, "oversized IDs are replaced")
	assert.NotEmpty(t, got)
}

func TestAdminMiddleware(t *testing.T) {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }

	// No user in context
	rec := httptest.NewRecorder()
	AdminMiddleware(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Customer
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req = req.WithContext(withUser(req, &domain.User{ID: "u1"}))
	rec = httptest.NewRecorder()
	AdminMiddleware(http.HandlerFunc(ok)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req = req.WithContext(withUser(req, &domain.User{ID: "u1", IsAdmin: true}))
	rec = httptest.NewRecorder()
	AdminMiddleware(http.HandlerFunc(ok)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
