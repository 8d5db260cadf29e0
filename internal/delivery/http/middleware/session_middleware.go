package middleware

import (
	"context"
	"net/http"

	"surpriset-backend/internal/domain"
	"surpriset-backend/pkg/utils"
)

// SessionMiddleware resolves the opaque storefront session ID that scopes
// carts, bundles, likes and orders for anonymous visitors. Clients send it
// as the X-Session-ID header; a request without one gets a fresh ID, echoed
// back so the client can persist it.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get("X-Session-ID")
		if sessionID == "" || len(sessionID) > 64 {
			sessionID = utils.GenerateUUID()
		}

		w.Header().Set("X-Session-ID", sessionID)

		ctx := context.WithValue(r.Context(), domain.SessionContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
