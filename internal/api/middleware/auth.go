// Package middleware carries the router-level concerns: identity
// propagation and request metrics.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Lingges29/mypark/internal/api/handlers"
)

// HeaderUserID carries the authenticated user's id, set by the gateway
const HeaderUserID = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth requires a positive integer X-User-ID header and stores it in the
// request context
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderUserID+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+HeaderUserID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user id placed by Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
