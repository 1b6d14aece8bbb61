package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/dashapp/internal/common"
	"github.com/dmitrijs2005/dashapp/internal/server/auth"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// userIDFromContext returns the authenticated user's id placed there by
// authMiddleware. The bool is false on routes outside the auth group.
func userIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDContextKey).(int64)
	return id, ok
}

// authMiddleware requires a valid bearer token and stores the token's
// subject in the request context. Anything short of a well-formed, unexpired
// token gets a 401 with the same detail, so callers cannot probe which part
// failed.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeader)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			writeDetail(w, http.StatusUnauthorized, detailInvalidToken)
			return
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimPrefix(header, common.BearerPrefix), h.jwtSecret)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, detailInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware records method, path, and duration for every request.
func (h *Handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
