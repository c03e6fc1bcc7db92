package middleware

import (
	"context"
	"net/http"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/transport/http/response"
	"strconv"
	"strings"
)

// Identity requires a positive integer X-Sharer-User-Id header and stores it in the request context.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(constant.RequestHeaderUserID)), 10, 64)
		if err != nil || userID <= 0 {
			response.WithError(w, failure.MissingUserHeader)

			return
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the caller id stored by Identity.
func UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)

	return userID, ok
}
