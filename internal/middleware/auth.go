package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/609harsh/realtor-app/internal/utils"
)

type ctxKey string

const (
	CtxUserID ctxKey = "uid"
	CtxEmail  ctxKey = "email"
	CtxRole   ctxKey = "role"
)

// Authenticate verifies the bearer token and attaches the decoded identity
// to the request context. A missing, malformed or expired token rejects with
// 401; it is never downgraded to an anonymous request. Public routes simply
// do not mount this middleware.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				utils.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}

			claims, err := utils.ParseJWT(secret, strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				utils.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
			ctx = context.WithValue(ctx, CtxEmail, claims.Email)
			ctx = context.WithValue(ctx, CtxRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
