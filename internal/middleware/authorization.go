package middleware

import (
	"net/http"

	"github.com/609harsh/realtor-app/internal/models"
	"github.com/609harsh/realtor-app/internal/utils"
)

// RequireRoles admits the request only if the authenticated role is in the
// allowed list. An empty list means any authenticated user. Must run after
// Authenticate.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetString(r.Context(), CtxRole)
			if !ok || role == "" {
				utils.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if len(allowed) > 0 {
				if _, ok := allowed[role]; !ok {
					utils.Error(w, http.StatusForbidden, "forbidden")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
