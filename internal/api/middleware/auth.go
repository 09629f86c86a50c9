package middleware

import (
	"context"
	"net/http"
	"strings"

	"fileharbor/internal/auth"
	"fileharbor/internal/utils"
)

type contextKey string

const userKey contextKey = "user"

// Auth rejects requests without a valid bearer credential and stores the
// resolved user in the request context.
func Auth(resolver auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, prefix) {
				utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := resolver.Resolve(r.Context(), strings.TrimSpace(header[len(prefix):]))
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext fetches the user stored by Auth.
func UserFromContext(ctx context.Context) (auth.User, bool) {
	u, ok := ctx.Value(userKey).(auth.User)
	return u, ok
}
