package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vendordesk/vendordesk/internal/platform/httpx"
)

type contextKey struct{}

var claimsKey contextKey

// ContextWithClaims stores verified claims on the request context.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the verified claims, or nil outside a
// protected route.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// Middleware enforces a valid bearer token. Every failure mode (missing,
// malformed, expired, forged) produces the same 401; the reason is only
// logged.
func Middleware(logger *slog.Logger, tokens *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				httpx.Fail(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				if logger != nil {
					logger.Debug("token rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
				}
				httpx.Fail(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}
