package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vendordesk/vendordesk/internal/auth"
)

func TestMiddlewareRejectsMissingAndInvalidTokens(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	protected := auth.Middleware(nil, issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run without a valid token")
	}))

	for name, header := range map[string]string{
		"missing":      "",
		"not bearer":   "Basic abc123",
		"empty bearer": "Bearer ",
		"garbage":      "Bearer not-a-jwt",
	} {
		req := httptest.NewRequest(http.MethodGet, "/suppliers", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		res := httptest.NewRecorder()
		protected.ServeHTTP(res, req)
		if res.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, res.Code)
		}
	}
}

func TestMiddlewarePassesClaimsToHandler(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Issue(&auth.User{ID: "1", Email: "ops@vendordesk.local", Name: "Ops"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var seen *auth.Claims
	protected := auth.Middleware(nil, issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/suppliers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	protected.ServeHTTP(res, req)

	if res.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.Code)
	}
	if seen == nil || seen.Email != "ops@vendordesk.local" {
		t.Fatalf("expected claims in context, got %+v", seen)
	}
}

func TestMiddlewareRejectsTokenFromDifferentSecret(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	forged, err := auth.NewTokenIssuer("other-secret", time.Hour).Issue(&auth.User{ID: "1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	protected := auth.Middleware(nil, issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run for a forged token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/suppliers", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	res := httptest.NewRecorder()
	protected.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}
