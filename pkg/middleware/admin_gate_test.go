package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ovenfresh/cookieshop/pkg/middleware"
)

func gateRequest(t *testing.T, path, cookieValue string, withCookie bool) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: middleware.RefreshCookieName, Value: cookieValue})
	}

	rec := httptest.NewRecorder()
	middleware.AdminGate(next).ServeHTTP(rec, req)

	if rec.Code == http.StatusOK && !called {
		t.Fatal("200 without the inner handler running")
	}
	return rec
}

func TestGateRedirectsWithoutCookie(t *testing.T) {
	rec := gateRequest(t, "/admin/dashboard", "", false)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want 307", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want /admin/login", loc)
	}
}

func TestGateRedirectsOnEmptyCookie(t *testing.T) {
	rec := gateRequest(t, "/admin/dashboard", "", true)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want 307", rec.Code)
	}
}

func TestGateLoginPageExempt(t *testing.T) {
	rec := gateRequest(t, "/admin/login", "", false)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

// The gate checks presence only. A syntactically worthless cookie still
// passes; the JSON endpoints behind the pages do the real verification.
func TestGatePassesAnyNonEmptyCookie(t *testing.T) {
	rec := gateRequest(t, "/admin/dashboard", "definitely-not-a-jwt", true)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
