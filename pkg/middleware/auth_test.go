package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ovenfresh/cookieshop/config"
	"github.com/ovenfresh/cookieshop/pkg/auth"
	"github.com/ovenfresh/cookieshop/pkg/middleware"
)

func init() {
	config.Set("JWT_SECRET", "middleware-test-secret")
}

func adminRequest(t *testing.T, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims, ok := middleware.ClaimsFromCtx(r.Context())
		if !ok || claims == nil {
			t.Error("claims missing from request context")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/cookies", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	middleware.RequireAdmin("Unauthorized")(next).ServeHTTP(rec, req)
	return rec, called
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body["error"]
}

func TestRequireAdminNoHeader(t *testing.T) {
	rec, called := adminRequest(t, "")

	if called {
		t.Fatal("handler ran without credentials")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := errorBody(t, rec); msg != "Authentication required" {
		t.Errorf("error = %q", msg)
	}
}

func TestRequireAdminBadToken(t *testing.T) {
	rec, called := adminRequest(t, "Bearer garbage")

	if called {
		t.Fatal("handler ran with an invalid token")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if msg := errorBody(t, rec); msg != "Unauthorized" {
		t.Errorf("error = %q", msg)
	}
}

func TestRequireAdminNonAdminToken(t *testing.T) {
	token, err := auth.GenerateAccessToken(3, false)
	if err != nil {
		t.Fatal(err)
	}

	rec, called := adminRequest(t, "Bearer "+token)

	if called {
		t.Fatal("handler ran for a non-admin token")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRequireAdminValidToken(t *testing.T) {
	token, err := auth.GenerateAccessToken(1, true)
	if err != nil {
		t.Fatal(err)
	}

	rec, called := adminRequest(t, "Bearer "+token)

	if !called {
		t.Fatal("handler did not run for a valid admin token")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
