package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ovenfresh/cookieshop/pkg/router"
)

func TestParamExtraction(t *testing.T) {
	r := router.New()
	r.Get("/cookies/{id}", "cookies.show", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, router.Param(req, "id"))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cookies/42", nil))

	if rec.Body.String() != "42" {
		t.Errorf("param = %q, want 42", rec.Body.String())
	}
}

func TestGroupPrefixing(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/cookies", "cookies.list", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cookies", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}

	path, ok := r.Path("cookies.list")
	if !ok || path != "/api/cookies" {
		t.Errorf("Path() = %q, %v", path, ok)
	}
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := router.New()
	group := r.Group("/g", tag("group"))
	group.Get("/x", "x", func(w http.ResponseWriter, req *http.Request) {}, tag("route"))

	r.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/g/x", nil))

	if len(order) != 2 || order[0] != "group" || order[1] != "route" {
		t.Errorf("middleware order = %v", order)
	}
}

func TestURLReversal(t *testing.T) {
	r := router.New()
	r.Get("/cookies/{id}", "cookies.show", func(w http.ResponseWriter, req *http.Request) {})

	url, err := r.URL("cookies.show", map[string]string{"id": "7"})
	if err != nil {
		t.Fatal(err)
	}
	if url != "/cookies/7" {
		t.Errorf("URL = %q", url)
	}

	if _, err := r.URL("cookies.show", nil); err == nil {
		t.Error("expected error for missing params")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route")
	}
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Get("/a", "a", func(w http.ResponseWriter, req *http.Request) {})
	r.Post("/b", "b", func(w http.ResponseWriter, req *http.Request) {})
	r.HandleFunc("/unnamed", func(w http.ResponseWriter, req *http.Request) {})

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("len(Routes()) = %d, want 2 (unnamed routes are not listed)", len(infos))
	}
}
