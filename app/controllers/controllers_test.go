package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ovenfresh/cookieshop/app/models"
	"github.com/ovenfresh/cookieshop/app/routes"
	"github.com/ovenfresh/cookieshop/config"
	"github.com/ovenfresh/cookieshop/database/seeders"
	"github.com/ovenfresh/cookieshop/pkg/auth"
	"github.com/ovenfresh/cookieshop/pkg/event"
	"github.com/ovenfresh/cookieshop/pkg/router"
	"github.com/ovenfresh/cookieshop/pkg/ws"
)

const (
	testPhone    = "09337932893"
	testPassword = "amir1382"
)

func init() {
	config.Set("JWT_SECRET", "controllers-test-secret")
	config.Set("ADMIN_PHONE", testPhone)
	config.Set("ADMIN_PASSWORD", testPassword)
}

var dbSeq int

// newApp builds a fully wired handler backed by a fresh in-memory
// database seeded with the launch catalogue and the admin user.
func newApp(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	event.Flush()

	dbSeq++
	dsn := fmt.Sprintf("file:controllers_test_%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Cookie{},
		&models.PackageOption{},
		&models.Order{},
	))
	require.NoError(t, seeders.RunAll(db))

	r := router.New()
	routes.Register(r, db, ws.NewHub())
	return r.Handler(), db
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateAccessToken(1, true)
	require.NoError(t, err)
	return token
}

// ─── Auth ─────────────────────────────────────────────────────────────────────

func TestLoginSuccess(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/admin/login", "", map[string]string{
		"phone":    testPhone,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["accessToken"])
	assert.NotEmpty(t, body["refreshToken"])

	res := rec.Result()
	var refresh *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == "refreshToken" {
			refresh = c
		}
	}
	require.NotNil(t, refresh, "refreshToken cookie not set")
	assert.Equal(t, "/", refresh.Path)
	assert.Equal(t, 30*24*3600, refresh.MaxAge)
	assert.False(t, refresh.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, refresh.SameSite)

	claims := auth.VerifyToken(refresh.Value)
	require.NotNil(t, claims)
	assert.True(t, claims.IsAdmin)

	access := auth.VerifyToken(body["accessToken"].(string))
	require.NotNil(t, access)
	assert.True(t, access.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(auth.AccessTokenTTL), access.ExpiresAt.Time, 5*time.Second)
}

func TestLoginWrongPassword(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/admin/login", "", map[string]string{
		"phone":    testPhone,
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode(t, rec)["error"])
}

func TestLoginWrongPhone(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/admin/login", "", map[string]string{
		"phone":    "000",
		"password": testPassword,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode(t, rec)["error"])
}

func TestLoginMissingFields(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/admin/login", "", map[string]string{
		"phone": testPhone,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Phone and password are required", decode(t, rec)["error"])
}

func TestVerifyRefreshToken(t *testing.T) {
	h, _ := newApp(t)

	refresh, err := auth.GenerateRefreshToken(1, true)
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPost, "/api/auth/verify", "", map[string]interface{}{
		"token": refresh,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, true, body["isAdmin"])
	assert.Equal(t, float64(1), body["userId"])
	assert.NotEmpty(t, body["accessToken"])
}

func TestVerifyMissingToken(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/auth/verify", "", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "No token provided", body["error"])
}

func TestVerifyNonStringToken(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/auth/verify", "", map[string]interface{}{
		"token": 12345,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "Token must be a string", body["error"])
}

func TestVerifyInvalidToken(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/auth/verify", "", map[string]interface{}{
		"token": "not-a-real-token",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "Invalid token - could not verify", body["error"])
}

// ─── Catalogue reads ──────────────────────────────────────────────────────────

func TestListCookies(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodGet, "/api/cookies", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	cookies, ok := body["cookies"].([]interface{})
	require.True(t, ok, "cookies key missing: %s", rec.Body.String())
	require.Len(t, cookies, 2)

	first := cookies[0].(map[string]interface{})
	assert.Equal(t, "Chocolate Chip", first["name"])
	assert.Equal(t, "#f5e050", first["bg_color"])
	assert.Equal(t, float64(25), first["stock"])

	nutrition, ok := first["nutrition"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(250), nutrition["calories"])
}

func TestGetCookie(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodGet, "/api/cookies/2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := decode(t, rec)["cookie"].(map[string]interface{})
	assert.Equal(t, "Oatmeal Raisin", cookie["name"])
	assert.Len(t, cookie["allergens"], 2)
}

func TestGetCookieNotFound(t *testing.T) {
	h, _ := newApp(t)

	for _, path := range []string{"/api/cookies/999", "/api/cookies/abc"} {
		rec := doJSON(t, h, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Cookie not found", decode(t, rec)["error"])
	}
}

// ─── Catalogue writes ─────────────────────────────────────────────────────────

func TestCreateCookieRequiresAuth(t *testing.T) {
	h, db := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/cookies", "", map[string]string{"name": "Intruder"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authentication required", decode(t, rec)["error"])

	var count int64
	require.NoError(t, db.Model(&models.Cookie{}).Count(&count).Error)
	assert.EqualValues(t, 2, count, "rejected request must not create rows")
}

func TestCreateCookieRejectsNonAdmin(t *testing.T) {
	h, _ := newApp(t)

	token, err := auth.GenerateAccessToken(2, false)
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPost, "/api/cookies", token, map[string]string{"name": "Intruder"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized", decode(t, rec)["error"])
}

func TestCreateCookieDefaults(t *testing.T) {
	h, db := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/cookies", adminToken(t), map[string]interface{}{
		"name":  "Snickerdoodle",
		"stock": 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Cookie added successfully", body["message"])
	assert.Equal(t, float64(3), body["cookieId"])

	var stored models.Cookie
	require.NoError(t, db.First(&stored, 3).Error)
	assert.Equal(t, "Snickerdoodle", stored.Name)
	assert.Equal(t, 5, stored.Stock)
	assert.Equal(t, "#FFDC9C", stored.BgColor)
	assert.NotNil(t, stored.Nutrition)
	assert.Empty(t, stored.Nutrition)
	assert.NotNil(t, stored.Allergens)
	assert.Empty(t, stored.Allergens)
	assert.NotNil(t, stored.TopReviews)
	assert.Empty(t, stored.TopReviews)

	// The wire representation must show the defaults, not null.
	rec = doJSON(t, h, http.MethodGet, "/api/cookies/3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := decode(t, rec)["cookie"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{}, cookie["nutrition"])
	assert.Equal(t, []interface{}{}, cookie["allergens"])
	assert.Equal(t, []interface{}{}, cookie["top_reviews"])
}

func TestCreateCookieRequiresName(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/cookies", adminToken(t), map[string]interface{}{
		"stock": 5,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cookie name is required", decode(t, rec)["error"])
}

func TestUpdateCookie(t *testing.T) {
	h, db := newApp(t)

	rec := doJSON(t, h, http.MethodPut, "/api/cookies/1", adminToken(t), map[string]interface{}{
		"name":      "Double Chocolate",
		"stock":     40,
		"allergens": []string{"Gluten"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Cookie updated successfully", decode(t, rec)["message"])

	var stored models.Cookie
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, "Double Chocolate", stored.Name)
	assert.Equal(t, 40, stored.Stock)
	assert.Equal(t, models.StringList{"Gluten"}, stored.Allergens)
}

func TestUpdateCookieNotFound(t *testing.T) {
	h, _ := newApp(t)

	// Unknown id answers 404 even when the body is also invalid.
	rec := doJSON(t, h, http.MethodPut, "/api/cookies/999", adminToken(t), map[string]interface{}{})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cookie not found", decode(t, rec)["error"])
}

func TestUpdateCookieRequiresName(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPut, "/api/cookies/1", adminToken(t), map[string]interface{}{
		"stock": 1,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cookie name is required", decode(t, rec)["error"])
}

func TestDeleteCookie(t *testing.T) {
	h, db := newApp(t)

	rec := doJSON(t, h, http.MethodDelete, "/api/cookies/2", adminToken(t), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Cookie deleted successfully", decode(t, rec)["message"])

	var count int64
	require.NoError(t, db.Model(&models.Cookie{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	rec = doJSON(t, h, http.MethodDelete, "/api/cookies/2", adminToken(t), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cookie not found", decode(t, rec)["error"])
}

// ─── Back-office ──────────────────────────────────────────────────────────────

func TestResetDB(t *testing.T) {
	h, db := newApp(t)

	for i := 0; i < 3; i++ {
		rec := doJSON(t, h, http.MethodPost, "/api/cookies", adminToken(t), map[string]interface{}{
			"name": fmt.Sprintf("Extra %d", i),
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, h, http.MethodPost, "/api/admin/reset-db", adminToken(t), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Database reset successfully", decode(t, rec)["message"])

	var count int64
	require.NoError(t, db.Model(&models.Cookie{}).Count(&count).Error)
	assert.EqualValues(t, 2, count, "seed rows must survive a reset")
}

func TestResetDBForbiddenMessage(t *testing.T) {
	h, _ := newApp(t)

	token, err := auth.GenerateAccessToken(2, false)
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPost, "/api/admin/reset-db", token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized - admin access required", decode(t, rec)["error"])
}

func TestListPackages(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodGet, "/api/packages", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	packages, ok := decode(t, rec)["packages"].([]interface{})
	require.True(t, ok)
	require.Len(t, packages, 3)

	first := packages[0].(map[string]interface{})
	assert.Equal(t, "Standard", first["type"])
	assert.Equal(t, 9.99, first["price"])
}

// ─── GraphQL ──────────────────────────────────────────────────────────────────

func TestGraphQLCatalogue(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/graphql", "", map[string]string{
		"query": `{ cookies { id name stock nutrition { calories } } }`,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, rec.Body.String())
	cookies := data["cookies"].([]interface{})
	require.Len(t, cookies, 2)

	first := cookies[0].(map[string]interface{})
	assert.Equal(t, "Chocolate Chip", first["name"])
	nutrition := first["nutrition"].(map[string]interface{})
	assert.Equal(t, float64(250), nutrition["calories"])
}

func TestGraphQLSingleCookie(t *testing.T) {
	h, _ := newApp(t)

	rec := doJSON(t, h, http.MethodPost, "/api/graphql", "", map[string]interface{}{
		"query":     `query ($id: ID!) { cookie(id: $id) { name allergens } }`,
		"variables": map[string]interface{}{"id": "2"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := decode(t, rec)["data"].(map[string]interface{})
	cookie := data["cookie"].(map[string]interface{})
	assert.Equal(t, "Oatmeal Raisin", cookie["name"])
	assert.Len(t, cookie["allergens"], 2)
}
