package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ovenfresh/cookieshop/app/repositories"
	"github.com/ovenfresh/cookieshop/app/services"
	"github.com/ovenfresh/cookieshop/pkg/bind"
	"github.com/ovenfresh/cookieshop/pkg/logger"
	"github.com/ovenfresh/cookieshop/pkg/response"
	"github.com/ovenfresh/cookieshop/pkg/router"
)

// CookieController serves the product catalogue, public reads and
// admin-gated writes alike. Authorization is enforced by middleware on
// the route table, not here.
type CookieController struct {
	service *services.CookieService
}

func NewCookieController(service *services.CookieService) *CookieController {
	return &CookieController{service: service}
}

// List handles GET /api/cookies.
func (c *CookieController) List(w http.ResponseWriter, r *http.Request) {
	cookies, err := c.service.List()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list cookies", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch cookies")
		return
	}

	response.OK(w, map[string]interface{}{"cookies": cookies})
}

// Get handles GET /api/cookies/{id}.
func (c *CookieController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := cookieID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, "Cookie not found")
		return
	}

	cookie, err := c.service.Get(id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Cookie not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("get cookie", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch cookie")
		return
	}

	response.OK(w, map[string]interface{}{"cookie": cookie})
}

// Create handles POST /api/cookies.
func (c *CookieController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CookieInput
	if err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to add cookie")
		return
	}

	if input.Name == "" {
		response.Error(w, http.StatusBadRequest, "Cookie name is required")
		return
	}

	id, err := c.service.Create(input)
	if err != nil {
		logger.WithCtx(r.Context()).Error("create cookie", "name", input.Name, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to add cookie")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "Cookie added successfully",
		"cookieId": id,
	})
}

// Update handles PUT /api/cookies/{id}. The existence check runs before
// body validation, so an unknown id answers 404 even when the payload
// is also invalid.
func (c *CookieController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := cookieID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, "Cookie not found")
		return
	}

	if _, err := c.service.Get(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Cookie not found")
			return
		}
		logger.WithCtx(r.Context()).Error("update cookie", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to update cookie")
		return
	}

	var input services.CookieInput
	if err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update cookie")
		return
	}

	if input.Name == "" {
		response.Error(w, http.StatusBadRequest, "Cookie name is required")
		return
	}

	if err := c.service.Update(id, input); err != nil {
		logger.WithCtx(r.Context()).Error("update cookie", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to update cookie")
		return
	}

	response.OK(w, map[string]interface{}{
		"success": true,
		"message": "Cookie updated successfully",
	})
}

// Delete handles DELETE /api/cookies/{id}.
func (c *CookieController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := cookieID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, "Cookie not found")
		return
	}

	err := c.service.Delete(id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Cookie not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("delete cookie", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to delete cookie")
		return
	}

	response.OK(w, map[string]interface{}{
		"success": true,
		"message": "Cookie deleted successfully",
	})
}

// cookieID parses the {id} route parameter. A non-numeric id can never
// match a row, so callers treat a parse failure the same as a miss.
func cookieID(r *http.Request) (uint, bool) {
	raw := router.Param(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
