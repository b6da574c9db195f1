package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/ovenfresh/cookieshop/app/services"
	"github.com/ovenfresh/cookieshop/pkg/logger"
	"github.com/ovenfresh/cookieshop/pkg/response"
	"github.com/ovenfresh/cookieshop/pkg/storage"
)

// maxUploadBytes caps product image uploads at 8 MiB.
const maxUploadBytes = 8 << 20

// AdminController groups the back-office maintenance endpoints.
type AdminController struct {
	service *services.CookieService
}

func NewAdminController(service *services.CookieService) *AdminController {
	return &AdminController{service: service}
}

// ResetDB handles POST /api/admin/reset-db. It removes every cookie
// created after the seed rows, restoring the catalogue to its shipped
// state without touching users or orders.
func (c *AdminController) ResetDB(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Reset(); err != nil {
		logger.WithCtx(r.Context()).Error("reset database", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to reset database")
		return
	}

	logger.WithCtx(r.Context()).Info("database reset to seed state")

	response.OK(w, map[string]interface{}{
		"success": true,
		"message": "Database reset successfully",
	})
}

// Upload handles POST /api/admin/upload. It accepts a multipart form
// with an "image" part and stores it on the configured disk under
// images/cookies/, returning the public URL to embed in a product.
func (c *AdminController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	name := uploadName(header.Filename)
	path := "images/cookies/" + name

	if err := storage.PutStream(path, file); err != nil {
		logger.WithCtx(r.Context()).Error("store upload", "path", path, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	logger.WithCtx(r.Context()).Info("image uploaded", "path", path, "size", header.Size)

	response.OK(w, map[string]interface{}{
		"success": true,
		"path":    path,
		"url":     storage.URL(path),
	})
}

// uploadName strips any client-supplied directory parts and prefixes a
// timestamp so repeated uploads of the same filename never collide.
func uploadName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" || base == "." {
		base = "image"
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), base)
}
