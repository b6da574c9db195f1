package controllers

import (
	"net/http"

	"github.com/ovenfresh/cookieshop/app/repositories"
	"github.com/ovenfresh/cookieshop/pkg/logger"
	"github.com/ovenfresh/cookieshop/pkg/response"
)

// PackageController serves the box-size options shown on the order page.
type PackageController struct {
	packages *repositories.PackageOptionRepository
}

func NewPackageController(packages *repositories.PackageOptionRepository) *PackageController {
	return &PackageController{packages: packages}
}

// List handles GET /api/packages.
func (c *PackageController) List(w http.ResponseWriter, r *http.Request) {
	options, err := c.packages.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list packages", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch packages")
		return
	}

	response.OK(w, map[string]interface{}{"packages": options})
}
