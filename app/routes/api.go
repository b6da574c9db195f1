package routes

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/ovenfresh/cookieshop/app/controllers"
	"github.com/ovenfresh/cookieshop/app/graphql"
	"github.com/ovenfresh/cookieshop/app/repositories"
	"github.com/ovenfresh/cookieshop/app/services"
	"github.com/ovenfresh/cookieshop/config"
	"github.com/ovenfresh/cookieshop/pkg/logger"
	"github.com/ovenfresh/cookieshop/pkg/metrics"
	"github.com/ovenfresh/cookieshop/pkg/middleware"
	"github.com/ovenfresh/cookieshop/pkg/router"
	"github.com/ovenfresh/cookieshop/pkg/ws"
)

// Register wires every route of the application onto r.
//
// Authorization is layered per surface: the JSON mutation routes check
// the bearer access token, while the server-rendered /admin pages only
// gate on refresh cookie presence and leave real enforcement to the
// API calls the pages make.
func Register(r *router.Router, db *gorm.DB, hub *ws.Hub) {
	cookieRepo := repositories.NewCookieRepository(db)
	userRepo := repositories.NewUserRepository(db)
	packageRepo := repositories.NewPackageOptionRepository(db)

	authService := services.NewAuthService(userRepo)
	cookieService := services.NewCookieService(cookieRepo)

	authController := controllers.NewAuthController(authService)
	cookieController := controllers.NewCookieController(cookieService)
	packageController := controllers.NewPackageController(packageRepo)
	adminController := controllers.NewAdminController(cookieService)
	pageController := controllers.NewPageController(cookieService)

	requireAdmin := middleware.RequireAdmin("Unauthorized")
	requireResetAdmin := middleware.RequireAdmin("Unauthorized - admin access required")
	loginLimit := middleware.RateLimit(10, time.Minute)

	api := r.Group("/api")
	api.Get("/cookies", "cookies.list", cookieController.List)
	api.Get("/cookies/{id}", "cookies.show", cookieController.Get)
	api.Post("/cookies", "cookies.create", cookieController.Create, requireAdmin)
	api.Put("/cookies/{id}", "cookies.update", cookieController.Update, requireAdmin)
	api.Delete("/cookies/{id}", "cookies.delete", cookieController.Delete, requireAdmin)

	api.Get("/packages", "packages.list", packageController.List)

	api.Post("/admin/login", "admin.login", authController.Login, loginLimit)
	api.Post("/auth/verify", "auth.verify", authController.Verify)

	api.Post("/admin/reset-db", "admin.reset", adminController.ResetDB, requireResetAdmin)
	api.Post("/admin/upload", "admin.upload", adminController.Upload, requireAdmin)

	if gql, err := graphql.NewHandler(cookieService); err != nil {
		logger.Error("graphql schema", "error", err)
	} else {
		api.Post("/graphql", "graphql", gql.ServeHTTP)
	}

	admin := r.Group("/admin", middleware.AdminGate)
	admin.Get("/login", "admin.page.login", pageController.LoginPage)
	admin.Get("/dashboard", "admin.page.dashboard", pageController.Dashboard)
	admin.Get("/cookies/edit/{id}", "admin.page.edit", pageController.EditCookie)

	r.Get("/ws/admin", "ws.admin", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, hub)
	})

	r.HandleFunc("/metrics", metrics.Handler().ServeHTTP)

	if config.StorageDefault() == "local" {
		fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(config.StorageLocalRoot())))
		r.HandleFunc("/storage/*", fs.ServeHTTP)
	}
}
