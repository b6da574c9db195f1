package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ovenfresh/cookieshop/app/routes"
	"github.com/ovenfresh/cookieshop/app/services"
	"github.com/ovenfresh/cookieshop/config"
	_ "github.com/ovenfresh/cookieshop/database/migrations"
	"github.com/ovenfresh/cookieshop/database/seeders"
	"github.com/ovenfresh/cookieshop/pkg/cache"
	"github.com/ovenfresh/cookieshop/pkg/database"
	"github.com/ovenfresh/cookieshop/pkg/event"
	"github.com/ovenfresh/cookieshop/pkg/logger"
	"github.com/ovenfresh/cookieshop/pkg/metrics"
	"github.com/ovenfresh/cookieshop/pkg/middleware"
	"github.com/ovenfresh/cookieshop/pkg/migration"
	"github.com/ovenfresh/cookieshop/pkg/reqid"
	"github.com/ovenfresh/cookieshop/pkg/router"
	"github.com/ovenfresh/cookieshop/pkg/storage"
	"github.com/ovenfresh/cookieshop/pkg/ws"
)

// Start boots the whole application: configuration, database with
// migrations and seeds, cache, storage, the websocket hub, and finally
// the HTTP listener. It blocks until SIGINT/SIGTERM and then drains
// in-flight requests.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	runner := migration.New(database.DB)
	if err := runner.Run(); err != nil {
		return err
	}
	if err := seeders.RunAll(database.DB); err != nil {
		return err
	}

	// Cache and storage are optional at boot. The cache layer is
	// nil-safe and degrades to direct DB reads.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, catalogue cache disabled", "error", err)
	}
	storage.Connect()

	hub := ws.NewHub()
	go hub.Run()
	registerListeners(hub)

	r := router.New()
	r.Use(reqid.Middleware(), middleware.Logger, metrics.Middleware(), middleware.Recovery)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	routes.Register(r, database.DB, hub)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("cookieshop listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// registerListeners wires catalogue change events to their consumers:
// the Redis cache entry is invalidated and every connected admin
// dashboard gets a websocket frame.
func registerListeners(hub *ws.Hub) {
	invalidate := func(interface{}) {
		_ = cache.Del(services.CatalogueCacheKey)
	}
	broadcast := func(payload interface{}) {
		frame, err := json.Marshal(payload)
		if err != nil {
			return
		}
		select {
		case hub.Broadcast <- frame:
		default:
		}
	}

	for _, name := range []string{
		services.EventCookieCreated,
		services.EventCookieUpdated,
		services.EventCookieDeleted,
	} {
		event.Listen(name, invalidate)
		event.Listen(name, broadcast)
	}
}
