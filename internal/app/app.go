// Package app configures and runs application.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/apocaliss92/reolink-osd-sync/config"
	"github.com/apocaliss92/reolink-osd-sync/internal/cache"
	"github.com/apocaliss92/reolink-osd-sync/internal/controller/httpapi"
	"github.com/apocaliss92/reolink-osd-sync/internal/detection"
	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	"github.com/apocaliss92/reolink-osd-sync/internal/reolink"
	"github.com/apocaliss92/reolink-osd-sync/internal/repository/settings"
	"github.com/apocaliss92/reolink-osd-sync/internal/telemetry"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/devices"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/overlay"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/sessions"
	"github.com/apocaliss92/reolink-osd-sync/pkg/httpserver"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
	"github.com/apocaliss92/reolink-osd-sync/pkg/secrets"
)

// SecretStore holds the credential store for camera passwords (set during
// startup when a secret store is configured).
var SecretStore secrets.Storager

var Version = "DEVELOPMENT"

const shutdownGrace = 10 * time.Second

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Log.Level)
	cfg.App.Version = Version
	log.Info("app - Run - version: " + cfg.App.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	usecases, err := buildRuntimes(cfg, log)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - buildRuntimes: %w", err))
	}

	startRuntimes(cfg, usecases)
	defer stopRuntimes(log, usecases)

	handler := setupHTTPHandler(cfg, log, usecases)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.HTTP.Host, cfg.HTTP.Port),
		httpserver.TLS(cfg.HTTP.TLS.Enabled, cfg.HTTP.TLS.CertFile, cfg.HTTP.TLS.KeyFile),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)

	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}

// buildRuntimes assembles one runtime per configured camera plus the shared
// registry, hub and cache.
func buildRuntimes(cfg *config.Config, log logger.Interface) (usecase.Usecases, error) {
	httpClient := &http.Client{Timeout: cfg.Sync.RequestTimeout}

	usecases := usecase.Usecases{
		Cameras:   make(map[string]*usecase.CameraRuntime, len(cfg.Cameras)),
		Registry:  overlay.NewRegistry(),
		Hub:       detection.NewHub(),
		Telemetry: telemetry.NewRegistry(),
		Cache:     cache.NewFromConfig(cfg),
	}

	for _, c := range cfg.Cameras {
		cam := entity.Camera{
			ID:       c.ID,
			Name:     c.Name,
			Host:     c.Host,
			HTTPPort: c.HTTPPort,
			Username: c.Username,
			Password: c.Password,
			Channel:  c.Channel,
		}

		if cam.Password == "" && SecretStore != nil {
			password, err := SecretStore.GetKeyValue(secrets.CameraPasswordKey(cam.ID))
			if err != nil {
				return usecase.Usecases{}, fmt.Errorf("camera %s password: %w", cam.ID, err)
			}

			cam.Password = password
		}

		client := reolink.NewClient(cam, httpClient, log)
		sess := sessions.New(client, cam.ID, log)
		devs := devices.New(sess, client, log)
		store := settings.New()
		engine := overlay.NewEngine(cam.ID, devs, store, usecases.Telemetry, usecases.Hub, usecases.Registry, cfg.Sync.Interval, log)

		usecases.Cameras[cam.ID] = &usecase.CameraRuntime{
			Camera:   cam,
			Sessions: sess,
			Devices:  devs,
			Settings: store,
			Engine:   engine,
		}
	}

	return usecases, nil
}

func startRuntimes(cfg *config.Config, usecases usecase.Usecases) {
	for _, rt := range usecases.Cameras {
		rt.Sessions.StartKeepalive(cfg.Sync.KeepaliveInterval)
		rt.Engine.Start()
	}
}

func stopRuntimes(log logger.Interface, usecases usecase.Usecases) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	for _, rt := range usecases.Cameras {
		rt.Engine.Stop()
		rt.Sessions.StopKeepalive()

		if err := rt.Sessions.Logout(ctx); err != nil {
			log.Warn("app - Run - logout %s: %s", rt.Camera.ID, err.Error())
		}
	}
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, usecases usecase.Usecases) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	defaultConfig := cors.DefaultConfig()
	defaultConfig.AllowOrigins = cfg.HTTP.AllowedOrigins
	defaultConfig.AllowHeaders = cfg.HTTP.AllowedHeaders

	handler.Use(cors.New(defaultConfig))
	httpapi.NewRouter(handler, log, usecases, cfg)

	// Optionally enable pprof endpoints (e.g., for staging) via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}
