package main

import (
	"context"
	"log/slog"
	"os"

	"medverify/cmd/bootstrap"
	"medverify/internal/handler/middleware"
	"medverify/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Release mode by default so a missing env var never exposes debug output
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           medverify
// @version         1.0
// @description     Pharmaceutical product verification service

// @BasePath  /api
// @schemes http https
// @in header
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func(cfg config.Config) *slog.Logger {
				logger := middleware.NewLogger(cfg.Log)
				return logger.GetSlogLogger()
			},
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application cleanly", "error", err)
	}

	slog.Info("application stopped")
}
