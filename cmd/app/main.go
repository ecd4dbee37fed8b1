package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"messhall/cmd/fx/account_fx"
	"messhall/cmd/fx/admin_fx"
	"messhall/cmd/fx/complaint_fx"
	"messhall/cmd/fx/config_fx"
	"messhall/cmd/fx/controllers_fx"
	"messhall/cmd/fx/dashboard"
	"messhall/cmd/fx/db_fx"
	"messhall/cmd/fx/logger_fx"
	"messhall/cmd/fx/meal_fx"
	"messhall/cmd/fx/memcache_fx"
	"messhall/cmd/fx/payment_service_fx"
	"messhall/internal/config"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),

		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		account_fx.Module,
		meal_fx.Module,
		payment_service_fx.Module,
		complaint_fx.Module,
		admin_fx.Module,
		dashboard.Module,
		memcache_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to serve HTTP", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
