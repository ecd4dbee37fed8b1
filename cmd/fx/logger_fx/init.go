package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"messhall/internal/config"
	"messhall/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.Invoke(zap.ReplaceGlobals),
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		FilePath:    cfg.Log.FilePath,
		Development: cfg.Log.Development,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}
