package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/config"
	"messhall/internal/infra"
	"messhall/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(seedDemo),
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, logger)
			return nil
		},
	})
	return db, nil
}

func seedDemo(cfg *config.Config, db *gorm.DB, auth services.Authenticator, logger *zap.Logger) error {
	if !cfg.Seed.Demo {
		return nil
	}
	return infra.SeedDemoAccounts(context.Background(), db, auth.Hash, logger)
}
