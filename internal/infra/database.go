package infra

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"messhall/internal/config"
	"messhall/internal/models/db_models"
)

// OpenDatabase connects with the configured driver and migrates the ledger tables.
func OpenDatabase(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Error("Error connecting to database", zap.String("driver", cfg.Driver), zap.Error(err))
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.Driver != "postgres" {
		// sqlite has no row locks; a single connection serializes writers.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(db_models.All()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq := db_models.IDSequence{Name: db_models.AccountSequence, Value: 0}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seq).Error; err != nil {
		return nil, fmt.Errorf("init account sequence: %w", err)
	}

	logger.Info("database ready", zap.String("driver", cfg.Driver))
	return db, nil
}

func CloseDatabase(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
		return
	}
	logger.Info("database connection closed")
}
