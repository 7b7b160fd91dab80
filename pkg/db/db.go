package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormprometheus "gorm.io/plugin/prometheus"

	"github.com/basssoft/arms/internal/config"
)

func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if cfg.MetricsEnabled {
		if err := db.Use(gormprometheus.New(gormprometheus.Config{
			DBName:          "arms",
			RefreshInterval: 15,
		})); err != nil {
			log.Warn("failed to register db metrics plugin", zap.Error(err))
		}
	}

	log.Info("database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}

var Module = fx.Module("db",
	fx.Provide(Open),
)
