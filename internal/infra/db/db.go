package db

import (
	"context"
	"fmt"
	"time"

	"github.com/projecttracker/tracker/internal/config"
	"github.com/projecttracker/tracker/internal/modules/model"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the Postgres pool. Callers share the returned handle for the
// life of the process.
func New(cfg *config.Config) (*gorm.DB, error) {
	return Open(postgres.Open(cfg.Database.DSN), cfg)
}

// Open configures a gorm handle on any dialector; tests pass SQLite here.
func Open(dialector gorm.Dialector, cfg *config.Config) (*gorm.DB, error) {
	d, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.Database.AutoMigrate {
		if err := Migrate(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func Migrate(d *gorm.DB) error {
	if err := d.AutoMigrate(&model.Project{}, &model.ProductType{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func RegisterOpenTelemetryPlugin(d *gorm.DB) error {
	return d.Use(otelgorm.NewPlugin(otelgorm.WithDBName("project-tracker")))
}

// Ping checks connectivity and lists the stored tables.
func Ping(ctx context.Context, d *gorm.DB) ([]string, error) {
	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	tables, err := d.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}
