package bootstrap

import (
	"context"
	"time"

	"github.com/projecttracker/tracker/internal/config"
	"github.com/projecttracker/tracker/internal/infra/blob"
	"github.com/projecttracker/tracker/internal/infra/cache"
	"github.com/projecttracker/tracker/internal/infra/db"
	"github.com/projecttracker/tracker/internal/infra/logger"
	"github.com/projecttracker/tracker/internal/infra/queue"
	"github.com/projecttracker/tracker/internal/modules/handler"
	"github.com/projecttracker/tracker/internal/modules/repo"
	"github.com/projecttracker/tracker/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildContainer registers lazy providers: nothing connects until the first
// invoke, and every later invoke shares the same instance.
func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level, cfg.Log.Format)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		return db.New(do.MustInvoke[*config.Config](i))
	})

	// Redis, optional
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Redis.Addr == "" {
			return nil, nil
		}
		return cache.New(cfg), nil
	})

	// RabbitMQ, optional
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		conn, err := amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			// events are best-effort; serve without them
			do.MustInvoke[*zap.Logger](i).Sugar().Warnw("rabbitmq unavailable, change events disabled", "err", err)
			return nil, nil
		}
		return conn, nil
	})

	// S3, optional
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.S3.Bucket == "" {
			return nil, nil
		}
		return blob.NewS3(context.Background(), cfg)
	})
	// get presign expire duration
	do.Provide(inj, func(i *do.Injector) (func() time.Duration, error) {
		return do.MustInvoke[*config.Config](i).PresignExpire, nil
	})

	// change notifier; interface values stay untyped nil when disabled
	do.Provide(inj, func(i *do.Injector) (service.Notifier, error) {
		conn := do.MustInvoke[*amqp.Connection](i)
		if conn == nil {
			return nil, nil
		}
		cfg := do.MustInvoke[*config.Config](i)
		p, err := queue.NewPublisher(conn, cfg.RabbitMQ.Exchange, do.MustInvoke[*zap.Logger](i))
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProductTypeCache, error) {
		rdb := do.MustInvoke[*redis.Client](i)
		if rdb == nil {
			return nil, nil
		}
		return cache.NewProductTypeCache(rdb, do.MustInvoke[*config.Config](i).CacheTTL()), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SnapshotStore, error) {
		s3 := do.MustInvoke[*blob.S3Deps](i)
		if s3 == nil {
			return nil, nil
		}
		return s3, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProductTypeRepo, error) {
		return repo.NewProductTypeRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[service.Notifier](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProductTypeService, error) {
		return service.NewProductTypeService(
			do.MustInvoke[repo.ProductTypeRepo](i),
			do.MustInvoke[service.ProductTypeCache](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[service.Notifier](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ExportService, error) {
		return service.NewExportService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ProductTypeRepo](i),
			do.MustInvoke[service.SnapshotStore](i),
			do.MustInvoke[func() time.Duration](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.HealthHandler, error) {
		return handler.NewHealthHandler(
			do.MustInvoke[*gorm.DB](i),
			do.MustInvoke[*config.Config](i).Database.Name,
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProductTypeHandler, error) {
		return handler.NewProductTypeHandler(do.MustInvoke[service.ProductTypeService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ExportHandler, error) {
		return handler.NewExportHandler(do.MustInvoke[service.ExportService](i)), nil
	})

	return inj
}
