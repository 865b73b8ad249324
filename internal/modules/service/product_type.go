package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/projecttracker/tracker/internal/modules/model"
	"github.com/projecttracker/tracker/internal/modules/repo"
	"go.uber.org/zap"
)

type ProductTypeService interface {
	List(ctx context.Context) ([]*model.ProductType, error)
	Create(ctx context.Context, name string) (*model.ProductType, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.ProductType, error)
}

// ProductTypeCache holds the sorted product type list between writes.
// Set must drop items loaded under a generation older than the current one.
// A nil cache disables caching.
type ProductTypeCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context) ([]*model.ProductType, bool, error)
	Set(ctx context.Context, gen int64, items []*model.ProductType) error
	Invalidate(ctx context.Context) error
}

type productTypeService struct {
	r     repo.ProductTypeRepo
	cache ProductTypeCache
	log   *zap.Logger
	ev    notifier
	now   func() time.Time
}

func NewProductTypeService(r repo.ProductTypeRepo, cache ProductTypeCache, log *zap.Logger, n Notifier) ProductTypeService {
	return &productTypeService{
		r:     r,
		cache: cache,
		log:   log,
		ev:    notifier{n: n, log: log},
		now:   now,
	}
}

// List returns product types by name. An empty table is seeded with
// model.DefaultProductTypes first; once any row exists this is a plain read.
func (s *productTypeService) List(ctx context.Context) ([]*model.ProductType, error) {
	// the generation is read before the database so a write that lands in
	// between makes the Set below a no-op
	var (
		gen       int64
		cacheable bool
	)
	if s.cache != nil {
		var err error
		if gen, err = s.cache.Generation(ctx); err != nil {
			s.log.Sugar().Warnw("read product type cache generation", "err", err)
		} else {
			cacheable = true
			items, ok, err := s.cache.Get(ctx)
			if err != nil {
				s.log.Sugar().Warnw("read product type cache", "err", err)
			} else if ok {
				return items, nil
			}
		}
	}

	items, err := s.r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}

	if len(items) == 0 {
		// a concurrent seed can win the unique index; its rows are just as good
		if err := s.r.Seed(ctx, model.DefaultProductTypes, s.now()); err != nil && !errors.Is(translate(err), ErrConflict) {
			return nil, fmt.Errorf("seed product types: %w", err)
		}
		if items, err = s.r.List(ctx); err != nil {
			return nil, fmt.Errorf("list product types: %w", err)
		}
	}

	if cacheable {
		if err := s.cache.Set(ctx, gen, items); err != nil {
			s.log.Sugar().Warnw("write product type cache", "err", err)
		}
	}
	return items, nil
}

func (s *productTypeService) Create(ctx context.Context, name string) (*model.ProductType, error) {
	exists, err := s.r.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check product type %q: %w", name, err)
	}
	if exists {
		return nil, fmt.Errorf("product type %q: %w", name, ErrConflict)
	}

	pt := &model.ProductType{Name: name, CreatedAt: s.now()}
	if err := s.r.Create(ctx, pt); err != nil {
		return nil, fmt.Errorf("create product type %q: %w", name, translate(err))
	}

	s.invalidate(ctx)
	s.ev.emit(ctx, model.EventProductTypeCreated, pt.ID, pt.Name, 0)
	return pt, nil
}

// Delete removes the product type and pulls its name out of every project
// that references it.
func (s *productTypeService) Delete(ctx context.Context, id uuid.UUID) (*model.ProductType, error) {
	pt, affected, err := s.r.DeleteAndPull(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete product type %s: %w", id, translate(err))
	}

	s.invalidate(ctx)
	s.log.Sugar().Infow("product type deleted", "id", id, "name", pt.Name, "projects_updated", affected)
	s.ev.emit(ctx, model.EventProductTypeDeleted, pt.ID, pt.Name, affected)
	return pt, nil
}

func (s *productTypeService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Sugar().Warnw("invalidate product type cache", "err", err)
	}
}
