package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/projecttracker/tracker/internal/modules/model"
	"gorm.io/gorm"
)

type ProductTypeRepo interface {
	List(ctx context.Context) ([]*model.ProductType, error)
	Seed(ctx context.Context, names []string, createdAt time.Time) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, pt *model.ProductType) error
	// DeleteAndPull removes the product type and strips its name from every
	// project in one transaction. It returns the deleted row and the number of
	// projects that referenced it.
	DeleteAndPull(ctx context.Context, id uuid.UUID) (*model.ProductType, int64, error)
}

type productTypeRepo struct{ db *gorm.DB }

func NewProductTypeRepo(db *gorm.DB) ProductTypeRepo {
	return &productTypeRepo{db: db}
}

func (r *productTypeRepo) List(ctx context.Context) ([]*model.ProductType, error) {
	var items []*model.ProductType
	return items, r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
}

func (r *productTypeRepo) Seed(ctx context.Context, names []string, createdAt time.Time) error {
	items := make([]*model.ProductType, 0, len(names))
	for _, n := range names {
		items = append(items, &model.ProductType{Name: n, CreatedAt: stamp(createdAt)})
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *productTypeRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.ProductType{}).Where("name = ?", name).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *productTypeRepo) Create(ctx context.Context, pt *model.ProductType) error {
	return r.db.WithContext(ctx).Create(pt).Error
}

func (r *productTypeRepo) DeleteAndPull(ctx context.Context, id uuid.UUID) (*model.ProductType, int64, error) {
	var (
		pt       model.ProductType
		affected int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&pt).Error; err != nil {
			return err
		}
		if err := tx.Delete(&pt).Error; err != nil {
			return fmt.Errorf("delete product type: %w", err)
		}

		n, err := pullProductType(tx, pt.Name)
		if err != nil {
			return fmt.Errorf("pull product type from projects: %w", err)
		}
		affected = n
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &pt, affected, nil
}

// pullProductType removes every occurrence of name from projects.product_types.
// Removing an absent name is a no-op, so re-running it is safe.
func pullProductType(tx *gorm.DB, name string) (int64, error) {
	needle, err := json.Marshal([]string{name})
	if err != nil {
		return 0, err
	}

	if tx.Dialector.Name() == "postgres" {
		res := tx.Model(&model.Project{}).
			Where("product_types @> ?::jsonb", string(needle)).
			UpdateColumn("product_types", gorm.Expr("product_types - ?::text", name))
		return res.RowsAffected, res.Error
	}

	// Dialects without jsonb operators: narrow with LIKE, confirm in Go.
	quoted, err := json.Marshal(name)
	if err != nil {
		return 0, err
	}
	var candidates []*model.Project
	if err := tx.Where("product_types LIKE ?", "%"+string(quoted)+"%").Find(&candidates).Error; err != nil {
		return 0, err
	}

	var affected int64
	for _, p := range candidates {
		if !p.HasProductType(name) {
			continue
		}
		if err := tx.Model(&model.Project{}).Where("id = ?", p.ID).
			UpdateColumn("product_types", p.WithoutProductType(name)).Error; err != nil {
			return affected, err
		}
		affected++
	}
	return affected, nil
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
