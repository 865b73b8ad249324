package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projecttracker/tracker/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	List(ctx context.Context) ([]*model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Replace(ctx context.Context, p *model.Project) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

// List orders by deadline ascending with empty deadlines last.
func (r *projectRepo) List(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	return projects, r.db.WithContext(ctx).
		Order("CASE WHEN deadline = '' THEN 1 ELSE 0 END, deadline ASC, created_at ASC").
		Find(&projects).Error
}

func (r *projectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Replace overwrites every mutable column of the project identified by p.ID
// and returns the stored row. created_at is never touched.
func (r *projectRepo) Replace(ctx context.Context, p *model.Project) (*model.Project, error) {
	var out model.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Project{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"name":          p.Name,
			"client":        p.Client,
			"product_types": p.ProductTypes,
			"deadline":      p.Deadline,
			"status":        p.Status,
			"notes":         p.Notes,
			"updated_at":    p.UpdatedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", p.ID).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
