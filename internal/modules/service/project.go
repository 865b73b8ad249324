package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/projecttracker/tracker/internal/modules/model"
	"github.com/projecttracker/tracker/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, in ProjectInput) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, in ProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectInput carries every client-writable project field. Create and Update
// both treat it as the complete record: zero values mean "use the default".
type ProjectInput struct {
	Name         string
	Client       string
	ProductTypes []string
	Deadline     string
	Status       model.Status
	Notes        string
}

type projectService struct {
	r   repo.ProjectRepo
	ev  notifier
	now func() time.Time
}

func NewProjectService(r repo.ProjectRepo, log *zap.Logger, n Notifier) ProjectService {
	return &projectService{
		r:   r,
		ev:  notifier{n: n, log: log},
		now: now,
	}
}

func (s *projectService) List(ctx context.Context) ([]*model.Project, error) {
	projects, err := s.r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, translate(err))
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, in ProjectInput) (*model.Project, error) {
	p, err := in.toModel()
	if err != nil {
		return nil, err
	}
	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.r.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.ev.emit(ctx, model.EventProjectCreated, p.ID, p.Name, 0)
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, in ProjectInput) (*model.Project, error) {
	p, err := in.toModel()
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.UpdatedAt = s.now()

	out, err := s.r.Replace(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, translate(err))
	}

	s.ev.emit(ctx, model.EventProjectUpdated, out.ID, out.Name, 0)
	return out, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project %s: %w", id, translate(err))
	}

	s.ev.emit(ctx, model.EventProjectDeleted, id, "", 0)
	return nil
}

func (in ProjectInput) toModel() (*model.Project, error) {
	status := in.Status
	if status == "" {
		status = model.StatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}

	types := datatypes.JSONSlice[string]{}
	if in.ProductTypes != nil {
		types = append(types, in.ProductTypes...)
	}

	return &model.Project{
		Name:         in.Name,
		Client:       in.Client,
		ProductTypes: types,
		Deadline:     in.Deadline,
		Status:       status,
		Notes:        in.Notes,
	}, nil
}
