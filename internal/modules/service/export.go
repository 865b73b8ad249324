package service

import (
	"context"
	"fmt"
	"time"

	"github.com/projecttracker/tracker/internal/infra/blob"
	"github.com/projecttracker/tracker/internal/modules/model"
	"github.com/projecttracker/tracker/internal/modules/repo"
)

// SnapshotStore is the subset of blob.S3Deps used for exports.
type SnapshotStore interface {
	UploadJSON(ctx context.Context, keyPrefix string, data interface{}) (*blob.UploadedMeta, error)
	PresignGet(ctx context.Context, key string, expire time.Duration) (string, error)
}

type ExportService interface {
	Export(ctx context.Context) (*ExportOutput, error)
}

type Snapshot struct {
	ExportedAt   time.Time            `json:"exportedAt"`
	Projects     []*model.Project     `json:"projects"`
	ProductTypes []*model.ProductType `json:"productTypes"`
}

type ExportOutput struct {
	Key          string `json:"key"`
	URL          string `json:"url"`
	SHA256       string `json:"sha256"`
	Projects     int    `json:"projects"`
	ProductTypes int    `json:"productTypes"`
}

type exportService struct {
	projects     repo.ProjectRepo
	productTypes repo.ProductTypeRepo
	store        SnapshotStore
	expire       func() time.Duration
	now          func() time.Time
}

// NewExportService returns a service that uploads snapshots to store. A nil
// store makes every Export fail with ErrExportDisabled.
func NewExportService(projects repo.ProjectRepo, productTypes repo.ProductTypeRepo, store SnapshotStore, expire func() time.Duration) ExportService {
	return &exportService{
		projects:     projects,
		productTypes: productTypes,
		store:        store,
		expire:       expire,
		now:          now,
	}
}

func (s *exportService) Export(ctx context.Context) (*ExportOutput, error) {
	if s.store == nil {
		return nil, ErrExportDisabled
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	types, err := s.productTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}

	meta, err := s.store.UploadJSON(ctx, "exports", Snapshot{
		ExportedAt:   s.now().UTC(),
		Projects:     projects,
		ProductTypes: types,
	})
	if err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	url, err := s.store.PresignGet(ctx, meta.Key, s.expire())
	if err != nil {
		return nil, fmt.Errorf("presign snapshot: %w", err)
	}

	return &ExportOutput{
		Key:          meta.Key,
		URL:          url,
		SHA256:       meta.SHA256,
		Projects:     len(projects),
		ProductTypes: len(types),
	}, nil
}
