package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/projecttracker/tracker/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func createTestProject(t *testing.T, r ProjectRepo, name, deadline string, createdAt time.Time) *model.Project {
	t.Helper()
	p := &model.Project{
		Name:         name,
		Client:       "Acme",
		ProductTypes: datatypes.JSONSlice[string]{"Manhole"},
		Deadline:     deadline,
		Status:       model.StatusDraft,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	require.NoError(t, r.Create(context.Background(), p))
	return p
}

func TestProjectRepo_ListOrdersByDeadlineEmptyLast(t *testing.T) {
	r := NewProjectRepo(setupTestDB(t))
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	createTestProject(t, r, "no deadline", "", base)
	createTestProject(t, r, "late", "2026-12-01", base.Add(time.Minute))
	createTestProject(t, r, "early", "2026-04-15", base.Add(2*time.Minute))
	createTestProject(t, r, "early twin", "2026-04-15", base.Add(3*time.Minute))

	got, err := r.List(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"early", "early twin", "late", "no deadline"}, names)
}

func TestProjectRepo_CreateAssignsID(t *testing.T) {
	r := NewProjectRepo(setupTestDB(t))
	p := createTestProject(t, r, "Foo", "", time.Now())

	assert.NotEqual(t, uuid.Nil, p.ID)

	got, err := r.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Foo", got.Name)
	assert.Equal(t, []string{"Manhole"}, []string(got.ProductTypes))
}

func TestProjectRepo_GetMissing(t *testing.T) {
	r := NewProjectRepo(setupTestDB(t))

	_, err := r.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepo_ReplaceKeepsCreatedAt(t *testing.T) {
	r := NewProjectRepo(setupTestDB(t))
	created := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	p := createTestProject(t, r, "Foo", "2026-05-01", created)

	updated := created.Add(48 * time.Hour)
	out, err := r.Replace(context.Background(), &model.Project{
		ID:           p.ID,
		Name:         "Foo v2",
		Client:       "Bar",
		ProductTypes: datatypes.JSONSlice[string]{},
		Status:       model.StatusApproved,
		UpdatedAt:    updated,
	})
	require.NoError(t, err)

	assert.Equal(t, "Foo v2", out.Name)
	assert.Equal(t, "Bar", out.Client)
	assert.Empty(t, out.ProductTypes)
	assert.Equal(t, "", out.Deadline)
	assert.Equal(t, model.StatusApproved, out.Status)
	assert.True(t, out.CreatedAt.Equal(created))
	assert.True(t, out.UpdatedAt.Equal(updated))
}

func TestProjectRepo_ReplaceMissing(t *testing.T) {
	r := NewProjectRepo(setupTestDB(t))

	_, err := r.Replace(context.Background(), &model.Project{ID: uuid.New(), Name: "x", Client: "y", Status: model.StatusDraft})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepo_Delete(t *testing.T) {
	r := NewProjectRepo(setupTestDB(t))
	p := createTestProject(t, r, "Foo", "", time.Now())

	require.NoError(t, r.Delete(context.Background(), p.ID))

	_, err := r.Get(context.Background(), p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, r.Delete(context.Background(), p.ID), gorm.ErrRecordNotFound)
}
