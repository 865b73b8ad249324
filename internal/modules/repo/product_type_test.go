package repo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/projecttracker/tracker/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestProductTypeRepo_SeedAndList(t *testing.T) {
	r := NewProductTypeRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, r.Seed(ctx, model.DefaultProductTypes, time.Now()))

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, len(model.DefaultProductTypes))

	// by name
	assert.Equal(t, "BESS Foundation", items[0].Name)
	assert.Equal(t, "Utility Vault", items[len(items)-1].Name)
	for _, it := range items {
		assert.NotEqual(t, uuid.Nil, it.ID)
		assert.False(t, it.CreatedAt.IsZero())
	}
}

func TestProductTypeRepo_UniqueName(t *testing.T) {
	r := NewProductTypeRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &model.ProductType{Name: "Culvert", CreatedAt: time.Now()}))

	exists, err := r.ExistsByName(ctx, "Culvert")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.ExistsByName(ctx, "culvert")
	require.NoError(t, err)
	assert.False(t, exists)

	err = r.Create(ctx, &model.ProductType{Name: "Culvert", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestProductTypeRepo_DeleteAndPull(t *testing.T) {
	d := setupTestDB(t)
	types := NewProductTypeRepo(d)
	projects := NewProjectRepo(d)
	ctx := context.Background()

	culvert := &model.ProductType{Name: "Culvert", CreatedAt: time.Now()}
	require.NoError(t, types.Create(ctx, culvert))

	mk := func(name string, tags ...string) *model.Project {
		p := &model.Project{Name: name, Client: "c", ProductTypes: tags, Status: model.StatusDraft}
		require.NoError(t, projects.Create(ctx, p))
		return p
	}
	both := mk("both", "Manhole", "Culvert", "Culvert")
	only := mk("only", "Culvert")
	other := mk("other", "Culverts", "Manhole")
	none := mk("none")

	deleted, affected, err := types.DeleteAndPull(ctx, culvert.ID)
	require.NoError(t, err)
	assert.Equal(t, "Culvert", deleted.Name)
	assert.Equal(t, int64(2), affected)

	exists, err := types.ExistsByName(ctx, "Culvert")
	require.NoError(t, err)
	assert.False(t, exists)

	expect := map[uuid.UUID][]string{
		both.ID:  {"Manhole"},
		only.ID:  {},
		other.ID: {"Culverts", "Manhole"},
		none.ID:  {},
	}
	for id, want := range expect {
		got, err := projects.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, []string(got.ProductTypes), got.Name)
	}

	// pulling again is a no-op
	n, err := pullProductType(d, "Culvert")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProductTypeRepo_DeleteAndPullMissing(t *testing.T) {
	r := NewProductTypeRepo(setupTestDB(t))

	_, _, err := r.DeleteAndPull(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductTypeRepo_DeleteAndPullPostgres(t *testing.T) {
	d, mock := setupMockPostgres(t)
	r := NewProductTypeRepo(d)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "product_types" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(id.String(), "Culvert", time.Now()))
	mock.ExpectExec(`DELETE FROM "product_types" WHERE "product_types"."id" = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "projects" SET "product_types"=product_types - \$1::text WHERE product_types @> \$2::jsonb`).
		WithArgs("Culvert", `["Culvert"]`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	pt, affected, err := r.DeleteAndPull(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Culvert", pt.Name)
	assert.Equal(t, int64(3), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductTypeRepo_DeleteAndPullPostgresRollsBack(t *testing.T) {
	d, mock := setupMockPostgres(t)
	r := NewProductTypeRepo(d)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "product_types"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(id.String(), "Culvert", time.Now()))
	mock.ExpectExec(`DELETE FROM "product_types"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "projects"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, _, err := r.DeleteAndPull(context.Background(), id)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectWithoutProductType(t *testing.T) {
	p := &model.Project{ProductTypes: datatypes.JSONSlice[string]{"a", "b", "a"}}
	assert.True(t, p.HasProductType("a"))
	assert.Equal(t, []string{"b"}, []string(p.WithoutProductType("a")))
	assert.False(t, p.HasProductType("c"))
}
