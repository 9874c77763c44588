package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvarela/taskdeck/internal/models"
)

func TestCreateArea(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	area, err := store.CreateArea(ctx, CreateAreaParams{Name: "Work", Color: ptr("#7aa2f7")})
	require.NoError(t, err)

	assert.Equal(t, "Work", area.Name)
	require.NotNil(t, area.Color)
	assert.Equal(t, "#7aa2f7", *area.Color)
	assert.False(t, area.CreatedAt.IsZero())
	assert.False(t, area.UpdatedAt.IsZero())
}

func TestCreateAreaEmptyColorStoredAsNull(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	area, err := store.CreateArea(ctx, CreateAreaParams{Name: "Home", Color: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, area.Color)
}

func TestCreateAreaEmptyName(t *testing.T) {
	store := newTestDB(t)

	_, err := store.CreateArea(context.Background(), CreateAreaParams{Name: "   "})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestUpdateAreaPartial(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	area, err := store.CreateArea(ctx, CreateAreaParams{Name: "Work", Color: ptr("#7aa2f7")})
	require.NoError(t, err)

	// Changing only the color keeps the name.
	updated, err := store.UpdateArea(ctx, area.ID, UpdateAreaParams{Color: models.Set("#9ece6a")})
	require.NoError(t, err)
	assert.Equal(t, "Work", updated.Name)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "#9ece6a", *updated.Color)
	assert.False(t, updated.UpdatedAt.Before(area.UpdatedAt))

	// Changing only the name keeps the color.
	updated, err = store.UpdateArea(ctx, area.ID, UpdateAreaParams{Name: ptr("Office")})
	require.NoError(t, err)
	assert.Equal(t, "Office", updated.Name)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "#9ece6a", *updated.Color)

	// Clearing the color nulls it.
	updated, err = store.UpdateArea(ctx, area.ID, UpdateAreaParams{Color: models.Clear[string]()})
	require.NoError(t, err)
	assert.Nil(t, updated.Color)
	assert.Equal(t, "Office", updated.Name)
}

func TestUpdateAreaNotFound(t *testing.T) {
	store := newTestDB(t)

	_, err := store.UpdateArea(context.Background(), 999, UpdateAreaParams{Name: ptr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAreaIdempotent(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	area, err := store.CreateArea(ctx, CreateAreaParams{Name: "Work"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteArea(ctx, area.ID))
	require.NoError(t, store.DeleteArea(ctx, area.ID))
	require.NoError(t, store.DeleteArea(ctx, 12345))
}

func TestDeleteAreaOrphansDependents(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	area, err := store.CreateArea(ctx, CreateAreaParams{Name: "Work"})
	require.NoError(t, err)
	project, err := store.CreateProject(ctx, CreateProjectParams{Name: "Launch", AreaID: &area.ID})
	require.NoError(t, err)
	task, err := store.CreateTask(ctx, CreateTaskParams{Title: "Ship it", AreaID: &area.ID})
	require.NoError(t, err)

	require.NoError(t, store.DeleteArea(ctx, area.ID))

	_, err = store.GetArea(ctx, area.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// Both dependents survive with the reference cleared.
	gotProject, err := store.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, gotProject.AreaID)
	assert.Equal(t, "Launch", gotProject.Name)

	gotTask, err := store.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, gotTask.AreaID)
	assert.Equal(t, "Ship it", gotTask.Title)
}

func TestListAreas(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	areas, err := store.ListAreas(ctx)
	require.NoError(t, err)
	assert.Empty(t, areas)

	_, err = store.CreateArea(ctx, CreateAreaParams{Name: "Work"})
	require.NoError(t, err)
	_, err = store.CreateArea(ctx, CreateAreaParams{Name: "Home"})
	require.NoError(t, err)

	areas, err = store.ListAreas(ctx)
	require.NoError(t, err)
	assert.Len(t, areas, 2)
}
