package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvarela/taskdeck/internal/models"
)

func TestCreateProject(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	area, err := store.CreateArea(ctx, CreateAreaParams{Name: "Work"})
	require.NoError(t, err)

	project, err := store.CreateProject(ctx, CreateProjectParams{
		Name:        "Launch",
		Description: ptr("Q3 release"),
		AreaID:      &area.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Launch", project.Name)
	require.NotNil(t, project.Description)
	assert.Equal(t, "Q3 release", *project.Description)
	require.NotNil(t, project.AreaID)
	assert.Equal(t, area.ID, *project.AreaID)
	assert.False(t, project.IsCompleted)
	assert.Nil(t, project.CompletedAt)
}

func TestCreateProjectDanglingArea(t *testing.T) {
	store := newTestDB(t)

	_, err := store.CreateProject(context.Background(), CreateProjectParams{Name: "Launch", AreaID: ptr(int64(404))})
	require.ErrorIs(t, err, ErrDanglingReference)

	projects, err := store.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestUpdateProjectCompletionTimestamp(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	project, err := store.CreateProject(ctx, CreateProjectParams{Name: "Launch"})
	require.NoError(t, err)

	done, err := store.UpdateProject(ctx, project.ID, UpdateProjectParams{IsCompleted: ptr(true)})
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)
	require.NotNil(t, done.CompletedAt)

	undone, err := store.UpdateProject(ctx, project.ID, UpdateProjectParams{IsCompleted: ptr(false)})
	require.NoError(t, err)
	assert.False(t, undone.IsCompleted)
	assert.Nil(t, undone.CompletedAt)

	// Toggling twice round-trips.
	done, err = store.UpdateProject(ctx, project.ID, UpdateProjectParams{IsCompleted: ptr(true)})
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)
	require.NotNil(t, done.CompletedAt)
}

func TestUpdateProjectPartial(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	area, err := store.CreateArea(ctx, CreateAreaParams{Name: "Work"})
	require.NoError(t, err)
	project, err := store.CreateProject(ctx, CreateProjectParams{Name: "Launch", Color: ptr("#bb9af7")})
	require.NoError(t, err)

	updated, err := store.UpdateProject(ctx, project.ID, UpdateProjectParams{AreaID: models.Set(area.ID)})
	require.NoError(t, err)
	assert.Equal(t, "Launch", updated.Name)
	require.NotNil(t, updated.Color)
	require.NotNil(t, updated.AreaID)
	assert.Equal(t, area.ID, *updated.AreaID)

	// Explicit null clears the reference.
	updated, err = store.UpdateProject(ctx, project.ID, UpdateProjectParams{AreaID: models.Clear[int64]()})
	require.NoError(t, err)
	assert.Nil(t, updated.AreaID)
}

func TestUpdateProjectDanglingArea(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	project, err := store.CreateProject(ctx, CreateProjectParams{Name: "Launch"})
	require.NoError(t, err)

	_, err = store.UpdateProject(ctx, project.ID, UpdateProjectParams{AreaID: models.Set(int64(404))})
	require.ErrorIs(t, err, ErrDanglingReference)

	got, err := store.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AreaID)
}

func TestUpdateProjectNotFound(t *testing.T) {
	store := newTestDB(t)

	_, err := store.UpdateProject(context.Background(), 999, UpdateProjectParams{Name: ptr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProjectOrphansTasks(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	area, err := store.CreateArea(ctx, CreateAreaParams{Name: "Work"})
	require.NoError(t, err)
	project, err := store.CreateProject(ctx, CreateProjectParams{Name: "Launch", AreaID: &area.ID})
	require.NoError(t, err)
	task, err := store.CreateTask(ctx, CreateTaskParams{Title: "Ship it", ProjectID: &project.ID, AreaID: &area.ID})
	require.NoError(t, err)

	require.NoError(t, store.DeleteProject(ctx, project.ID))
	require.NoError(t, store.DeleteProject(ctx, project.ID)) // idempotent

	got, err := store.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ProjectID)
	// The task's own area reference is untouched.
	require.NotNil(t, got.AreaID)
	assert.Equal(t, area.ID, *got.AreaID)
}

func TestListProjectsByArea(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	area, err := store.CreateArea(ctx, CreateAreaParams{Name: "Work"})
	require.NoError(t, err)
	other, err := store.CreateArea(ctx, CreateAreaParams{Name: "Home"})
	require.NoError(t, err)

	inArea, err := store.CreateProject(ctx, CreateProjectParams{Name: "Launch", AreaID: &area.ID})
	require.NoError(t, err)
	_, err = store.CreateProject(ctx, CreateProjectParams{Name: "Garden", AreaID: &other.ID})
	require.NoError(t, err)
	_, err = store.CreateProject(ctx, CreateProjectParams{Name: "Unfiled"})
	require.NoError(t, err)

	projects, err := store.ListProjectsByArea(ctx, area.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, inArea.ID, projects[0].ID)

	// Unknown area id yields an empty result, not an error.
	projects, err = store.ListProjectsByArea(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
