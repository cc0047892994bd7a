package database

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmercer/portfolio-site-backend/errs"
	"github.com/jmercer/portfolio-site-backend/models"
	"github.com/stretchr/testify/require"
)

func testProject(title string) models.Project {
	return models.Project{
		Title:       title,
		Description: "A demo project for testing",
		ImageURL:    "https://example.com/image.png",
		DemoURL:     "https://example.com/demo",
		RepoURL:     "https://github.com/example/repo",
		Category:    models.CategoryWeb,
		Tags:        "react,ts",
	}
}

func TestProjectRepo_AddAndFindByID(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := testProject("Demo")
	require.NoError(t, repo.Add(&project))

	// Store assigned ID and timestamps
	require.NotEqual(t, uuid.Nil, project.ID)
	require.False(t, project.CreatedAt.IsZero())
	require.False(t, project.UpdatedAt.IsZero())
	require.False(t, project.UpdatedAt.Before(project.CreatedAt))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Equal(t, project.ID, found.ID)
	require.Equal(t, project.Title, found.Title)
	require.Equal(t, project.Description, found.Description)
	require.Equal(t, project.Category, found.Category)
	require.Equal(t, project.Tags, found.Tags)
	require.Equal(t, project.Featured, found.Featured)
}

func TestProjectRepo_FindByID_NotFound(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	_, err := repo.FindByID(uuid.New())
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestProjectRepo_FindAll_OrderedByCreationDesc(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	first := testProject("First")
	require.NoError(t, repo.Add(&first))

	time.Sleep(10 * time.Millisecond) // Ensure different timestamps

	second := testProject("Second")
	require.NoError(t, repo.Add(&second))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)

	// Most recent first
	require.Equal(t, "Second", projects[0].Title)
	require.Equal(t, "First", projects[1].Title)
}

func TestProjectRepo_Update_Partial(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := testProject("Original")
	require.NoError(t, repo.Add(&project))

	createdAt := project.CreatedAt
	previousUpdate := project.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	updated, err := repo.Update(project.ID, map[string]any{
		"title":    "Renamed",
		"featured": true,
	})
	require.NoError(t, err)

	// Supplied fields applied, others untouched
	require.Equal(t, "Renamed", updated.Title)
	require.True(t, updated.Featured)
	require.Equal(t, project.Description, updated.Description)
	require.Equal(t, project.Category, updated.Category)

	// Identity and creation time preserved, update time advanced
	require.Equal(t, project.ID, updated.ID)
	require.WithinDuration(t, createdAt, updated.CreatedAt, time.Second)
	require.False(t, updated.UpdatedAt.Before(previousUpdate))
}

func TestProjectRepo_Update_IgnoresProtectedColumns(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := testProject("Protected")
	require.NoError(t, repo.Add(&project))

	updated, err := repo.Update(project.ID, map[string]any{
		"id":         uuid.New(),
		"created_at": time.Now().Add(time.Hour),
		"title":      "Still Protected",
	})
	require.NoError(t, err)
	require.Equal(t, project.ID, updated.ID)
	require.WithinDuration(t, project.CreatedAt, updated.CreatedAt, time.Second)
	require.Equal(t, "Still Protected", updated.Title)
}

func TestProjectRepo_Update_NotFound(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	_, err := repo.Update(uuid.New(), map[string]any{"title": "Ghost"})
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestProjectRepo_Delete(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := testProject("Doomed")
	require.NoError(t, repo.Add(&project))

	require.NoError(t, repo.Delete(project.ID))

	_, err := repo.FindByID(project.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))

	// Deleting again reports not found
	require.True(t, errors.Is(repo.Delete(project.ID), errs.ErrNotFound))
}
