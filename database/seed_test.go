package database

import (
	"errors"
	"testing"

	"github.com/jmercer/portfolio-site-backend/errs"
	"github.com/jmercer/portfolio-site-backend/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRepo_FindByEmail(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	user := models.User{Name: "Admin", Email: "admin@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Add(&user))

	found, err := repo.FindByEmail("admin@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail("nobody@example.com")
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestSeed(t *testing.T) {
	db := New(newTestDB(t))

	require.NoError(t, db.Seed("admin@example.com", "password123"))

	admin, err := db.UserRepo().FindByEmail("admin@example.com")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password123")))

	projects, err := db.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 3)

	for _, project := range projects {
		require.True(t, models.ValidCategory(project.Category))
		require.NotEmpty(t, project.Title)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	db := New(newTestDB(t))

	require.NoError(t, db.Seed("admin@example.com", "password123"))
	require.NoError(t, db.Seed("admin@example.com", "password123"))

	count, err := db.UserRepo().Count()
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	projects, err := db.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 3)
}

func TestSeed_RequiresCredentials(t *testing.T) {
	db := New(newTestDB(t))

	require.Error(t, db.Seed("", ""))
}
