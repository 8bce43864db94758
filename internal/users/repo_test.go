package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jak-krittin/minishop-backend/pkg/db"
	"github.com/jak-krittin/minishop-backend/pkg/db/models"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}))
	return conn
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		FirstName:    "Jak",
		LastName:     "Krittin",
		Email:        "jak@example.com",
		PasswordHash: "$2a$10$fakehash",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byEmail, err := repo.FindByEmail(ctx, "jak@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "Jak", byEmail.FirstName)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jak@example.com", byID.Email)
}

func TestRepositoryCreateDuplicateEmail(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateUserDTO{
		FirstName:    "First",
		LastName:     "User",
		Email:        "dup@example.com",
		PasswordHash: "hash-a",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateUserDTO{
		FirstName:    "Second",
		LastName:     "User",
		Email:        "dup@example.com",
		PasswordHash: "hash-b",
	})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err))
}

func TestRepositoryFindByEmailMissing(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "missing@example.com")
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))
}
