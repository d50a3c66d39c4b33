package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the schema
// applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := Open(DriverSQLite, dsn, nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func createUser(t *testing.T, repo *UserRepository, name, email string) *entities.User {
	t.Helper()
	user := entities.NewUser(name, email, "secret")
	require.NoError(t, user.HashPassword())
	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)
	created, err := repo.Create(context.Background(), validated)
	require.NoError(t, err)
	return created
}

func validatedTask(t *testing.T, userID uint, title string) *entities.ValidatedTask {
	t.Helper()
	task, err := entities.NewValidatedTask(entities.NewTask(userID, title, "description of "+title, nil, false))
	require.NoError(t, err)
	return task
}
