package postgres

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLogsGoThroughSlogWithoutValues(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))

	db, err := Open(DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))

	ctx := context.Background()
	repo := NewUserRepository(db).(*UserRepository)
	first := createUser(t, repo, "Ana", "ana@example.com")

	missing, err := repo.FindByEmail(ctx, "who@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	duplicate := entities.NewUser("Ana", "ana@example.com", "secret")
	require.NoError(t, duplicate.HashPassword())
	validated, err := entities.NewValidatedUser(duplicate)
	require.NoError(t, err)
	_, err = repo.Create(ctx, validated)
	require.ErrorIs(t, err, domain.ErrConflict)

	out := logs.String()
	assert.Contains(t, out, "INSERT INTO", "the failed insert is still reported")
	assert.NotContains(t, out, first.Password)
	assert.NotContains(t, out, duplicate.Password)
	assert.NotContains(t, out, "$2a$")
	assert.NotContains(t, out, "who@example.com")
	assert.NotContains(t, out, "record not found")
	assert.NotContains(t, out, "\x1b[")

	for _, line := range bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
		assert.True(t, bytes.HasPrefix(line, []byte("{")), "every line is JSON: %s", line)
	}
}
