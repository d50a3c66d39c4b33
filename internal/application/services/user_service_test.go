package services

import (
	"context"
	"errors"
	"testing"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/interfaces"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/db/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type userFixture struct {
	db      *gorm.DB
	service interfaces.UserService
	cache   *fakeCache
	mailer  *fakeMailer
}

func newUserFixture(t *testing.T) *userFixture {
	db := newTestDB(t)
	cache := newFakeCache()
	mailer := &fakeMailer{}
	return &userFixture{
		db:      db,
		service: NewUserService(postgres.NewUserRepository(db), fakeTokens{}, cache, mailer, discardLogger()),
		cache:   cache,
		mailer:  mailer,
	}
}

func (f *userFixture) register(t *testing.T, name, email string) *command.CreateUserCommandResult {
	t.Helper()
	result, err := f.service.CreateUser(context.Background(), &command.CreateUserCommand{
		Name:     name,
		Email:    email,
		Password: "secret-password",
	})
	require.NoError(t, err)
	return result
}

func TestCreateUser(t *testing.T) {
	f := newUserFixture(t)

	result := f.register(t, "Ana", "Ana@Example.com")
	require.NotNil(t, result.User)
	assert.NotZero(t, result.User.Id)
	assert.Equal(t, "ana@example.com", result.User.Email)
	assert.NotEmpty(t, result.Token)
	assert.False(t, result.Expiration.IsZero())
	assert.Equal(t, []string{"ana@example.com"}, f.mailer.sent)

	stored, err := postgres.NewUserRepository(f.db).FindById(context.Background(), result.User.Id)
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", stored.Password)
	assert.True(t, stored.CheckPassword("secret-password"))
}

func TestCreateUserRejects(t *testing.T) {
	f := newUserFixture(t)
	f.register(t, "Ana", "ana@example.com")

	_, err := f.service.CreateUser(context.Background(), &command.CreateUserCommand{
		Name: "Again", Email: "ANA@example.com", Password: "secret",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.service.CreateUser(context.Background(), &command.CreateUserCommand{
		Name: "", Email: "x@example.com", Password: "secret",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateUserSurvivesMailFailure(t *testing.T) {
	f := newUserFixture(t)
	f.mailer.err = errors.New("sendgrid down")

	result := f.register(t, "Ana", "ana@example.com")
	assert.NotZero(t, result.User.Id)
}

func TestLoginUser(t *testing.T) {
	f := newUserFixture(t)
	registered := f.register(t, "Ana", "ana@example.com")
	ctx := context.Background()

	result, err := f.service.LoginUser(ctx, &command.LoginUserCommand{Email: " ANA@example.com ", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, result.User.Id)
	assert.NotEmpty(t, result.Token)

	_, wrongPassword := f.service.LoginUser(ctx, &command.LoginUserCommand{Email: "ana@example.com", Password: "nope"})
	_, unknownEmail := f.service.LoginUser(ctx, &command.LoginUserCommand{Email: "who@example.com", Password: "secret-password"})

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestUpdateUser(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@example.com")
	f.register(t, "Ben", "ben@example.com")

	_, err := f.service.GetProfile(ctx, ana.User.Id)
	require.NoError(t, err)

	updated, err := f.service.UpdateUser(ctx, &command.UpdateUserCommand{Id: ana.User.Id, Name: "Ana Maria"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Result.Name)
	assert.Equal(t, "ana@example.com", updated.Result.Email)

	profile, err := f.service.GetProfile(ctx, ana.User.Id)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", profile.Result.Name, "update invalidates the cached profile")

	_, err = f.service.UpdateUser(ctx, &command.UpdateUserCommand{Id: ana.User.Id, Email: "BEN@example.com"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.service.UpdateUser(ctx, &command.UpdateUserCommand{Id: ana.User.Id, Password: "changed-password"})
	require.NoError(t, err)
	_, err = f.service.LoginUser(ctx, &command.LoginUserCommand{Email: "ana@example.com", Password: "changed-password"})
	assert.NoError(t, err)

	_, err = f.service.UpdateUser(ctx, &command.UpdateUserCommand{Id: 999, Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProfileReadsThroughCache(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@example.com")

	first, err := f.service.GetProfile(ctx, ana.User.Id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", first.Result.Name)
	require.Contains(t, f.cache.profiles, ana.User.Id)
	assert.Empty(t, f.cache.profiles[ana.User.Id].Password)

	require.NoError(t, f.db.Exec("UPDATE users SET name = ? WHERE id = ?", "Changed Behind", ana.User.Id).Error)
	second, err := f.service.GetProfile(ctx, ana.User.Id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", second.Result.Name, "served from cache")

	f.cache.getErr = errors.New("redis down")
	third, err := f.service.GetProfile(ctx, ana.User.Id)
	require.NoError(t, err)
	assert.Equal(t, "Changed Behind", third.Result.Name, "cache errors fall back to the database")

	_, err = f.service.GetProfile(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@example.com")

	tasks := NewTaskService(postgres.NewTaskRepository(f.db), postgres.NewIdempotencyRepository(f.db), discardLogger())
	_, err := tasks.CreateTask(ctx, &command.CreateTaskCommand{UserId: ana.User.Id, Title: "t", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteUser(ctx, ana.User.Id))
	assert.Equal(t, 1, f.cache.deletes)

	_, err = f.service.FindUserById(ctx, ana.User.Id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	remaining, err := tasks.ListTasksByOwner(ctx, ana.User.Id)
	require.NoError(t, err)
	assert.Empty(t, remaining.Result)

	assert.ErrorIs(t, f.service.DeleteUser(ctx, ana.User.Id), domain.ErrNotFound)
}

func TestFindAndListUsers(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	ana := f.register(t, "Ana", "ana@example.com")
	f.register(t, "Ben", "ben@example.com")

	byEmail, err := f.service.FindUserByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, ana.User.Id, byEmail.Result.Id)

	_, err = f.service.FindUserByEmail(ctx, "who@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := f.service.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all.Result, 2)
	assert.Equal(t, "Ana", all.Result[0].Name)
	assert.Equal(t, "Ben", all.Result[1].Name)
}

func TestDummyHashIsValidBcrypt(t *testing.T) {
	assert.False(t, entities.VerifyPassword("anything", dummyHash()))
	assert.Len(t, dummyHash(), 60)
}
