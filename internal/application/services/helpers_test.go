package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/db/postgres"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/genius"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := postgres.Open(postgres.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()), nil)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() { _ = postgres.Close(db) })
	return db
}

type fakeTokens struct{}

func (fakeTokens) GenerateToken(userID uint, email string) (string, time.Time, error) {
	return fmt.Sprintf("token-%d-%s", userID, email), time.Now().Add(30 * time.Minute), nil
}

type fakeCache struct {
	mutex    sync.Mutex
	profiles map[uint]entities.User
	getErr   error
	gets     int
	deletes  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{profiles: make(map[uint]entities.User)}
}

func (c *fakeCache) SetProfile(ctx context.Context, user *entities.User) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	profile := *user
	profile.Password = ""
	c.profiles[user.Id] = profile
	return nil
}

func (c *fakeCache) GetProfile(ctx context.Context, userID uint) (*entities.User, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	profile, ok := c.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (c *fakeCache) DeleteProfile(ctx context.Context, userID uint) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.deletes++
	delete(c.profiles, userID)
	return nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) SendWelcome(ctx context.Context, name, email string) error {
	m.sent = append(m.sent, email)
	return m.err
}

// fakeGateway records what reached the assistant.
type fakeGateway struct {
	tasks       []genius.TaskDetail
	description string
	question    string
	calls       int
	err         error
}

func (g *fakeGateway) GetAdvice(ctx context.Context, tasks []genius.TaskDetail) (string, error) {
	g.calls++
	g.tasks = tasks
	return "advice", g.err
}

func (g *fakeGateway) GetTitleSuggestion(ctx context.Context, description string) (string, error) {
	g.calls++
	g.description = description
	return "title", g.err
}

func (g *fakeGateway) GetDescriptionFormatting(ctx context.Context, description string) (string, error) {
	g.calls++
	g.description = description
	return "formatted", g.err
}

func (g *fakeGateway) GetAdviceForTask(ctx context.Context, description string) (string, error) {
	g.calls++
	g.description = description
	return "task advice", g.err
}

func (g *fakeGateway) GetAnswerToQuestion(ctx context.Context, tasks []genius.TaskDetail, question string) (string, error) {
	g.calls++
	g.tasks = tasks
	g.question = question
	return "answer", g.err
}
