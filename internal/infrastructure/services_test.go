package infrastructure

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/santiago-morfe/TaskGeniusApi/internal/config"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRedisServiceDisabledWithoutConfig(t *testing.T) {
	ctx := context.Background()
	service := NewRedisService(ctx, config.Redis{}, discardLogger())
	assert.False(t, service.Enabled())

	require.NoError(t, service.SetProfile(ctx, &entities.User{Id: 1, Name: "Ana"}))
	cached, err := service.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, cached)
	assert.NoError(t, service.DeleteProfile(ctx, 1))
	assert.NoError(t, service.Close())
}

func TestRedisServiceDisabledOnBadURL(t *testing.T) {
	service := NewRedisService(context.Background(), config.Redis{URL: "://nope"}, discardLogger())
	assert.False(t, service.Enabled())
}

func TestEmailServiceDisabledWithoutKey(t *testing.T) {
	service := NewEmailService(config.Email{Sender: "noreply@example.com"}, discardLogger())
	assert.False(t, service.Enabled())
	assert.NoError(t, service.SendWelcome(context.Background(), "Ana", "ana@example.com"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(config.Log{Level: "warn", Format: "json"}, &buf)

	log.Info("hidden")
	log.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}
