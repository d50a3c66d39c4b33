package services

import (
	"context"
	"testing"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/db/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeniusFixture(t *testing.T) (*taskFixture, *fakeGateway, *GeniusService) {
	f := newTaskFixture(t)
	gateway := &fakeGateway{}
	service := NewGeniusService(postgres.NewTaskRepository(f.db), gateway).(*GeniusService)
	return f, gateway, service
}

func TestGetAdviceWithoutTasksSkipsTheAssistant(t *testing.T) {
	_, gateway, service := newGeniusFixture(t)

	result, err := service.GetAdvice(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, NoTasksAdvice, result.Advice)
	assert.Zero(t, gateway.calls)
}

func TestGetAdviceSendsOpenTasks(t *testing.T) {
	f, gateway, service := newGeniusFixture(t)
	ctx := context.Background()
	f.create(t, f.ana, "open")
	done := f.create(t, f.ana, "done")
	_, err := f.service.UpdateOwnedTask(ctx, f.ana, &command.UpdateTaskCommand{Id: done, IsCompleted: ptr(true)})
	require.NoError(t, err)
	f.create(t, f.ben, "someone else's")

	result, err := service.GetAdvice(ctx, f.ana)
	require.NoError(t, err)
	assert.Equal(t, "advice", result.Advice)
	require.Len(t, gateway.tasks, 1)
	assert.Equal(t, "open", gateway.tasks[0].Title)
}

func TestGetAdviceSendsAllTasksWhenEverythingIsDone(t *testing.T) {
	f, gateway, service := newGeniusFixture(t)
	ctx := context.Background()
	for _, title := range []string{"a", "b"} {
		id := f.create(t, f.ana, title)
		_, err := f.service.UpdateOwnedTask(ctx, f.ana, &command.UpdateTaskCommand{Id: id, IsCompleted: ptr(true)})
		require.NoError(t, err)
	}

	_, err := service.GetAdvice(ctx, f.ana)
	require.NoError(t, err)
	assert.Len(t, gateway.tasks, 2)
}

func TestPassThroughOperations(t *testing.T) {
	_, gateway, service := newGeniusFixture(t)
	ctx := context.Background()

	title, err := service.GetTitleSuggestion(ctx, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "title", title.Title)

	formatted, err := service.GetDescriptionFormatting(ctx, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "formatted", formatted.Description)

	advice, err := service.GetAdviceForTask(ctx, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "task advice", advice.Advice)
	assert.Equal(t, "buy milk", gateway.description)
	assert.Equal(t, 3, gateway.calls)
}

func TestGetAdviceForOwnedTask(t *testing.T) {
	f, gateway, service := newGeniusFixture(t)
	ctx := context.Background()
	id := f.create(t, f.ana, "report")

	result, err := service.GetAdviceForOwnedTask(ctx, f.ana, id)
	require.NoError(t, err)
	assert.Equal(t, "task advice", result.Advice)
	assert.Equal(t, "about report", gateway.description)

	_, err = service.GetAdviceForOwnedTask(ctx, f.ben, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, gateway.calls)
}

func TestAskQuestion(t *testing.T) {
	f, gateway, service := newGeniusFixture(t)
	ctx := context.Background()

	_, err := service.AskQuestion(ctx, &command.AskQuestionCommand{UserId: f.ana, Question: "what first?"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, gateway.calls)

	f.create(t, f.ana, "report")
	result, err := service.AskQuestion(ctx, &command.AskQuestionCommand{UserId: f.ana, Question: "what first?"})
	require.NoError(t, err)
	assert.Equal(t, "answer", result.Answer)
	assert.Equal(t, "what first?", gateway.question)
	require.Len(t, gateway.tasks, 1)
}

func TestGatewayErrorsPropagate(t *testing.T) {
	f, gateway, service := newGeniusFixture(t)
	f.create(t, f.ana, "report")
	gateway.err = domain.ErrUpstream

	_, err := service.GetAdvice(context.Background(), f.ana)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
