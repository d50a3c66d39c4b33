package interfaces

import (
	"context"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/query"
)

// TaskService exposes the task store. The *Owned* methods are scoped to a
// caller and report a foreign task exactly like a missing one.
type TaskService interface {
	CreateTask(ctx context.Context, createCommand *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error)
	FindTaskById(ctx context.Context, id uint) (*query.TaskQueryResult, error)
	UpdateTask(ctx context.Context, updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error)
	DeleteTask(ctx context.Context, id uint) error
	ListTasksByOwner(ctx context.Context, ownerID uint) (*query.TaskQueryListResult, error)

	GetOwnedTask(ctx context.Context, callerID, id uint) (*query.TaskQueryResult, error)
	UpdateOwnedTask(ctx context.Context, callerID uint, updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error)
	DeleteOwnedTask(ctx context.Context, callerID, id uint) error
}
