package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/interfaces"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/mapper"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/query"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/repositories"
)

type TaskService struct {
	taskRepo        repositories.TaskRepository
	idempotencyRepo repositories.IdempotencyRepository
	log             *slog.Logger
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	idempotencyRepo repositories.IdempotencyRepository,
	log *slog.Logger,
) interfaces.TaskService {
	return &TaskService{
		taskRepo:        taskRepo,
		idempotencyRepo: idempotencyRepo,
		log:             log.With("component", "task_service"),
	}
}

// CreateTask enforces entities.MaxTasksPerUser atomically in the store. A
// request repeating an idempotency key gets the stored result back and
// creates nothing.
func (s *TaskService) CreateTask(ctx context.Context, createCommand *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error) {
	var idempotencyRecord *entities.IdempotencyRecord
	if createCommand.IdempotencyKey != "" {
		existingRecord, err := s.idempotencyRepo.FindByKey(ctx, createCommand.UserId, createCommand.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existingRecord != nil {
			var result command.CreateTaskCommandResult
			if err := json.Unmarshal([]byte(existingRecord.Response), &result); err != nil {
				return nil, err
			}
			result.Replayed = true
			return &result, nil
		}

		requestJSON, err := json.Marshal(createCommand)
		if err != nil {
			return nil, fmt.Errorf("encode idempotent request: %w", err)
		}
		idempotencyRecord, err = entities.NewIdempotencyRecord(createCommand.UserId, createCommand.IdempotencyKey, string(requestJSON))
		if err != nil {
			return nil, err
		}
	}

	newTask := entities.NewTask(
		createCommand.UserId,
		createCommand.Title,
		createCommand.Description,
		createCommand.DueDate,
		createCommand.IsCompleted,
	)
	validatedTask, err := entities.NewValidatedTask(newTask)
	if err != nil {
		return nil, err
	}

	createdTask, err := s.taskRepo.CreateWithinQuota(ctx, validatedTask, entities.MaxTasksPerUser)
	if err != nil {
		return nil, err
	}

	s.log.Debug("task created", "task_id", createdTask.Id, "user_id", createdTask.UserId)
	result := command.CreateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(createdTask),
	}

	if idempotencyRecord != nil {
		s.storeIdempotentResult(ctx, idempotencyRecord, &result)
	}

	return &result, nil
}

// storeIdempotentResult is best effort: the task already exists, so a
// failure only costs the replay.
func (s *TaskService) storeIdempotentResult(ctx context.Context, record *entities.IdempotencyRecord, result *command.CreateTaskCommandResult) {
	responseJSON, err := json.Marshal(result)
	if err != nil {
		s.log.Warn("failed to encode idempotent result", "user_id", record.UserId, "error", err)
		return
	}
	record.SetResponse(string(responseJSON), http.StatusCreated)
	if err := s.idempotencyRepo.Create(ctx, record); err != nil {
		s.log.Warn("failed to store idempotency record", "user_id", record.UserId, "error", err)
	}
}

func (s *TaskService) FindTaskById(ctx context.Context, id uint) (*query.TaskQueryResult, error) {
	task, err := s.taskRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.NewNotFoundError("task")
	}

	return &query.TaskQueryResult{
		Result: mapper.NewTaskResultFromEntity(task),
	}, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error) {
	task, err := s.taskRepo.FindById(ctx, updateCommand.Id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.NewNotFoundError("task")
	}
	return s.applyUpdate(ctx, task, updateCommand)
}

// DeleteTask succeeds for an unknown id.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	return s.taskRepo.Delete(ctx, id)
}

func (s *TaskService) ListTasksByOwner(ctx context.Context, ownerID uint) (*query.TaskQueryListResult, error) {
	tasks, err := s.taskRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &query.TaskQueryListResult{
		Result: mapper.NewTaskResultsFromEntities(tasks),
	}, nil
}

func (s *TaskService) GetOwnedTask(ctx context.Context, callerID, id uint) (*query.TaskQueryResult, error) {
	task, err := s.ownedTask(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	return &query.TaskQueryResult{
		Result: mapper.NewTaskResultFromEntity(task),
	}, nil
}

func (s *TaskService) UpdateOwnedTask(ctx context.Context, callerID uint, updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error) {
	task, err := s.ownedTask(ctx, callerID, updateCommand.Id)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, task, updateCommand)
}

func (s *TaskService) DeleteOwnedTask(ctx context.Context, callerID, id uint) error {
	if _, err := s.ownedTask(ctx, callerID, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}

func (s *TaskService) ownedTask(ctx context.Context, callerID, id uint) (*entities.Task, error) {
	task, err := s.taskRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(task, callerID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) applyUpdate(ctx context.Context, task *entities.Task, updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error) {
	err := task.Apply(entities.TaskPatch{
		Title:        updateCommand.Title,
		Description:  updateCommand.Description,
		DueDate:      updateCommand.DueDate,
		ClearDueDate: updateCommand.ClearDueDate,
		IsCompleted:  updateCommand.IsCompleted,
	})
	if err != nil {
		return nil, err
	}
	validatedTask, err := entities.NewValidatedTask(task)
	if err != nil {
		return nil, err
	}

	updatedTask, err := s.taskRepo.Update(ctx, validatedTask)
	if err != nil {
		return nil, err
	}
	if updatedTask == nil {
		return nil, domain.NewNotFoundError("task")
	}

	return &command.UpdateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(updatedTask),
	}, nil
}
