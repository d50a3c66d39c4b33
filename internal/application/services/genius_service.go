package services

import (
	"context"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/interfaces"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/mapper"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/repositories"
)

const NoTasksAdvice = "No tasks found for the user."

type GeniusService struct {
	taskRepo repositories.TaskRepository
	gateway  interfaces.AssistGateway
}

func NewGeniusService(taskRepo repositories.TaskRepository, gateway interfaces.AssistGateway) interfaces.GeniusService {
	return &GeniusService{
		taskRepo: taskRepo,
		gateway:  gateway,
	}
}

// GetAdvice sends the caller's open tasks, or every task when all of them
// are done. A caller without tasks gets NoTasksAdvice and nothing is sent.
func (s *GeniusService) GetAdvice(ctx context.Context, userID uint) (*command.AdviceCommandResult, error) {
	tasks, err := s.taskRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return &command.AdviceCommandResult{Advice: NoTasksAdvice}, nil
	}

	pending := make([]*entities.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.IsCompleted {
			pending = append(pending, task)
		}
	}
	if len(pending) == 0 {
		pending = tasks
	}

	advice, err := s.gateway.GetAdvice(ctx, mapper.NewTaskDetailsFromEntities(pending))
	if err != nil {
		return nil, err
	}
	return &command.AdviceCommandResult{Advice: advice}, nil
}

func (s *GeniusService) GetTitleSuggestion(ctx context.Context, description string) (*command.TitleSuggestionCommandResult, error) {
	title, err := s.gateway.GetTitleSuggestion(ctx, description)
	if err != nil {
		return nil, err
	}
	return &command.TitleSuggestionCommandResult{Title: title}, nil
}

func (s *GeniusService) GetDescriptionFormatting(ctx context.Context, description string) (*command.DescriptionFormattingCommandResult, error) {
	formatted, err := s.gateway.GetDescriptionFormatting(ctx, description)
	if err != nil {
		return nil, err
	}
	return &command.DescriptionFormattingCommandResult{Description: formatted}, nil
}

func (s *GeniusService) GetAdviceForTask(ctx context.Context, description string) (*command.AdviceCommandResult, error) {
	advice, err := s.gateway.GetAdviceForTask(ctx, description)
	if err != nil {
		return nil, err
	}
	return &command.AdviceCommandResult{Advice: advice}, nil
}

func (s *GeniusService) GetAdviceForOwnedTask(ctx context.Context, userID, taskID uint) (*command.AdviceCommandResult, error) {
	task, err := s.taskRepo.FindById(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(task, userID); err != nil {
		return nil, err
	}
	return s.GetAdviceForTask(ctx, task.Description)
}

func (s *GeniusService) AskQuestion(ctx context.Context, askCommand *command.AskQuestionCommand) (*command.AnswerCommandResult, error) {
	tasks, err := s.taskRepo.FindByOwner(ctx, askCommand.UserId)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, domain.NewValidationError("there are no tasks to ask about")
	}

	answer, err := s.gateway.GetAnswerToQuestion(ctx, mapper.NewTaskDetailsFromEntities(tasks), askCommand.Question)
	if err != nil {
		return nil, err
	}
	return &command.AnswerCommandResult{Answer: answer}, nil
}
