package interfaces

import (
	"context"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
)

type GeniusService interface {
	GetAdvice(ctx context.Context, userID uint) (*command.AdviceCommandResult, error)
	GetTitleSuggestion(ctx context.Context, description string) (*command.TitleSuggestionCommandResult, error)
	GetDescriptionFormatting(ctx context.Context, description string) (*command.DescriptionFormattingCommandResult, error)
	GetAdviceForTask(ctx context.Context, description string) (*command.AdviceCommandResult, error)
	GetAdviceForOwnedTask(ctx context.Context, userID, taskID uint) (*command.AdviceCommandResult, error)
	AskQuestion(ctx context.Context, askCommand *command.AskQuestionCommand) (*command.AnswerCommandResult, error)
}
