package interfaces

import (
	"context"
	"time"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/genius"
)

// TokenIssuer signs identity tokens. Implemented by infrastructure.JWTService.
type TokenIssuer interface {
	GenerateToken(userID uint, email string) (string, time.Time, error)
}

// ProfileCache is implemented by infrastructure.RedisService.
type ProfileCache interface {
	SetProfile(ctx context.Context, user *entities.User) error
	GetProfile(ctx context.Context, userID uint) (*entities.User, error)
	DeleteProfile(ctx context.Context, userID uint) error
}

// WelcomeMailer is implemented by infrastructure.EmailService.
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, name, email string) error
}

// AssistGateway is implemented by genius.Client.
type AssistGateway interface {
	GetAdvice(ctx context.Context, tasks []genius.TaskDetail) (string, error)
	GetTitleSuggestion(ctx context.Context, description string) (string, error)
	GetDescriptionFormatting(ctx context.Context, description string) (string, error)
	GetAdviceForTask(ctx context.Context, description string) (string, error)
	GetAnswerToQuestion(ctx context.Context, tasks []genius.TaskDetail, question string) (string, error)
}
