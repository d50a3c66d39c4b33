package interfaces

import (
	"context"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/query"
)

type UserService interface {
	CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	UpdateUser(ctx context.Context, updateCommand *command.UpdateUserCommand) (*command.UpdateUserCommandResult, error)
	DeleteUser(ctx context.Context, id uint) error
	FindUserById(ctx context.Context, id uint) (*query.UserQueryResult, error)
	FindUserByEmail(ctx context.Context, email string) (*query.UserQueryResult, error)
	ListUsers(ctx context.Context) (*query.UserQueryListResult, error)
	GetProfile(ctx context.Context, id uint) (*query.UserQueryResult, error)
}
