package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/interfaces"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/mapper"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/query"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/repositories"
)

// Compared against when the e-mail is unknown so both login failures cost
// one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := entities.HashPassword("taskgenius-dummy-password")
	return hash
})

type UserService struct {
	userRepo repositories.UserRepository
	tokens   interfaces.TokenIssuer
	cache    interfaces.ProfileCache
	mailer   interfaces.WelcomeMailer
	log      *slog.Logger
}

// NewUserService wires the User Directory. cache and mailer may be nil.
func NewUserService(
	userRepo repositories.UserRepository,
	tokens interfaces.TokenIssuer,
	cache interfaces.ProfileCache,
	mailer interfaces.WelcomeMailer,
	log *slog.Logger,
) interfaces.UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
		cache:    cache,
		mailer:   mailer,
		log:      log.With("component", "user_service"),
	}
}

func (s *UserService) CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	newUser := entities.NewUser(createCommand.Name, createCommand.Email, createCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, newUser.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}

	if err := validatedUser.HashPassword(); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateToken(createdUser.Id, createdUser.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, createdUser.Name, createdUser.Email); err != nil {
			s.log.Warn("welcome e-mail not sent", "user_id", createdUser.Id, "error", err)
		}
	}

	s.log.Info("user registered", "user_id", createdUser.Id)
	return &command.CreateUserCommandResult{
		Token:      token,
		Expiration: expiresAt,
		User:       mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, entities.NormalizeEmail(loginCommand.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		entities.VerifyPassword(loginCommand.Password, dummyHash())
		return nil, domain.ErrInvalidCredentials
	}

	if !user.CheckPassword(loginCommand.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.Id, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &command.LoginUserCommandResult{
		Token:      token,
		Expiration: expiresAt,
		User:       mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) UpdateUser(ctx context.Context, updateCommand *command.UpdateUserCommand) (*command.UpdateUserCommandResult, error) {
	user, err := s.userRepo.FindById(ctx, updateCommand.Id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}

	if email := entities.NormalizeEmail(updateCommand.Email); email != "" && email != user.Email {
		owner, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.Id != user.Id {
			return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
		}
	}

	if err := user.UpdateProfile(updateCommand.Name, updateCommand.Email, updateCommand.Password); err != nil {
		return nil, err
	}
	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		return nil, err
	}
	s.invalidateProfile(ctx, updatedUser.Id)

	return &command.UpdateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewNotFoundError("user")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateProfile(ctx, id)
	s.log.Info("user deleted", "user_id", id)
	return nil
}

func (s *UserService) FindUserById(ctx context.Context, id uint) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) FindUserByEmail(ctx context.Context, email string) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, entities.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) ListUsers(ctx context.Context) (*query.UserQueryListResult, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &query.UserQueryListResult{
		Result: mapper.NewUserResultsFromEntities(users),
	}, nil
}

// GetProfile reads through the profile cache. Cache errors are logged and
// fall back to the database.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*query.UserQueryResult, error) {
	if s.cache != nil {
		cachedUser, err := s.cache.GetProfile(ctx, id)
		if err != nil {
			s.log.Warn("profile cache read failed", "user_id", id, "error", err)
		} else if cachedUser != nil {
			return &query.UserQueryResult{
				Result: mapper.NewUserResultFromEntity(cachedUser),
			}, nil
		}
	}

	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}

	if s.cache != nil {
		if err := s.cache.SetProfile(ctx, user); err != nil {
			s.log.Warn("profile cache write failed", "user_id", id, "error", err)
		}
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) invalidateProfile(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteProfile(ctx, id); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn("profile cache invalidation failed", "user_id", id, "error", err)
	}
}
