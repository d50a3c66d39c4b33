package repositories

import (
	"context"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
)

// UserRepository finders return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindAll(ctx context.Context) ([]*entities.User, error)
	Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	// Delete removes the user and every task it owns.
	Delete(ctx context.Context, id uint) error
}
