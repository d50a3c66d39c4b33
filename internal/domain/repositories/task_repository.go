package repositories

import (
	"context"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
)

// TaskRepository finders return (nil, nil) when no row matches.
type TaskRepository interface {
	// CreateWithinQuota inserts the task only if its owner currently has
	// fewer than quota tasks. The count and the insert are atomic; when
	// the quota is reached it returns domain.ErrQuotaExceeded and writes
	// nothing.
	CreateWithinQuota(ctx context.Context, task *entities.ValidatedTask, quota int) (*entities.Task, error)
	FindById(ctx context.Context, id uint) (*entities.Task, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]*entities.Task, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
	Update(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error)
	// Delete is a no-op for an unknown id.
	Delete(ctx context.Context, id uint) error
}
