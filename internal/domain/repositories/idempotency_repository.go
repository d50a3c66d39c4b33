package repositories

import (
	"context"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
)

type IdempotencyRepository interface {
	// FindByKey returns (nil, nil) when the user never used the key.
	FindByKey(ctx context.Context, userID uint, key string) (*entities.IdempotencyRecord, error)
	// Create fails with domain.ErrConflict when the key is already stored.
	Create(ctx context.Context, record *entities.IdempotencyRecord) error
}
