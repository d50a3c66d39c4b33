package postgres

import (
	"context"
	"errors"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/repositories"
	"gorm.io/gorm"
)

type IdempotencyRepository struct {
	db *gorm.DB
}

func NewIdempotencyRepository(db *gorm.DB) repositories.IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) FindByKey(ctx context.Context, userID uint, key string) (*entities.IdempotencyRecord, error) {
	var recordModel IdempotencyRecordModel
	err := r.db.WithContext(ctx).Where(&IdempotencyRecordModel{UserId: userID, Key: key}).First(&recordModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.IdempotencyRecord{
		Key:        recordModel.Key,
		UserId:     recordModel.UserId,
		Request:    recordModel.Request,
		Response:   recordModel.Response,
		StatusCode: recordModel.StatusCode,
		CreatedAt:  recordModel.CreatedAt,
	}, nil
}

func (r *IdempotencyRepository) Create(ctx context.Context, record *entities.IdempotencyRecord) error {
	recordModel := IdempotencyRecordModel{
		UserId:     record.UserId,
		Key:        record.Key,
		Request:    record.Request,
		Response:   record.Response,
		StatusCode: record.StatusCode,
		CreatedAt:  record.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&recordModel).Error; err != nil {
		return translateError("create idempotency record", err)
	}
	return nil
}
