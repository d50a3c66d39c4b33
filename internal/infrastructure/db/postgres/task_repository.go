package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

// CreateWithinQuota counts and inserts inside one transaction. On Postgres
// the owner row is locked first so concurrent creates for the same user
// queue behind each other; SQLite is opened with a single connection,
// which serializes the transactions.
func (r *TaskRepository) CreateWithinQuota(ctx context.Context, task *entities.ValidatedTask, quota int) (*entities.Task, error) {
	taskModel := r.mapToModel(task.GetTask())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner := tx.Model(&UserModel{}).Select("id").Where("id = ?", taskModel.UserId)
		if tx.Dialector.Name() == DriverPostgres {
			owner = owner.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var ownerID uint
		if err := owner.Limit(1).Scan(&ownerID).Error; err != nil {
			return fmt.Errorf("lock owner %d: %w", taskModel.UserId, err)
		}
		if ownerID == 0 {
			return domain.NewNotFoundError("task owner")
		}

		var count int64
		if err := tx.Model(&TaskModel{}).Where("user_id = ?", taskModel.UserId).Count(&count).Error; err != nil {
			return fmt.Errorf("count tasks of user %d: %w", taskModel.UserId, err)
		}
		if count >= int64(quota) {
			return fmt.Errorf("user %d already owns %d tasks: %w", taskModel.UserId, count, domain.ErrQuotaExceeded)
		}

		return tx.Create(&taskModel).Error
	})
	if err != nil {
		return nil, err
	}

	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) FindById(ctx context.Context, id uint) (*entities.Task, error) {
	var taskModel TaskModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&taskModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) FindByOwner(ctx context.Context, ownerID uint) ([]*entities.Task, error) {
	var taskModels []TaskModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id").Find(&taskModels).Error; err != nil {
		return nil, err
	}

	tasks := make([]*entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, r.mapToEntity(&taskModels[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TaskModel{}).Where("user_id = ?", ownerID).Count(&count).Error
	return count, err
}

// Update writes every mutable column, so a nil due date is stored as NULL.
func (r *TaskRepository) Update(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	taskModel := r.mapToModel(task.GetTask())

	result := r.db.WithContext(ctx).Model(&TaskModel{Id: taskModel.Id}).
		Select("Title", "Description", "DueDate", "IsCompleted", "UpdatedAt").
		Updates(&taskModel)
	if result.Error != nil {
		return nil, fmt.Errorf("update task %d: %w", taskModel.Id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("task")
	}

	return r.FindById(ctx, taskModel.Id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&TaskModel{}, "id = ?", id).Error
}

func (r *TaskRepository) mapToModel(task *entities.Task) TaskModel {
	return TaskModel{
		Id:          task.Id,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		IsCompleted: task.IsCompleted,
		UserId:      task.UserId,
	}
}

func (r *TaskRepository) mapToEntity(taskModel *TaskModel) *entities.Task {
	return &entities.Task{
		Id:          taskModel.Id,
		CreatedAt:   taskModel.CreatedAt,
		UpdatedAt:   taskModel.UpdatedAt,
		Title:       taskModel.Title,
		Description: taskModel.Description,
		DueDate:     taskModel.DueDate,
		IsCompleted: taskModel.IsCompleted,
		UserId:      taskModel.UserId,
	}
}
