package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/repositories"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

// Create stores the user. The password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := r.mapToModel(user.GetUser())

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return nil, translateError("create user", err)
	}

	// Read back the created user to ensure data integrity
	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", entities.NormalizeEmail(email)).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	var userModels []UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.mapToEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := r.mapToModel(user.GetUser())

	result := r.db.WithContext(ctx).Model(&UserModel{Id: userModel.Id}).
		Select("Name", "Email", "Password", "UpdatedAt").
		Updates(&userModel)
	if result.Error != nil {
		return nil, translateError("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("user")
	}

	// Read back the updated user to ensure data integrity
	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&TaskModel{}).Error; err != nil {
			return fmt.Errorf("delete tasks of user %d: %w", id, err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&IdempotencyRecordModel{}).Error; err != nil {
			return fmt.Errorf("delete idempotency records of user %d: %w", id, err)
		}
		return tx.Delete(&UserModel{}, "id = ?", id).Error
	})
}

func (r *UserRepository) mapToModel(user *entities.User) UserModel {
	return UserModel{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
	}
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:        userModel.Id,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
		Name:      userModel.Name,
		Email:     userModel.Email,
		Password:  userModel.Password,
	}
}

// translateError maps store errors onto the domain taxonomy.
func translateError(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
