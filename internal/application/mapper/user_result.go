package mapper

import (
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/common"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Name:      user.Name,
		Email:     user.Email,
	}
}

func NewUserResultsFromEntities(users []*entities.User) []*common.UserResult {
	results := make([]*common.UserResult, 0, len(users))
	for _, user := range users {
		results = append(results, NewUserResultFromEntity(user))
	}
	return results
}
