package mapper

import (
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/common"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/genius"
)

func NewTaskResultFromEntity(task *entities.Task) *common.TaskResult {
	return &common.TaskResult{
		Id:          task.Id,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		IsCompleted: task.IsCompleted,
		UserId:      task.UserId,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func NewTaskResultsFromEntities(tasks []*entities.Task) []*common.TaskResult {
	results := make([]*common.TaskResult, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, NewTaskResultFromEntity(task))
	}
	return results
}

func NewTaskDetailsFromEntities(tasks []*entities.Task) []genius.TaskDetail {
	details := make([]genius.TaskDetail, 0, len(tasks))
	for _, task := range tasks {
		details = append(details, genius.TaskDetail{
			Title:       task.Title,
			Description: task.Description,
			DueDate:     task.DueDate,
		})
	}
	return details
}
