package command

import (
	"time"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/common"
)

// UpdateTaskCommand is a partial update: nil fields keep their stored
// value. ClearDueDate removes the due date.
type UpdateTaskCommand struct {
	Id           uint       `json:"-"`
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	ClearDueDate bool       `json:"clearDueDate,omitempty"`
	IsCompleted  *bool      `json:"isCompleted,omitempty"`
}

type UpdateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}
