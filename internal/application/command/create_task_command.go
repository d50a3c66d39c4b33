package command

import (
	"time"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/common"
)

type CreateTaskCommand struct {
	UserId      uint       `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsCompleted bool       `json:"isCompleted"`

	// IdempotencyKey comes from the Idempotency-Key header.
	IdempotencyKey string `json:"-"`
}

type CreateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
	// Replayed is set when the result was stored for an earlier request
	// with the same idempotency key.
	Replayed bool `json:"-"`
}
