package services

import (
	"fmt"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
)

var errTaskNotAccessible = fmt.Errorf("task not found or access denied: %w", domain.ErrNotFound)

// authorizeOwner is the only ownership check. A missing task and a task
// owned by someone else produce the same error.
func authorizeOwner(task *entities.Task, callerID uint) error {
	if task == nil || !task.OwnedBy(callerID) {
		return errTaskNotAccessible
	}
	return nil
}
