package entities

import (
	"strings"
	"time"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
)

const (
	MaxTaskTitleLength = 100

	// MaxTasksPerUser is the number of tasks a user may own at once.
	MaxTasksPerUser = 20
)

type Task struct {
	Id          uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Description string
	DueDate     *time.Time
	IsCompleted bool
	UserId      uint
}

// NewTask keeps title and description exactly as given; validation only
// rejects blank values.
func NewTask(userID uint, title, description string, dueDate *time.Time, isCompleted bool) *Task {
	now := time.Now().UTC()
	return &Task{
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       title,
		Description: description,
		DueDate:     normalizeDueDate(dueDate),
		IsCompleted: isCompleted,
		UserId:      userID,
	}
}

// TaskPatch carries a partial update. Nil fields keep the stored value;
// ClearDueDate removes the due date.
type TaskPatch struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	IsCompleted  *bool
}

func (t *Task) validate() error {
	if t.UserId == 0 {
		return domain.NewValidationError("task must have an owner")
	}
	if strings.TrimSpace(t.Title) == "" {
		return domain.NewValidationError("title must not be empty")
	}
	if len([]rune(t.Title)) > MaxTaskTitleLength {
		return domain.NewValidationError("title must be at most %d characters", MaxTaskTitleLength)
	}
	if strings.TrimSpace(t.Description) == "" {
		return domain.NewValidationError("description must not be empty")
	}
	return nil
}

// Apply overwrites the fields present in the patch and revalidates.
// Owner and creation time never change.
func (t *Task) Apply(patch TaskPatch) error {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	switch {
	case patch.ClearDueDate:
		t.DueDate = nil
	case patch.DueDate != nil:
		t.DueDate = normalizeDueDate(patch.DueDate)
	}
	if patch.IsCompleted != nil {
		t.IsCompleted = *patch.IsCompleted
	}
	t.UpdatedAt = time.Now().UTC()
	return t.validate()
}

// OwnedBy reports whether userID owns the task.
func (t *Task) OwnedBy(userID uint) bool {
	return t != nil && userID != 0 && t.UserId == userID
}

// A zero time is treated the same as no due date.
func normalizeDueDate(dueDate *time.Time) *time.Time {
	if dueDate == nil || dueDate.IsZero() {
		return nil
	}
	d := dueDate.UTC()
	return &d
}
