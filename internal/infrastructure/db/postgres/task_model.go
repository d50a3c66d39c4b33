package postgres

import (
	"time"
)

type TaskModel struct {
	Id          uint `gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"type:text;not null"`
	DueDate     *time.Time
	IsCompleted bool `gorm:"not null"`
	UserId      uint `gorm:"not null;index"`
}

func (TaskModel) TableName() string {
	return "tasks"
}
