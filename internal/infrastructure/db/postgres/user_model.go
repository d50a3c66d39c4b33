package postgres

import (
	"time"
)

type UserModel struct {
	Id        uint `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string      `gorm:"size:50;not null"`
	Email     string      `gorm:"size:100;uniqueIndex;not null"`
	Password  string      `gorm:"not null"`
	Tasks     []TaskModel `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (UserModel) TableName() string {
	return "users"
}
