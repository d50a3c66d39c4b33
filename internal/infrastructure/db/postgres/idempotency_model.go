package postgres

import (
	"time"
)

type IdempotencyRecordModel struct {
	Id         uint   `gorm:"primaryKey;autoIncrement"`
	UserId     uint   `gorm:"not null;uniqueIndex:idx_idempotency_user_key"`
	Key        string `gorm:"size:100;not null;uniqueIndex:idx_idempotency_user_key"`
	Request    string `gorm:"type:text"`
	Response   string `gorm:"type:text"`
	StatusCode int
	CreatedAt  time.Time
}

func (IdempotencyRecordModel) TableName() string {
	return "idempotency_records"
}
