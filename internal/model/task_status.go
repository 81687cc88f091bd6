package model

import (
	"time"
)

type TaskStatus struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Slug      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TaskStatus) TableName() string {
	return "task_statuses"
}
