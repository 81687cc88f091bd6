package model

import (
	"time"
)

type Label struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(1000);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
