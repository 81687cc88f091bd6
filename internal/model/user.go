package model

import (
	"time"
)

type User struct {
	ID             int64  `gorm:"primaryKey"`
	Email          string `gorm:"not null"`
	FirstName      string
	LastName       string
	PasswordDigest string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
