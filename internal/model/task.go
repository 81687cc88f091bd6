package model

import (
	"time"
)

type Task struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"type:text;not null"`
	Description  string `gorm:"type:text"`
	TaskIndex    *int
	TaskStatusID int64     `gorm:"not null;index"`
	AssigneeID   *int64    `gorm:"index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	TaskStatus TaskStatus `gorm:"foreignKey:TaskStatusID"`
	Assignee   *User      `gorm:"foreignKey:AssigneeID"`
	Labels     []Label    `gorm:"many2many:task_labels"`
}

// LabelIDs returns the ids of the task's labels in membership order.
func (t *Task) LabelIDs() []int64 {
	ids := make([]int64, 0, len(t.Labels))
	for _, l := range t.Labels {
		ids = append(ids, l.ID)
	}
	return ids
}
