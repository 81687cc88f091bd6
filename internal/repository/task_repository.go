package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskmanager/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("TaskStatus").Preload("Assignee").Preload("Labels")
}

// List retrieves the tasks matching pred with their status, assignee and labels
func (r *TaskRepository) List(ctx context.Context, pred squirrel.Sqlizer) ([]model.Task, error) {
	where, args, err := pred.ToSql()
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	result := conn(ctx, r.db).
		Scopes(withRelations).
		Where(where, args...).
		Order("tasks.id").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Create adds a new task and its label memberships. The referenced status,
// assignee and labels must already exist; they are never upserted.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return conn(ctx, r.db).Omit("TaskStatus", "Assignee", "Labels.*").Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	result := conn(ctx, r.db).Scopes(withRelations).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// Update saves the task columns and replaces its label membership with task.Labels
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	db := conn(ctx, r.db)
	if err := db.Omit(clause.Associations).Save(task).Error; err != nil {
		return err
	}
	association := db.Model(task).Omit("Labels.*").Association("Labels")
	if len(task.Labels) == 0 {
		return association.Clear()
	}
	return association.Replace(task.Labels)
}

// Delete removes a task by its ID; its label memberships go with it
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// CountByStatus counts the tasks in a status
func (r *TaskRepository) CountByStatus(ctx context.Context, statusID int64) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.Task{}).Where("task_status_id = ?", statusID).Count(&count).Error
	return count, err
}

// CountByAssignee counts the tasks assigned to a user
func (r *TaskRepository) CountByAssignee(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.Task{}).Where("assignee_id = ?", userID).Count(&count).Error
	return count, err
}

// CountByLabel counts the tasks carrying a label
func (r *TaskRepository) CountByLabel(ctx context.Context, labelID int64) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Table("task_labels").Where("label_id = ?", labelID).Count(&count).Error
	return count, err
}
