package repository

import (
	"context"
	"errors"

	"taskmanager/internal/model"

	"gorm.io/gorm"
)

type TaskStatusRepository struct {
	db *gorm.DB
}

func NewTaskStatusRepository(db *gorm.DB) *TaskStatusRepository {
	return &TaskStatusRepository{db: db}
}

// List returns every task status ordered by id
func (r *TaskStatusRepository) List(ctx context.Context) ([]model.TaskStatus, error) {
	var statuses []model.TaskStatus
	err := conn(ctx, r.db).Order("id").Find(&statuses).Error
	return statuses, err
}

// Create adds a new task status to the database
func (r *TaskStatusRepository) Create(ctx context.Context, status *model.TaskStatus) error {
	return conn(ctx, r.db).Create(status).Error
}

// GetByID retrieves a task status by its ID
func (r *TaskStatusRepository) GetByID(ctx context.Context, id int64) (*model.TaskStatus, error) {
	var status model.TaskStatus
	result := conn(ctx, r.db).First(&status, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskStatusNotFound
		}
		return nil, result.Error
	}
	return &status, nil
}

// FindBySlug retrieves a task status by slug, returning nil, nil when absent
func (r *TaskStatusRepository) FindBySlug(ctx context.Context, slug string) (*model.TaskStatus, error) {
	var status model.TaskStatus
	err := conn(ctx, r.db).Where("slug = ?", slug).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Update updates an existing task status
func (r *TaskStatusRepository) Update(ctx context.Context, status *model.TaskStatus) error {
	return conn(ctx, r.db).Save(status).Error
}

// Delete removes a task status by its ID
func (r *TaskStatusRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&model.TaskStatus{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskStatusNotFound
	}
	return nil
}
