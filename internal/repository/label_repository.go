package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskmanager/internal/model"
)

type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// List returns every label ordered by id
func (r *LabelRepository) List(ctx context.Context) ([]model.Label, error) {
	var labels []model.Label
	err := conn(ctx, r.db).Order("id").Find(&labels).Error
	return labels, err
}

// Create adds a new label to the database
func (r *LabelRepository) Create(ctx context.Context, label *model.Label) error {
	return conn(ctx, r.db).Create(label).Error
}

// GetByID retrieves a label by its ID
func (r *LabelRepository) GetByID(ctx context.Context, id int64) (*model.Label, error) {
	var label model.Label
	result := conn(ctx, r.db).First(&label, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, result.Error
	}
	return &label, nil
}

// FindByName retrieves a label by its unique name, returning nil, nil when absent
func (r *LabelRepository) FindByName(ctx context.Context, name string) (*model.Label, error) {
	var label model.Label
	err := conn(ctx, r.db).Where("name = ?", name).First(&label).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &label, nil
}

// FindByIDs retrieves the labels whose ids are in ids. Unknown ids are skipped.
func (r *LabelRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Label, error) {
	labels := []model.Label{}
	if len(ids) == 0 {
		return labels, nil
	}
	err := conn(ctx, r.db).Where("id IN ?", ids).Order("id").Find(&labels).Error
	return labels, err
}

// Update updates an existing label
func (r *LabelRepository) Update(ctx context.Context, label *model.Label) error {
	return conn(ctx, r.db).Save(label).Error
}

// Delete removes a label by its ID
func (r *LabelRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&model.Label{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLabelNotFound
	}
	return nil
}
