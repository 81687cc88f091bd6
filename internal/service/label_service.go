package service

import (
	"context"

	"taskmanager/internal/dto"
	"taskmanager/internal/mapper"
)

type LabelService struct {
	tx     TxManager
	labels LabelRepository
	tasks  TaskRepository
}

func NewLabelService(tx TxManager, labels LabelRepository, tasks TaskRepository) *LabelService {
	return &LabelService{tx: tx, labels: labels, tasks: tasks}
}

func (s *LabelService) List(ctx context.Context) ([]dto.LabelDTO, error) {
	labels, err := s.labels.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToLabelDTOs(labels), nil
}

func (s *LabelService) Get(ctx context.Context, id int64) (dto.LabelDTO, error) {
	label, err := s.labels.GetByID(ctx, id)
	if err != nil {
		return dto.LabelDTO{}, translate(err, "name")
	}
	return mapper.ToLabelDTO(label), nil
}

func (s *LabelService) Create(ctx context.Context, d dto.LabelCreateDTO) (dto.LabelDTO, error) {
	if err := validateStruct(d); err != nil {
		return dto.LabelDTO{}, err
	}

	var result dto.LabelDTO
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureNameFree(ctx, d.Name, 0); err != nil {
			return err
		}

		label := mapper.ToLabel(d)
		if err := s.labels.Create(ctx, label); err != nil {
			return translate(err, "name")
		}
		result = mapper.ToLabelDTO(label)
		return nil
	})
	return result, err
}

func (s *LabelService) Update(ctx context.Context, id int64, d dto.LabelUpdateDTO) (dto.LabelDTO, error) {
	var v violations
	v.checkOptional("name", d.Name, "required,notblank,min=3,max=1000")
	if err := v.err(); err != nil {
		return dto.LabelDTO{}, err
	}

	var result dto.LabelDTO
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		label, err := s.labels.GetByID(ctx, id)
		if err != nil {
			return translate(err, "name")
		}

		if d.Name.HasValue() && d.Name.Value != label.Name {
			if err := s.ensureNameFree(ctx, d.Name.Value, label.ID); err != nil {
				return err
			}
		}

		mapper.ApplyLabelUpdate(label, d)
		if err := s.labels.Update(ctx, label); err != nil {
			return translate(err, "name")
		}
		result = mapper.ToLabelDTO(label)
		return nil
	})
	return result, err
}

// Delete refuses while any task carries the label.
func (s *LabelService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.labels.GetByID(ctx, id); err != nil {
			return translate(err, "name")
		}

		count, err := s.tasks.CountByLabel(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}

		return translate(s.labels.Delete(ctx, id), "name")
	})
}

func (s *LabelService) ensureNameFree(ctx context.Context, name string, ownerID int64) error {
	existing, err := s.labels.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != ownerID {
		return duplicateError("name")
	}
	return nil
}
