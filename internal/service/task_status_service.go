package service

import (
	"context"

	"taskmanager/internal/dto"
	"taskmanager/internal/mapper"
)

type TaskStatusService struct {
	tx       TxManager
	statuses TaskStatusRepository
	tasks    TaskRepository
}

func NewTaskStatusService(tx TxManager, statuses TaskStatusRepository, tasks TaskRepository) *TaskStatusService {
	return &TaskStatusService{tx: tx, statuses: statuses, tasks: tasks}
}

func (s *TaskStatusService) List(ctx context.Context) ([]dto.TaskStatusDTO, error) {
	statuses, err := s.statuses.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToTaskStatusDTOs(statuses), nil
}

func (s *TaskStatusService) Get(ctx context.Context, id int64) (dto.TaskStatusDTO, error) {
	status, err := s.statuses.GetByID(ctx, id)
	if err != nil {
		return dto.TaskStatusDTO{}, translate(err, "slug")
	}
	return mapper.ToTaskStatusDTO(status), nil
}

func (s *TaskStatusService) Create(ctx context.Context, d dto.TaskStatusCreateDTO) (dto.TaskStatusDTO, error) {
	if err := validateStruct(d); err != nil {
		return dto.TaskStatusDTO{}, err
	}

	var result dto.TaskStatusDTO
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureSlugFree(ctx, d.Slug, 0); err != nil {
			return err
		}

		status := mapper.ToTaskStatus(d)
		if err := s.statuses.Create(ctx, status); err != nil {
			return translate(err, "slug")
		}
		result = mapper.ToTaskStatusDTO(status)
		return nil
	})
	return result, err
}

func (s *TaskStatusService) Update(ctx context.Context, id int64, d dto.TaskStatusUpdateDTO) (dto.TaskStatusDTO, error) {
	var v violations
	v.checkOptional("name", d.Name, "required,notblank")
	v.checkOptional("slug", d.Slug, "required,notblank")
	if err := v.err(); err != nil {
		return dto.TaskStatusDTO{}, err
	}

	var result dto.TaskStatusDTO
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		status, err := s.statuses.GetByID(ctx, id)
		if err != nil {
			return translate(err, "slug")
		}

		if d.Slug.HasValue() && d.Slug.Value != status.Slug {
			if err := s.ensureSlugFree(ctx, d.Slug.Value, status.ID); err != nil {
				return err
			}
		}

		mapper.ApplyTaskStatusUpdate(status, d)
		if err := s.statuses.Update(ctx, status); err != nil {
			return translate(err, "slug")
		}
		result = mapper.ToTaskStatusDTO(status)
		return nil
	})
	return result, err
}

// Delete refuses while any task is in the status.
func (s *TaskStatusService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.statuses.GetByID(ctx, id); err != nil {
			return translate(err, "slug")
		}

		count, err := s.tasks.CountByStatus(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}

		return translate(s.statuses.Delete(ctx, id), "slug")
	})
}

func (s *TaskStatusService) ensureSlugFree(ctx context.Context, slug string, ownerID int64) error {
	existing, err := s.statuses.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != ownerID {
		return duplicateError("slug")
	}
	return nil
}
