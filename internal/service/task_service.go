package service

import (
	"context"

	"taskmanager/internal/dto"
	"taskmanager/internal/mapper"
	"taskmanager/internal/model"
)

type TaskService struct {
	tx       TxManager
	tasks    TaskRepository
	statuses TaskStatusRepository
	users    UserRepository
	labels   LabelRepository
}

func NewTaskService(tx TxManager, tasks TaskRepository, statuses TaskStatusRepository, users UserRepository, labels LabelRepository) *TaskService {
	return &TaskService{tx: tx, tasks: tasks, statuses: statuses, users: users, labels: labels}
}

// List returns the tasks matching every present parameter.
func (s *TaskService) List(ctx context.Context, params dto.TaskParamsDTO) ([]dto.TaskDTO, error) {
	tasks, err := s.tasks.List(ctx, mapper.ToTaskFilter(params))
	if err != nil {
		return nil, err
	}
	return mapper.ToTaskDTOs(tasks), nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (dto.TaskDTO, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return dto.TaskDTO{}, translate(err, "title")
	}
	return mapper.ToTaskDTO(task), nil
}

func (s *TaskService) Create(ctx context.Context, d dto.TaskCreateDTO) (dto.TaskDTO, error) {
	if err := validateStruct(d); err != nil {
		return dto.TaskDTO{}, err
	}

	var result dto.TaskDTO
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		task, err := mapper.ToTask(ctx, d, s)
		if err != nil {
			return err
		}
		if err := s.tasks.Create(ctx, task); err != nil {
			return translate(err, "title")
		}
		result = mapper.ToTaskDTO(task)
		return nil
	})
	return result, err
}

func (s *TaskService) Update(ctx context.Context, id int64, d dto.TaskUpdateDTO) (dto.TaskDTO, error) {
	var v violations
	v.checkOptional("title", d.Title, "required,notblank")
	v.checkOptional("status", d.Status, "required,notblank")
	if err := v.err(); err != nil {
		return dto.TaskDTO{}, err
	}

	var result dto.TaskDTO
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetByID(ctx, id)
		if err != nil {
			return translate(err, "title")
		}
		if err := mapper.ApplyTaskUpdate(ctx, task, d, s); err != nil {
			return err
		}
		if err := s.tasks.Update(ctx, task); err != nil {
			return translate(err, "title")
		}
		result = mapper.ToTaskDTO(task)
		return nil
	})
	return result, err
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return translate(s.tasks.Delete(ctx, id), "title")
	})
}

func (s *TaskService) StatusBySlug(ctx context.Context, slug string) (*model.TaskStatus, error) {
	status, err := s.statuses.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, notFound("task status with slug %q", slug)
	}
	return status, nil
}

func (s *TaskService) UserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "assigneeId")
	}
	return user, nil
}

func (s *TaskService) LabelsByIDs(ctx context.Context, ids []int64) ([]model.Label, error) {
	return s.labels.FindByIDs(ctx, ids)
}
