package service

import (
	"context"

	"taskmanager/internal/dto"
	"taskmanager/internal/mapper"
)

type UserService struct {
	tx    TxManager
	users UserRepository
	tasks TaskRepository
	hash  mapper.PasswordHasher
}

func NewUserService(tx TxManager, users UserRepository, tasks TaskRepository, hash mapper.PasswordHasher) *UserService {
	return &UserService{tx: tx, users: users, tasks: tasks, hash: hash}
}

func (s *UserService) List(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToUserDTOs(users), nil
}

func (s *UserService) Get(ctx context.Context, id int64) (dto.UserDTO, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return dto.UserDTO{}, translate(err, "email")
	}
	return mapper.ToUserDTO(user), nil
}

func (s *UserService) Create(ctx context.Context, d dto.UserCreateDTO) (dto.UserDTO, error) {
	if err := validateStruct(d); err != nil {
		return dto.UserDTO{}, err
	}

	var result dto.UserDTO
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureEmailFree(ctx, d.Email, 0); err != nil {
			return err
		}

		user, err := mapper.ToUser(d, s.hash)
		if err != nil {
			return err
		}
		if err := s.users.Create(ctx, user); err != nil {
			return translate(err, "email")
		}
		result = mapper.ToUserDTO(user)
		return nil
	})
	return result, err
}

func (s *UserService) Update(ctx context.Context, id int64, d dto.UserUpdateDTO) (dto.UserDTO, error) {
	var v violations
	v.checkOptional("email", d.Email, "required,email")
	v.checkOptional("password", d.Password, "required,min=3")
	if err := v.err(); err != nil {
		return dto.UserDTO{}, err
	}

	var result dto.UserDTO
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			return translate(err, "email")
		}

		if d.Email.HasValue() && d.Email.Value != user.Email {
			if err := s.ensureEmailFree(ctx, d.Email.Value, user.ID); err != nil {
				return err
			}
		}

		if err := mapper.ApplyUserUpdate(user, d, s.hash); err != nil {
			return err
		}
		if err := s.users.Update(ctx, user); err != nil {
			return translate(err, "email")
		}
		result = mapper.ToUserDTO(user)
		return nil
	})
	return result, err
}

// Delete refuses while the user is assigned to any task.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByID(ctx, id); err != nil {
			return translate(err, "email")
		}

		count, err := s.tasks.CountByAssignee(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}

		return translate(s.users.Delete(ctx, id), "email")
	})
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string, ownerID int64) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != ownerID {
		return duplicateError("email")
	}
	return nil
}
