package handler_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/mock"

	"taskmanager/internal/dto"
	"taskmanager/internal/middleware"
	"taskmanager/internal/service"
)

// asUser stands in for the JWT middleware.
func asUser(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id)
		c.Next()
	}
}

func validationError(field, message string) error {
	return &service.ValidationError{
		Violations: multierror.Append(nil, &service.FieldError{Field: field, Message: message}),
	}
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]dto.UserDTO, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.UserDTO), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int64) (dto.UserDTO, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.UserDTO), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, d dto.UserCreateDTO) (dto.UserDTO, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(dto.UserDTO), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id int64, d dto.UserUpdateDTO) (dto.UserDTO, error) {
	args := m.Called(ctx, id, d)
	return args.Get(0).(dto.UserDTO), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTaskStatusService struct {
	mock.Mock
}

func (m *MockTaskStatusService) List(ctx context.Context) ([]dto.TaskStatusDTO, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.TaskStatusDTO), args.Error(1)
}

func (m *MockTaskStatusService) Get(ctx context.Context, id int64) (dto.TaskStatusDTO, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.TaskStatusDTO), args.Error(1)
}

func (m *MockTaskStatusService) Create(ctx context.Context, d dto.TaskStatusCreateDTO) (dto.TaskStatusDTO, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(dto.TaskStatusDTO), args.Error(1)
}

func (m *MockTaskStatusService) Update(ctx context.Context, id int64, d dto.TaskStatusUpdateDTO) (dto.TaskStatusDTO, error) {
	args := m.Called(ctx, id, d)
	return args.Get(0).(dto.TaskStatusDTO), args.Error(1)
}

func (m *MockTaskStatusService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLabelService struct {
	mock.Mock
}

func (m *MockLabelService) List(ctx context.Context) ([]dto.LabelDTO, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.LabelDTO), args.Error(1)
}

func (m *MockLabelService) Get(ctx context.Context, id int64) (dto.LabelDTO, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.LabelDTO), args.Error(1)
}

func (m *MockLabelService) Create(ctx context.Context, d dto.LabelCreateDTO) (dto.LabelDTO, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(dto.LabelDTO), args.Error(1)
}

func (m *MockLabelService) Update(ctx context.Context, id int64, d dto.LabelUpdateDTO) (dto.LabelDTO, error) {
	args := m.Called(ctx, id, d)
	return args.Get(0).(dto.LabelDTO), args.Error(1)
}

func (m *MockLabelService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) List(ctx context.Context, params dto.TaskParamsDTO) ([]dto.TaskDTO, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]dto.TaskDTO), args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, id int64) (dto.TaskDTO, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.TaskDTO), args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, d dto.TaskCreateDTO) (dto.TaskDTO, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(dto.TaskDTO), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, id int64, d dto.TaskUpdateDTO) (dto.TaskDTO, error) {
	args := m.Called(ctx, id, d)
	return args.Get(0).(dto.TaskDTO), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, d dto.AuthRequestDTO) (string, error) {
	args := m.Called(ctx, d)
	return args.String(0), args.Error(1)
}
