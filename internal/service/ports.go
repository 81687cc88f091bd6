package service

import (
	"context"

	"github.com/Masterminds/squirrel"

	"taskmanager/internal/model"
)

// TxManager runs fn in one transaction shared by every repository call made
// with the context it receives.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

type TaskStatusRepository interface {
	List(ctx context.Context) ([]model.TaskStatus, error)
	GetByID(ctx context.Context, id int64) (*model.TaskStatus, error)
	FindBySlug(ctx context.Context, slug string) (*model.TaskStatus, error)
	Create(ctx context.Context, status *model.TaskStatus) error
	Update(ctx context.Context, status *model.TaskStatus) error
	Delete(ctx context.Context, id int64) error
}

type LabelRepository interface {
	List(ctx context.Context) ([]model.Label, error)
	GetByID(ctx context.Context, id int64) (*model.Label, error)
	FindByName(ctx context.Context, name string) (*model.Label, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Label, error)
	Create(ctx context.Context, label *model.Label) error
	Update(ctx context.Context, label *model.Label) error
	Delete(ctx context.Context, id int64) error
}

type TaskRepository interface {
	List(ctx context.Context, pred squirrel.Sqlizer) ([]model.Task, error)
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, statusID int64) (int64, error)
	CountByAssignee(ctx context.Context, userID int64) (int64, error)
	CountByLabel(ctx context.Context, labelID int64) (int64, error)
}

// TokenIssuer issues access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID int64, email string) (string, error)
}
