package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/filter"
	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

var taskColumns = []string{"id", "name", "description", "task_index", "task_status_id", "assignee_id", "created_at"}

func TestTaskRepository_Create_WritesLabelMembership(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)
	task := &model.Task{
		Name:         "Write docs",
		TaskStatusID: 1,
		TaskStatus:   model.TaskStatus{ID: 1, Slug: "draft"},
		Labels:       []model.Label{{ID: 4, Name: "bug"}, {ID: 5, Name: "feature"}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectExec(`INSERT INTO "task_labels" \("task_id","label_id"\)`).
		WithArgs(int64(10), int64(4), int64(10), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Create(context.Background(), task)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(10), task.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_ReplacesLabelMembership(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)
	task := &model.Task{
		ID:           10,
		Name:         "Write docs",
		TaskStatusID: 1,
		CreatedAt:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Labels:       []model.Label{{ID: 5, Name: "feature"}, {ID: 6, Name: "docs"}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET "name"=\$1,.* WHERE "id" = \$7`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "task_labels" \("task_id","label_id"\)`).
		WithArgs(int64(10), int64(5), int64(10), int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "task_labels" WHERE "task_labels"."task_id" = \$1 AND "task_labels"."label_id" NOT IN \(\$2,\$3\)`).
		WithArgs(int64(10), int64(5), int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Update(context.Background(), task)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6}, task.LabelIDs())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_EmptyLabelsClearsMembership(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)
	task := &model.Task{
		ID:           10,
		Name:         "Write docs",
		TaskStatusID: 1,
		CreatedAt:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Labels:       []model.Label{},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET "name"=\$1,.* WHERE "id" = \$7`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "task_labels" WHERE "task_labels"."task_id" = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Update(context.Background(), task)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, task.Labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_SaveFailureSkipsLabels(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)
	task := &model.Task{ID: 10, Name: "Write docs", TaskStatusID: 1, Labels: []model.Label{{ID: 5}}}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := taskRepo.Update(context.Background(), task)

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_List_AppliesFilter(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	mock.MatchExpectationsInOrder(false)
	taskRepo := repository.NewTaskRepository(gormDB)
	title := "Docs"
	label := int64(4)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE \(LOWER\(tasks.name\) LIKE \$1 AND EXISTS \(SELECT 1 FROM task_labels tl WHERE tl.task_id = tasks.id AND tl.label_id = \$2\)\) ORDER BY tasks.id`).
		WithArgs("%docs%", int64(4)).
		WillReturnRows(sqlmock.NewRows(taskColumns).AddRow(10, "Write docs", "", nil, 1, 2, now))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(2, "a@example.com", "", "", "x", now))
	mock.ExpectQuery(`SELECT \* FROM "task_labels" WHERE "task_labels"."task_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"task_id", "label_id"}).AddRow(10, 4))
	mock.ExpectQuery(`SELECT \* FROM "labels" WHERE "labels"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(4, "bug", now))
	mock.ExpectQuery(`SELECT \* FROM "task_statuses" WHERE "task_statuses"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "created_at"}).AddRow(1, "Draft", "draft", now))

	// Act
	tasks, err := taskRepo.List(context.Background(), filter.TaskFilter{TitleCont: &title, LabelID: &label})

	// Assert
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "draft", tasks[0].TaskStatus.Slug)
	assert.Equal(t, []int64{4}, tasks[0].LabelIDs())
	require.NotNil(t, tasks[0].Assignee)
	assert.Equal(t, "a@example.com", tasks[0].Assignee.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(taskColumns))

	task, err := taskRepo.GetByID(context.Background(), 77)

	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.Nil(t, task)
}

func TestTaskRepository_Counts(t *testing.T) {
	tests := []struct {
		name  string
		query string
		count func(r *repository.TaskRepository) (int64, error)
	}{
		{
			name:  "by status",
			query: `SELECT count\(\*\) FROM "tasks" WHERE task_status_id = \$1`,
			count: func(r *repository.TaskRepository) (int64, error) { return r.CountByStatus(context.Background(), 7) },
		},
		{
			name:  "by assignee",
			query: `SELECT count\(\*\) FROM "tasks" WHERE assignee_id = \$1`,
			count: func(r *repository.TaskRepository) (int64, error) { return r.CountByAssignee(context.Background(), 7) },
		},
		{
			name:  "by label",
			query: `SELECT count\(\*\) FROM "task_labels" WHERE label_id = \$1`,
			count: func(r *repository.TaskRepository) (int64, error) { return r.CountByLabel(context.Background(), 7) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock := setupMockDB(t)
			taskRepo := repository.NewTaskRepository(gormDB)

			mock.ExpectQuery(tt.query).
				WithArgs(int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

			count, err := tt.count(taskRepo)

			require.NoError(t, err)
			assert.Equal(t, int64(3), count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTaskRepository_Delete_Missing(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, taskRepo.Delete(context.Background(), 10), repository.ErrTaskNotFound)
}
