package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/dto"
	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

func newLabelService() (*LabelService, *MockLabelRepository, *MockTaskRepository) {
	labels := new(MockLabelRepository)
	tasks := new(MockTaskRepository)
	return NewLabelService(passthroughTx{}, labels, tasks), labels, tasks
}

func TestLabelService_Create_LengthBounds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		details []string
	}{
		{"too short", "ab", []string{"name: must be at least 3 characters long"}},
		{"too long", strings.Repeat("x", 1001), []string{"name: must be at most 1000 characters long"}},
		{"blank", "", []string{"name: must not be blank"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, labels, _ := newLabelService()

			_, err := svc.Create(context.Background(), dto.LabelCreateDTO{Name: tt.input})

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.details, verr.Details())
			labels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestLabelService_Create(t *testing.T) {
	svc, labels, _ := newLabelService()
	ctx := context.Background()

	labels.On("FindByName", ctx, "feature").Return(nil, nil)
	labels.On("Create", ctx, mock.AnythingOfType("*model.Label")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Label).ID = 4 }).
		Return(nil)

	result, err := svc.Create(ctx, dto.LabelCreateDTO{Name: "feature"})

	require.NoError(t, err)
	assert.Equal(t, int64(4), result.ID)
	assert.Equal(t, "feature", result.Name)
}

func TestLabelService_Update_NullNameRejected(t *testing.T) {
	svc, _, _ := newLabelService()

	_, err := svc.Update(context.Background(), 4, dto.LabelUpdateDTO{Name: dto.Null[string]()})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name: must not be null"}, verr.Details())
}

func TestLabelService_Update_Rename(t *testing.T) {
	svc, labels, _ := newLabelService()
	ctx := context.Background()
	existing := &model.Label{ID: 4, Name: "feature"}

	labels.On("GetByID", ctx, int64(4)).Return(existing, nil)
	labels.On("FindByName", ctx, "enhancement").Return(nil, nil)
	labels.On("Update", ctx, existing).Return(nil)

	result, err := svc.Update(ctx, 4, dto.LabelUpdateDTO{Name: dto.Of("enhancement")})

	require.NoError(t, err)
	assert.Equal(t, int64(4), result.ID)
	assert.Equal(t, "enhancement", result.Name)
}

func TestLabelService_Delete_BlockedWhileAttached(t *testing.T) {
	svc, labels, tasks := newLabelService()
	ctx := context.Background()

	labels.On("GetByID", ctx, int64(4)).Return(&model.Label{ID: 4}, nil)
	tasks.On("CountByLabel", ctx, int64(4)).Return(int64(3), nil)

	assert.ErrorIs(t, svc.Delete(ctx, 4), ErrConflict)
	labels.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLabelService_Get_NotFound(t *testing.T) {
	svc, labels, _ := newLabelService()
	ctx := context.Background()

	labels.On("GetByID", ctx, int64(404)).Return(nil, repository.ErrLabelNotFound)

	_, err := svc.Get(ctx, 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
