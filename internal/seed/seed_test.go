package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/dto"
	"taskmanager/internal/service"
)

// store remembers created keys and rejects repeats the way the services do.
type store struct {
	keys map[string]bool
	fail error
}

func newStore() *store {
	return &store{keys: map[string]bool{}}
}

func (s *store) add(key string) error {
	if s.fail != nil {
		return s.fail
	}
	if s.keys[key] {
		return &service.ValidationError{Violations: multierror.Append(nil, &service.FieldError{
			Field:   "key",
			Message: service.ErrDuplicate.Error(),
			Err:     service.ErrDuplicate,
		})}
	}
	s.keys[key] = true
	return nil
}

type users struct{ *store }

func (u users) Create(_ context.Context, d dto.UserCreateDTO) (dto.UserDTO, error) {
	return dto.UserDTO{Email: d.Email}, u.add(d.Email)
}

type statuses struct{ *store }

func (s statuses) Create(_ context.Context, d dto.TaskStatusCreateDTO) (dto.TaskStatusDTO, error) {
	return dto.TaskStatusDTO{Slug: d.Slug}, s.add(d.Slug)
}

type labels struct{ *store }

func (l labels) Create(_ context.Context, d dto.LabelCreateDTO) (dto.LabelDTO, error) {
	return dto.LabelDTO{Name: d.Name}, l.add(d.Name)
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	u, st, lb := newStore(), newStore(), newStore()
	seeder := NewSeeder(users{u}, statuses{st}, labels{lb})
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx, "hexlet@example.com", "qwerty"))
	require.NoError(t, seeder.Run(ctx, "hexlet@example.com", "qwerty"))

	assert.True(t, u.keys["hexlet@example.com"])
	assert.Len(t, st.keys, len(DefaultStatuses))
	assert.True(t, st.keys["to_be_fixed"])
	assert.Len(t, lb.keys, 2)
}

func TestSeeder_RunStopsOnOtherErrors(t *testing.T) {
	st := newStore()
	st.fail = errors.New("connection refused")
	seeder := NewSeeder(users{newStore()}, statuses{st}, labels{newStore()})

	err := seeder.Run(context.Background(), "hexlet@example.com", "qwerty")

	assert.ErrorContains(t, err, `seed task status "draft"`)
}
