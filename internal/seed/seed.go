// Package seed fills an empty database with the data the application
// expects on first start.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"taskmanager/internal/dto"
	"taskmanager/internal/service"
)

var DefaultStatuses = []dto.TaskStatusCreateDTO{
	{Name: "Draft", Slug: "draft"},
	{Name: "To review", Slug: "to_review"},
	{Name: "To be fixed", Slug: "to_be_fixed"},
	{Name: "To publish", Slug: "to_publish"},
	{Name: "Published", Slug: "published"},
}

var DefaultLabels = []dto.LabelCreateDTO{
	{Name: "feature"},
	{Name: "bug"},
}

type UserCreator interface {
	Create(ctx context.Context, d dto.UserCreateDTO) (dto.UserDTO, error)
}

type TaskStatusCreator interface {
	Create(ctx context.Context, d dto.TaskStatusCreateDTO) (dto.TaskStatusDTO, error)
}

type LabelCreator interface {
	Create(ctx context.Context, d dto.LabelCreateDTO) (dto.LabelDTO, error)
}

type Seeder struct {
	users    UserCreator
	statuses TaskStatusCreator
	labels   LabelCreator
}

func NewSeeder(users UserCreator, statuses TaskStatusCreator, labels LabelCreator) *Seeder {
	return &Seeder{users: users, statuses: statuses, labels: labels}
}

// Run creates the admin user, default statuses and default labels. Records
// that already exist are left alone, so Run is safe on every start.
func (s *Seeder) Run(ctx context.Context, adminEmail, adminPassword string) error {
	_, err := s.users.Create(ctx, dto.UserCreateDTO{Email: adminEmail, Password: adminPassword})
	if err := skipExisting(err); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	for _, status := range DefaultStatuses {
		_, err := s.statuses.Create(ctx, status)
		if err := skipExisting(err); err != nil {
			return fmt.Errorf("seed task status %q: %w", status.Slug, err)
		}
	}

	for _, label := range DefaultLabels {
		_, err := s.labels.Create(ctx, label)
		if err := skipExisting(err); err != nil {
			return fmt.Errorf("seed label %q: %w", label.Name, err)
		}
	}

	log.Println("✅ Seed data is in place")
	return nil
}

func skipExisting(err error) error {
	if errors.Is(err, service.ErrDuplicate) {
		return nil
	}
	return err
}
