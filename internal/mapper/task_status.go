package mapper

import (
	"taskmanager/internal/dto"
	"taskmanager/internal/model"
)

func ToTaskStatusDTO(s *model.TaskStatus) dto.TaskStatusDTO {
	return dto.TaskStatusDTO{
		ID:        s.ID,
		Name:      s.Name,
		Slug:      s.Slug,
		CreatedAt: dto.FormatDate(s.CreatedAt),
	}
}

func ToTaskStatusDTOs(statuses []model.TaskStatus) []dto.TaskStatusDTO {
	result := make([]dto.TaskStatusDTO, len(statuses))
	for i := range statuses {
		result[i] = ToTaskStatusDTO(&statuses[i])
	}
	return result
}

func ToTaskStatus(d dto.TaskStatusCreateDTO) *model.TaskStatus {
	return &model.TaskStatus{
		Name: d.Name,
		Slug: d.Slug,
	}
}

func ApplyTaskStatusUpdate(s *model.TaskStatus, d dto.TaskStatusUpdateDTO) {
	if d.Name.HasValue() {
		s.Name = d.Name.Value
	}
	if d.Slug.HasValue() {
		s.Slug = d.Slug.Value
	}
}
