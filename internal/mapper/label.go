package mapper

import (
	"taskmanager/internal/dto"
	"taskmanager/internal/model"
)

func ToLabelDTO(l *model.Label) dto.LabelDTO {
	return dto.LabelDTO{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: dto.FormatDate(l.CreatedAt),
	}
}

func ToLabelDTOs(labels []model.Label) []dto.LabelDTO {
	result := make([]dto.LabelDTO, len(labels))
	for i := range labels {
		result[i] = ToLabelDTO(&labels[i])
	}
	return result
}

func ToLabel(d dto.LabelCreateDTO) *model.Label {
	return &model.Label{Name: d.Name}
}

func ApplyLabelUpdate(l *model.Label, d dto.LabelUpdateDTO) {
	if d.Name.HasValue() {
		l.Name = d.Name.Value
	}
}
