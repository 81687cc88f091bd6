package dto

type TaskStatusCreateDTO struct {
	Name string `json:"name" validate:"required,notblank"`
	Slug string `json:"slug" validate:"required,notblank"`
}

type TaskStatusUpdateDTO struct {
	Name Optional[string] `json:"name,omitzero" swaggertype:"string"`
	Slug Optional[string] `json:"slug,omitzero" swaggertype:"string"`
}

type TaskStatusDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"createdAt" example:"2024-01-31"`
}
