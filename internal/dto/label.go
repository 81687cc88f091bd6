package dto

type LabelCreateDTO struct {
	Name string `json:"name" validate:"required,notblank,min=3,max=1000"`
}

type LabelUpdateDTO struct {
	Name Optional[string] `json:"name,omitzero" swaggertype:"string"`
}

type LabelDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt" example:"2024-01-31"`
}
