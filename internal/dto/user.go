package dto

// UserCreateDTO is the body of POST /api/users.
type UserCreateDTO struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password" validate:"required,min=3"`
}

// UserUpdateDTO is the body of PUT /api/users/{id}. Absent fields are left unchanged.
type UserUpdateDTO struct {
	Email     Optional[string] `json:"email,omitzero" swaggertype:"string"`
	FirstName Optional[string] `json:"firstName,omitzero" swaggertype:"string"`
	LastName  Optional[string] `json:"lastName,omitzero" swaggertype:"string"`
	Password  Optional[string] `json:"password,omitzero" swaggertype:"string"`
}

type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt" example:"2024-01-31"`
}
