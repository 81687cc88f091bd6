package dto

// AuthRequestDTO is the body of POST /api/login. Username is the user's email.
type AuthRequestDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
