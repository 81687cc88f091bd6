package service

import (
	"context"

	"taskmanager/internal/auth"
	"taskmanager/internal/dto"
)

type AuthService struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewAuthService(users UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login exchanges an email and password for an access token. Unknown emails
// and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, d dto.AuthRequestDTO) (string, error) {
	if err := validateStruct(d); err != nil {
		return "", err
	}

	user, err := s.users.FindByEmail(ctx, d.Username)
	if err != nil {
		return "", err
	}
	if user == nil || !auth.CheckPassword(user.PasswordDigest, d.Password) {
		return "", ErrUnauthenticated
	}

	return s.tokens.GenerateToken(user.ID, user.Email)
}
