package mapper

import (
	"taskmanager/internal/dto"
	"taskmanager/internal/model"
)

func ToUserDTO(u *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: dto.FormatDate(u.CreatedAt),
	}
}

func ToUserDTOs(users []model.User) []dto.UserDTO {
	result := make([]dto.UserDTO, len(users))
	for i := range users {
		result[i] = ToUserDTO(&users[i])
	}
	return result
}

func ToUser(d dto.UserCreateDTO, hash PasswordHasher) (*model.User, error) {
	digest, err := hash(d.Password)
	if err != nil {
		return nil, err
	}
	return &model.User{
		Email:          d.Email,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		PasswordDigest: digest,
	}, nil
}

func ApplyUserUpdate(u *model.User, d dto.UserUpdateDTO, hash PasswordHasher) error {
	if d.Email.HasValue() {
		u.Email = d.Email.Value
	}
	if d.FirstName.Set {
		u.FirstName = d.FirstName.Value
	}
	if d.LastName.Set {
		u.LastName = d.LastName.Value
	}
	if d.Password.HasValue() {
		digest, err := hash(d.Password.Value)
		if err != nil {
			return err
		}
		u.PasswordDigest = digest
	}
	return nil
}
