package dto

import (
	"venue/internal/domains/user/model"
)

// RegisterRequest is the registration body. Only username and password are required.
type RegisterRequest struct {
	Username string  `json:"username"  validate:"required,max=50"`
	Password string  `json:"password"  validate:"required,max=72"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Phone    *string `json:"phone"     validate:"omitempty,max=20"`
	Email    *string `json:"email"     validate:"omitempty,max=100"`
}

func (r *RegisterRequest) ToModel(passwordHash string) model.User {
	return model.User{
		Username:     r.Username,
		PasswordHash: passwordHash,
		FullName:     r.FullName,
		Phone:        r.Phone,
		Email:        r.Email,
	}
}
