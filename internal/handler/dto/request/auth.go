package request

import (
	"rentwheels/internal/usecase/commands"
)

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	UserType string `json:"user_type" binding:"required,oneof=customer agent"`
}

func (r *SignUpRequest) ToCommand() commands.SignUpRequest {
	return commands.SignUpRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		UserType: r.UserType,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	UserType string `json:"user_type" binding:"omitempty,oneof=customer agent"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{
		Email:    r.Email,
		Password: r.Password,
		UserType: r.UserType,
	}
}
