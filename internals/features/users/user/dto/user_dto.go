package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "belajarshafa_backend/internals/features/users/user/model"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	UserName   string    `json:"user_name"`
	Email      string    `json:"email"`
	Roles      []string  `json:"roles"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromUserModel(u userModel.UserModel) UserResponse {
	return UserResponse{
		ID:         u.ID,
		UserName:   u.UserName,
		Email:      u.Email,
		Roles:      append([]string{}, u.Roles...),
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

func FromUserModels(users []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUserModel(u))
	}
	return out
}

type UpdateUserRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=ADMIN MANAGER MENTOR MENTEE"`
}

type UpdateUserActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
