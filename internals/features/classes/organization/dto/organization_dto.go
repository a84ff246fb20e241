package dto

import (
	"time"

	"github.com/google/uuid"

	orgModel "belajarshafa_backend/internals/features/classes/organization/model"
	userDto "belajarshafa_backend/internals/features/users/user/dto"
)

type CreateOrganizationRequest struct {
	OrganizationName        string  `json:"organization_name" validate:"required,min=3,max=150"`
	OrganizationDescription *string `json:"organization_description,omitempty"`
}

type OrganizationMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type OrganizationResponse struct {
	OrganizationID          uuid.UUID `json:"organization_id"`
	OrganizationName        string    `json:"organization_name"`
	OrganizationDescription *string   `json:"organization_description,omitempty"`
	OrganizationCreatedAt   time.Time `json:"organization_created_at"`

	Managers []userDto.UserResponse `json:"managers,omitempty"`
	Members  []userDto.UserResponse `json:"members,omitempty"`
}

func FromOrganizationModel(m orgModel.OrganizationModel) OrganizationResponse {
	resp := OrganizationResponse{
		OrganizationID:          m.OrganizationID,
		OrganizationName:        m.OrganizationName,
		OrganizationDescription: m.OrganizationDescription,
		OrganizationCreatedAt:   m.OrganizationCreatedAt,
	}
	if len(m.Managers) > 0 {
		resp.Managers = userDto.FromUserModels(m.Managers)
	}
	if len(m.Members) > 0 {
		resp.Members = userDto.FromUserModels(m.Members)
	}
	return resp
}

func FromOrganizationModels(ms []orgModel.OrganizationModel) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromOrganizationModel(m))
	}
	return out
}
