package dto

import (
	"time"

	"github.com/google/uuid"

	classModel "belajarshafa_backend/internals/features/classes/class/model"
	userDto "belajarshafa_backend/internals/features/users/user/dto"
)

type CreateClassRequest struct {
	ClassName           string     `json:"class_name" validate:"required,min=3,max=150"`
	ClassDescription    *string    `json:"class_description,omitempty"`
	ClassOrganizationID *uuid.UUID `json:"class_organization_id,omitempty"`

	// format tanggal: YYYY-MM-DD
	ClassStartDate *string `json:"class_start_date,omitempty"`
	ClassEndDate   *string `json:"class_end_date,omitempty"`

	MentorIDs []uuid.UUID `json:"mentor_ids,omitempty"`
}

type UpdateClassRequest struct {
	ClassName        *string `json:"class_name,omitempty" validate:"omitempty,min=3,max=150"`
	ClassDescription *string `json:"class_description,omitempty"`
	ClassStartDate   *string `json:"class_start_date,omitempty"`
	ClassEndDate     *string `json:"class_end_date,omitempty"`
}

type JoinClassRequest struct {
	Code string `json:"code" validate:"required,min=6,max=8"`
}

type ClassResponse struct {
	ClassID             uuid.UUID  `json:"class_id"`
	ClassName           string     `json:"class_name"`
	ClassCode           string     `json:"class_code"`
	ClassDescription    *string    `json:"class_description,omitempty"`
	ClassOrganizationID *uuid.UUID `json:"class_organization_id,omitempty"`
	ClassStartDate      *string    `json:"class_start_date,omitempty"`
	ClassEndDate        *string    `json:"class_end_date,omitempty"`
	ClassCreatedBy      uuid.UUID  `json:"class_created_by"`
	ClassCreatedAt      time.Time  `json:"class_created_at"`

	Mentors []userDto.UserResponse `json:"mentors,omitempty"`
	Mentees []userDto.UserResponse `json:"mentees,omitempty"`
}

func FromClassModel(m classModel.ClassModel) ClassResponse {
	resp := ClassResponse{
		ClassID:             m.ClassID,
		ClassName:           m.ClassName,
		ClassCode:           m.ClassCode,
		ClassDescription:    m.ClassDescription,
		ClassOrganizationID: m.ClassOrganizationID,
		ClassCreatedBy:      m.ClassCreatedBy,
		ClassCreatedAt:      m.ClassCreatedAt,
	}
	if m.ClassStartDate != nil {
		s := time.Time(*m.ClassStartDate).Format("2006-01-02")
		resp.ClassStartDate = &s
	}
	if m.ClassEndDate != nil {
		s := time.Time(*m.ClassEndDate).Format("2006-01-02")
		resp.ClassEndDate = &s
	}
	if len(m.Mentors) > 0 {
		resp.Mentors = userDto.FromUserModels(m.Mentors)
	}
	if len(m.Mentees) > 0 {
		resp.Mentees = userDto.FromUserModels(m.Mentees)
	}
	return resp
}

func FromClassModels(ms []classModel.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromClassModel(m))
	}
	return out
}
