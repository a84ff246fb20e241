package dto

import (
	"time"

	"github.com/google/uuid"

	courseModel "belajarshafa_backend/internals/features/courses/course/model"
)

type CreateCourseRequest struct {
	CourseTitle        string     `json:"course_title" validate:"required,min=3,max=200"`
	CourseDescription  *string    `json:"course_description,omitempty"`
	CourseLevel        string     `json:"course_level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	CourseType         string     `json:"course_type" validate:"required,oneof=PUBLIC PRIVATE"`
	CourseCategoryID   *uuid.UUID `json:"course_category_id,omitempty"`
	CourseThumbnailURL *string    `json:"course_thumbnail_url,omitempty" validate:"omitempty,url"`
}

type UpdateCourseRequest struct {
	CourseTitle        *string    `json:"course_title,omitempty" validate:"omitempty,min=3,max=200"`
	CourseDescription  *string    `json:"course_description,omitempty"`
	CourseLevel        *string    `json:"course_level,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	CourseType         *string    `json:"course_type,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
	CourseCategoryID   *uuid.UUID `json:"course_category_id,omitempty"`
	CourseThumbnailURL *string    `json:"course_thumbnail_url,omitempty" validate:"omitempty,url"`
	CourseIsActive     *bool      `json:"course_is_active,omitempty"`
}

type CourseResponse struct {
	CourseID           uuid.UUID  `json:"course_id"`
	CourseTitle        string     `json:"course_title"`
	CourseDescription  *string    `json:"course_description,omitempty"`
	CourseLevel        string     `json:"course_level"`
	CourseType         string     `json:"course_type"`
	CourseCategoryID   *uuid.UUID `json:"course_category_id,omitempty"`
	CourseThumbnailURL *string    `json:"course_thumbnail_url,omitempty"`
	CourseIsActive     bool       `json:"course_is_active"`
	CourseCreatedBy    uuid.UUID  `json:"course_created_by"`
	CourseCreatedAt    time.Time  `json:"course_created_at"`
}

func FromCourseModel(m courseModel.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:           m.CourseID,
		CourseTitle:        m.CourseTitle,
		CourseDescription:  m.CourseDescription,
		CourseLevel:        m.CourseLevel,
		CourseType:         m.CourseType,
		CourseCategoryID:   m.CourseCategoryID,
		CourseThumbnailURL: m.CourseThumbnailURL,
		CourseIsActive:     m.CourseIsActive,
		CourseCreatedBy:    m.CourseCreatedBy,
		CourseCreatedAt:    m.CourseCreatedAt,
	}
}

func FromCourseModels(ms []courseModel.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromCourseModel(m))
	}
	return out
}

// CourseStats merangkum isi dan aktivitas belajar sebuah kursus.
type CourseStats struct {
	TopicCount      int64    `json:"topic_count"`
	MaterialCount   int64    `json:"material_count"`
	EnrollmentCount int64    `json:"enrollment_count"`
	CompletionCount int64    `json:"completion_count"`
	AverageProgress *float64 `json:"average_progress"`
}
