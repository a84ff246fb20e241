package dto

import (
	"time"

	"github.com/google/uuid"

	categoryModel "belajarshafa_backend/internals/features/courses/category/model"
)

type CreateCategoryRequest struct {
	CategoryName        string  `json:"category_name" validate:"required,min=2,max=100"`
	CategoryDescription *string `json:"category_description,omitempty"`
}

type UpdateCategoryRequest struct {
	CategoryName        *string `json:"category_name,omitempty" validate:"omitempty,min=2,max=100"`
	CategoryDescription *string `json:"category_description,omitempty"`
}

type CategoryResponse struct {
	CategoryID          uuid.UUID `json:"category_id"`
	CategoryName        string    `json:"category_name"`
	CategoryDescription *string   `json:"category_description,omitempty"`
	CategoryCreatedAt   time.Time `json:"category_created_at"`
}

func FromCategoryModel(m categoryModel.CategoryModel) CategoryResponse {
	return CategoryResponse{
		CategoryID:          m.CategoryID,
		CategoryName:        m.CategoryName,
		CategoryDescription: m.CategoryDescription,
		CategoryCreatedAt:   m.CategoryCreatedAt,
	}
}

func FromCategoryModels(ms []categoryModel.CategoryModel) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromCategoryModel(m))
	}
	return out
}
