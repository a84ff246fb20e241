package dto

import (
	"time"

	"github.com/google/uuid"

	materialModel "belajarshafa_backend/internals/features/courses/material/model"
)

type CreateMaterialRequest struct {
	MaterialTopicID     uuid.UUID `json:"material_topic_id" validate:"required"`
	MaterialTitle       string    `json:"material_title" validate:"required,min=3,max=200"`
	MaterialDescription *string   `json:"material_description,omitempty"`
	MaterialType        string    `json:"material_type" validate:"required,oneof=VIDEO DOCUMENT ARTICLE EXTERNAL_LINK"`
	MaterialContentURL  *string   `json:"material_content_url,omitempty"`
	MaterialContentText *string   `json:"material_content_text,omitempty"`
	MaterialSequence    *int      `json:"material_sequence,omitempty" validate:"omitempty,min=1"`
}

type UpdateMaterialRequest struct {
	MaterialTitle       *string `json:"material_title,omitempty" validate:"omitempty,min=3,max=200"`
	MaterialDescription *string `json:"material_description,omitempty"`
	MaterialType        *string `json:"material_type,omitempty" validate:"omitempty,oneof=VIDEO DOCUMENT ARTICLE EXTERNAL_LINK"`
	MaterialContentURL  *string `json:"material_content_url,omitempty"`
	MaterialContentText *string `json:"material_content_text,omitempty"`
	MaterialSequence    *int    `json:"material_sequence,omitempty" validate:"omitempty,min=1"`
}

type ReorderEntry struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Sequence int       `json:"sequence" validate:"required,min=1"`
}

type ReorderRequest struct {
	Items []ReorderEntry `json:"items" validate:"required,min=1,dive"`
}

type MaterialResponse struct {
	MaterialID          uuid.UUID `json:"material_id"`
	MaterialTopicID     uuid.UUID `json:"material_topic_id"`
	MaterialTitle       string    `json:"material_title"`
	MaterialDescription *string   `json:"material_description,omitempty"`
	MaterialType        string    `json:"material_type"`
	MaterialContentURL  *string   `json:"material_content_url,omitempty"`
	MaterialContentText *string   `json:"material_content_text,omitempty"`
	MaterialSequence    int       `json:"material_sequence"`
	MaterialCreatedAt   time.Time `json:"material_created_at"`
}

func FromMaterialModel(m materialModel.MaterialModel) MaterialResponse {
	return MaterialResponse{
		MaterialID:          m.MaterialID,
		MaterialTopicID:     m.MaterialTopicID,
		MaterialTitle:       m.MaterialTitle,
		MaterialDescription: m.MaterialDescription,
		MaterialType:        m.MaterialType,
		MaterialContentURL:  m.MaterialContentURL,
		MaterialContentText: m.MaterialContentText,
		MaterialSequence:    m.MaterialSequence,
		MaterialCreatedAt:   m.MaterialCreatedAt,
	}
}

func FromMaterialModels(ms []materialModel.MaterialModel) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMaterialModel(m))
	}
	return out
}
