package dto

import (
	"time"

	"github.com/google/uuid"

	topicModel "belajarshafa_backend/internals/features/courses/topic/model"
)

type CreateTopicRequest struct {
	TopicCourseID    uuid.UUID `json:"topic_course_id" validate:"required"`
	TopicTitle       string    `json:"topic_title" validate:"required,min=3,max=200"`
	TopicDescription *string   `json:"topic_description,omitempty"`
	TopicSequence    *int      `json:"topic_sequence,omitempty" validate:"omitempty,min=1"`
}

type UpdateTopicRequest struct {
	TopicTitle       *string `json:"topic_title,omitempty" validate:"omitempty,min=3,max=200"`
	TopicDescription *string `json:"topic_description,omitempty"`
	TopicSequence    *int    `json:"topic_sequence,omitempty" validate:"omitempty,min=1"`
}

type ReorderEntry struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Sequence int       `json:"sequence" validate:"required,min=1"`
}

type ReorderRequest struct {
	Items []ReorderEntry `json:"items" validate:"required,min=1,dive"`
}

type TopicResponse struct {
	TopicID          uuid.UUID `json:"topic_id"`
	TopicCourseID    uuid.UUID `json:"topic_course_id"`
	TopicTitle       string    `json:"topic_title"`
	TopicDescription *string   `json:"topic_description,omitempty"`
	TopicSequence    int       `json:"topic_sequence"`
	TopicCreatedAt   time.Time `json:"topic_created_at"`
}

func FromTopicModel(m topicModel.TopicModel) TopicResponse {
	return TopicResponse{
		TopicID:          m.TopicID,
		TopicCourseID:    m.TopicCourseID,
		TopicTitle:       m.TopicTitle,
		TopicDescription: m.TopicDescription,
		TopicSequence:    m.TopicSequence,
		TopicCreatedAt:   m.TopicCreatedAt,
	}
}

func FromTopicModels(ms []topicModel.TopicModel) []TopicResponse {
	out := make([]TopicResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromTopicModel(m))
	}
	return out
}
