package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicModel struct {
	TopicID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:topic_id" json:"topic_id"`
	TopicCourseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_topic_course_sequence;column:topic_course_id" json:"topic_course_id"`

	TopicTitle       string  `gorm:"size:200;not null;column:topic_title" json:"topic_title"`
	TopicDescription *string `gorm:"column:topic_description" json:"topic_description,omitempty"`

	// urutan unik per kursus
	TopicSequence int `gorm:"not null;uniqueIndex:uq_topic_course_sequence;column:topic_sequence" json:"topic_sequence"`

	TopicCreatedAt time.Time      `gorm:"column:topic_created_at;autoCreateTime" json:"topic_created_at"`
	TopicUpdatedAt *time.Time     `gorm:"column:topic_updated_at;autoUpdateTime" json:"topic_updated_at,omitempty"`
	TopicDeletedAt gorm.DeletedAt `gorm:"column:topic_deleted_at;index" json:"topic_deleted_at,omitempty"`
}

func (TopicModel) TableName() string { return "course_topics" }
