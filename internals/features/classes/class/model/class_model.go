package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "belajarshafa_backend/internals/features/users/user/model"
)

type ClassModel struct {
	ClassID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassName string    `gorm:"size:150;not null;column:class_name" json:"class_name" validate:"required,min=3,max=150"`

	// kode join: 8 karakter [A-Z0-9], unik global, disimpan uppercase
	ClassCode string `gorm:"size:8;not null;uniqueIndex;column:class_code" json:"class_code"`

	ClassDescription    *string    `gorm:"column:class_description" json:"class_description,omitempty"`
	ClassOrganizationID *uuid.UUID `gorm:"type:uuid;column:class_organization_id" json:"class_organization_id,omitempty"`

	ClassStartDate *datatypes.Date `gorm:"column:class_start_date" json:"class_start_date,omitempty"`
	ClassEndDate   *datatypes.Date `gorm:"column:class_end_date" json:"class_end_date,omitempty"`

	ClassCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:class_created_by" json:"class_created_by"`

	Mentors []userModel.UserModel `gorm:"many2many:class_mentors;foreignKey:ClassID;joinForeignKey:ClassID;References:ID;joinReferences:UserID" json:"mentors,omitempty"`
	Mentees []userModel.UserModel `gorm:"many2many:class_mentees;foreignKey:ClassID;joinForeignKey:ClassID;References:ID;joinReferences:UserID" json:"mentees,omitempty"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt *time.Time     `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at,omitempty"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

// HasMentor scan array membership (pola authorization app ini, O(ukuran kelas)).
func (m *ClassModel) HasMentor(userID uuid.UUID) bool {
	for _, u := range m.Mentors {
		if u.ID == userID {
			return true
		}
	}
	return false
}

func (m *ClassModel) HasMentee(userID uuid.UUID) bool {
	for _, u := range m.Mentees {
		if u.ID == userID {
			return true
		}
	}
	return false
}
