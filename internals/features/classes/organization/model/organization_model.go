package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "belajarshafa_backend/internals/features/users/user/model"
)

type OrganizationModel struct {
	OrganizationID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:organization_id" json:"organization_id"`
	OrganizationName        string    `gorm:"size:150;not null;column:organization_name" json:"organization_name" validate:"required,min=3,max=150"`
	OrganizationDescription *string   `gorm:"column:organization_description" json:"organization_description,omitempty"`

	Managers []userModel.UserModel `gorm:"many2many:organization_managers;foreignKey:OrganizationID;joinForeignKey:OrganizationID;References:ID;joinReferences:UserID" json:"managers,omitempty"`
	Members  []userModel.UserModel `gorm:"many2many:organization_members;foreignKey:OrganizationID;joinForeignKey:OrganizationID;References:ID;joinReferences:UserID" json:"members,omitempty"`

	OrganizationCreatedAt time.Time      `gorm:"column:organization_created_at;autoCreateTime" json:"organization_created_at"`
	OrganizationUpdatedAt *time.Time     `gorm:"column:organization_updated_at;autoUpdateTime" json:"organization_updated_at,omitempty"`
	OrganizationDeletedAt gorm.DeletedAt `gorm:"column:organization_deleted_at;index" json:"organization_deleted_at,omitempty"`
}

func (OrganizationModel) TableName() string { return "organizations" }

// IsManager scan daftar manager (bukan query filter) sesuai pola authorization app ini.
func (m *OrganizationModel) IsManager(userID uuid.UUID) bool {
	for _, u := range m.Managers {
		if u.ID == userID {
			return true
		}
	}
	return false
}

func (m *OrganizationModel) IsMember(userID uuid.UUID) bool {
	for _, u := range m.Members {
		if u.ID == userID {
			return true
		}
	}
	return false
}
