package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database.
// Roles disimpan sebagai text[] (multi-role); tidak ada kolom role tunggal.
type UserModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName   string         `gorm:"size:100;not null" json:"user_name" validate:"required,min=3,max=100"`
	Email      string         `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password   string         `gorm:"not null" json:"-"`
	GoogleID   *string        `gorm:"size:255;unique" json:"google_id,omitempty"`
	Roles      pq.StringArray `gorm:"type:text[];not null;default:'{MENTEE}'" json:"roles"`
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`
	IsVerified bool           `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// HasRole cek apakah user memegang role tertentu.
func (u *UserModel) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole cek irisan role-set user dengan daftar role.
func (u *UserModel) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}

// PrimaryRole mengembalikan role pertama (klaim legacy "role" di JWT).
func (u *UserModel) PrimaryRole() string {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0]
}
