// internals/features/users/user/service/user_scope_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManagerScope berisi id organisasi & kelas yang dibagikan manager.
type ManagerScope struct {
	OrgIDs   []uuid.UUID
	ClassIDs []uuid.UUID
}

// LoadManagerScope mengambil org/class id milik manager lebih dulu,
// baru predikat membership di-OR-kan ke query user (bukan join raksasa).
func LoadManagerScope(db *gorm.DB, managerID uuid.UUID) (ManagerScope, error) {
	var scope ManagerScope

	if err := db.Raw(`
		SELECT organization_id FROM organization_managers WHERE user_id = ?
		UNION
		SELECT organization_id FROM organization_members WHERE user_id = ?`,
		managerID, managerID,
	).Scan(&scope.OrgIDs).Error; err != nil {
		return scope, err
	}

	if err := db.Raw(`
		SELECT class_id FROM class_mentors WHERE user_id = ?
		UNION
		SELECT class_id FROM class_mentees WHERE user_id = ?`,
		managerID, managerID,
	).Scan(&scope.ClassIDs).Error; err != nil {
		return scope, err
	}

	return scope, nil
}

// ApplyManagerScope membatasi query users ke user yang berbagi org/kelas
// dengan manager (selalu termasuk dirinya sendiri).
func ApplyManagerScope(db *gorm.DB, q *gorm.DB, managerID uuid.UUID, scope ManagerScope) *gorm.DB {
	cond := db.Where("users.id = ?", managerID)
	if len(scope.OrgIDs) > 0 {
		cond = cond.
			Or("users.id IN (SELECT user_id FROM organization_members WHERE organization_id IN ?)", scope.OrgIDs).
			Or("users.id IN (SELECT user_id FROM organization_managers WHERE organization_id IN ?)", scope.OrgIDs)
	}
	if len(scope.ClassIDs) > 0 {
		cond = cond.
			Or("users.id IN (SELECT user_id FROM class_mentors WHERE class_id IN ?)", scope.ClassIDs).
			Or("users.id IN (SELECT user_id FROM class_mentees WHERE class_id IN ?)", scope.ClassIDs)
	}
	return q.Where(cond)
}

// CanSeeUser cek visibilitas satu user untuk manager.
func CanSeeUser(db *gorm.DB, managerID, targetID uuid.UUID, scope ManagerScope) (bool, error) {
	if managerID == targetID {
		return true, nil
	}
	q := db.Table("users").Where("users.id = ?", targetID)
	q = ApplyManagerScope(db, q, managerID, scope)
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
