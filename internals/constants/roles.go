package constants

import "fmt"

// Role names as stored in users.roles (text[]) and carried in JWT claims.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleMentor  = "MENTOR"
	RoleMentee  = "MENTEE"
)

// Template pesan error role
const (
	ErrOnlyMentorsCanAccess  = "Hanya mentor, manager, atau admin yang boleh mengakses fitur %s."
	ErrOnlyManagersCanAccess = "Hanya manager atau admin yang boleh mengakses fitur %s."
	ErrOnlyMenteesCanAccess  = "Hanya mentee yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorMentor(feature string) string {
	return fmt.Sprintf(ErrOnlyMentorsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorMentee(feature string) string {
	return fmt.Sprintf(ErrOnlyMenteesCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMentee,
		RoleMentor,
		RoleManager,
		RoleAdmin,
	}

	MentorAndAbove = []string{
		RoleMentor,
		RoleManager,
		RoleAdmin,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	MenteeOnly = []string{
		RoleMentee,
	}
)

// ValidRole memeriksa apakah sebuah string adalah role yang dikenal.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
