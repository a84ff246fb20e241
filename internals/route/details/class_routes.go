// internals/route/details/class_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	attendanceController "belajarshafa_backend/internals/features/classes/attendance/controller"
	classController "belajarshafa_backend/internals/features/classes/class/controller"
	orgController "belajarshafa_backend/internals/features/classes/organization/controller"
	sessionController "belajarshafa_backend/internals/features/classes/session/controller"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	orgCtrl := orgController.NewOrganizationController(db)
	classCtrl := classController.NewClassController(db)
	sessionCtrl := sessionController.NewSessionController(db)
	attendanceCtrl := attendanceController.NewAttendanceController(db)

	// ===== ORGANIZATIONS =====
	orgs := api.Group("/organizations")
	orgs.Post("/",
		authmw.OnlyRoles(constants.RoleErrorManager("organisasi"), constants.ManagerAndAbove...),
		orgCtrl.Create)
	orgs.Get("/", orgCtrl.List)
	orgs.Post("/:id/members", orgCtrl.AddMember)
	orgs.Delete("/:id/members/:userId", orgCtrl.RemoveMember)

	// ===== CLASSES =====
	classes := api.Group("/classes")
	classes.Post("/",
		authmw.OnlyRoles(constants.RoleErrorMentor("membuat kelas"), constants.MentorAndAbove...),
		classCtrl.Create)
	classes.Get("/", classCtrl.List)
	classes.Post("/join",
		authmw.OnlyRoles(constants.RoleErrorMentee("bergabung ke kelas"), constants.RoleMentee),
		classCtrl.JoinByCode)
	classes.Get("/:id", classCtrl.GetByID)
	classes.Patch("/:id", classCtrl.Update)
	classes.Delete("/:id",
		authmw.OnlyRoles(constants.RoleErrorManager("hapus kelas"), constants.ManagerAndAbove...),
		classCtrl.Delete)
	classes.Post("/:id/leave", classCtrl.Leave)
	classes.Post("/:id/mentors", classCtrl.AddMentor)
	classes.Delete("/:id/mentors/:mentorId", classCtrl.RemoveMentor)
	classes.Delete("/:id/mentees/:menteeId", classCtrl.RemoveMentee)

	// ===== SESSIONS =====
	classes.Post("/:classId/sessions", sessionCtrl.Create)
	classes.Get("/:classId/sessions", sessionCtrl.ListByClass)

	sessions := api.Group("/sessions")
	sessions.Get("/:id", sessionCtrl.GetByID)
	sessions.Patch("/:id", sessionCtrl.Update)
	sessions.Delete("/:id", sessionCtrl.Delete)

	// ===== ATTENDANCE =====
	sessions.Post("/:sessionId/check-in", attendanceCtrl.CheckIn)
	sessions.Post("/:sessionId/attendance", attendanceCtrl.BulkMark)
	sessions.Get("/:sessionId/attendance", attendanceCtrl.BySession)

	classes.Get("/:classId/attendance", attendanceCtrl.ByClass)

	attendance := api.Group("/attendance")
	attendance.Get("/me", attendanceCtrl.Me)
	attendance.Patch("/:id", attendanceCtrl.Update)
}
