// internals/route/details/learning_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "belajarshafa_backend/internals/features/learning/enrollment/controller"
	progressController "belajarshafa_backend/internals/features/learning/progress/controller"
)

func LearningRoutes(api fiber.Router, db *gorm.DB) {
	enrollmentCtrl := enrollmentController.NewEnrollmentController(db)
	progressCtrl := progressController.NewProgressController(db)

	// ===== ENROLLMENTS =====
	enrollments := api.Group("/enrollments")
	enrollments.Post("/", enrollmentCtrl.Enroll)
	enrollments.Get("/my-courses", enrollmentCtrl.MyCourses)
	enrollments.Get("/course/:courseId", enrollmentCtrl.CourseRoster)
	enrollments.Delete("/course/:courseId", enrollmentCtrl.Unenroll)
	enrollments.Post("/course/:courseId/complete", enrollmentCtrl.MarkCompleted)

	// ===== PROGRESS =====
	progress := api.Group("/progress")
	progress.Put("/material/:materialId", progressCtrl.UpdateMaterialProgress)
	progress.Get("/topic/:topicId", progressCtrl.TopicProgress)
}
