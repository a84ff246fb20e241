// internals/route/details/course_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	categoryController "belajarshafa_backend/internals/features/courses/category/controller"
	courseController "belajarshafa_backend/internals/features/courses/course/controller"
	materialController "belajarshafa_backend/internals/features/courses/material/controller"
	topicController "belajarshafa_backend/internals/features/courses/topic/controller"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	categoryCtrl := categoryController.NewCategoryController(db)
	courseCtrl := courseController.NewCourseController(db)
	topicCtrl := topicController.NewTopicController(db)
	materialCtrl := materialController.NewMaterialController(db)

	// ===== CATEGORIES =====
	categories := api.Group("/categories")
	categories.Get("/", categoryCtrl.List)
	categories.Post("/",
		authmw.OnlyRoles(constants.RoleErrorManager("kategori kursus"), constants.ManagerAndAbove...),
		categoryCtrl.Create)
	categories.Patch("/:id",
		authmw.OnlyRoles(constants.RoleErrorManager("kategori kursus"), constants.ManagerAndAbove...),
		categoryCtrl.Update)
	categories.Delete("/:id",
		authmw.OnlyRoles(constants.RoleErrorManager("kategori kursus"), constants.ManagerAndAbove...),
		categoryCtrl.Delete)

	// ===== COURSES =====
	courses := api.Group("/courses")
	courses.Post("/",
		authmw.OnlyRoles(constants.RoleErrorMentor("membuat kursus"), constants.MentorAndAbove...),
		courseCtrl.Create)
	courses.Get("/", courseCtrl.List)
	courses.Get("/:id", courseCtrl.GetByID)
	courses.Patch("/:id", courseCtrl.Update)
	courses.Delete("/:id", courseCtrl.Delete)
	courses.Post("/:id/duplicate",
		authmw.OnlyRoles(constants.RoleErrorMentor("duplikasi kursus"), constants.MentorAndAbove...),
		courseCtrl.Duplicate)
	courses.Get("/:id/stats", courseCtrl.Stats)

	// ===== TOPICS =====
	topics := api.Group("/topics")
	topics.Post("/", topicCtrl.Create)
	topics.Get("/course/:courseId", topicCtrl.ListByCourse)
	topics.Put("/reorder/:courseId", topicCtrl.Reorder)
	topics.Patch("/:id", topicCtrl.Update)
	topics.Delete("/:id", topicCtrl.Delete)

	// ===== MATERIALS =====
	materials := api.Group("/materials")
	materials.Post("/", materialCtrl.Create)
	materials.Get("/topic/:topicId", materialCtrl.ListByTopic)
	materials.Put("/reorder/:topicId", materialCtrl.Reorder)
	materials.Patch("/:id", materialCtrl.Update)
	materials.Delete("/:id", materialCtrl.Delete)
}
