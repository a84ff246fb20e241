// internals/route/details/upload_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	"belajarshafa_backend/internals/constants"
	uploadController "belajarshafa_backend/internals/features/uploads/controller"
	"belajarshafa_backend/internals/helpers/oss"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

func UploadRoutes(api fiber.Router, ossSvc *oss.OSSService) {
	ctrl := uploadController.NewUploadController(ossSvc)

	upload := api.Group("/upload",
		authmw.OnlyRoles(constants.RoleErrorMentor("upload file"), constants.MentorAndAbove...))
	upload.Post("/document", ctrl.UploadDocument)
	upload.Post("/image", ctrl.UploadImage)
}
