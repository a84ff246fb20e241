package details

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func hasRoute(app *fiber.App, method, path string) bool {
	for _, r := range app.GetRoutes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}

func TestAuthPublicRoutePaths(t *testing.T) {
	app := fiber.New()
	AuthPublicRoutes(app.Group("/api"), nil)

	want := [][2]string{
		{fiber.MethodPost, "/api/auth/register"},
		{fiber.MethodPost, "/api/auth/login"},
		{fiber.MethodPost, "/api/auth/google"},
		{fiber.MethodPost, "/api/auth/refresh-token"},
	}
	for _, w := range want {
		if !hasRoute(app, w[0], w[1]) {
			t.Errorf("route %s %s tidak terdaftar", w[0], w[1])
		}
	}
}

func TestAttendanceRoutePaths(t *testing.T) {
	app := fiber.New()
	ClassRoutes(app.Group("/api"), nil)

	// tandai massal dan roster berbagi path, beda method
	want := [][2]string{
		{fiber.MethodPost, "/api/sessions/:sessionId/check-in"},
		{fiber.MethodPost, "/api/sessions/:sessionId/attendance"},
		{fiber.MethodGet, "/api/sessions/:sessionId/attendance"},
		{fiber.MethodPost, "/api/classes/join"},
		{fiber.MethodGet, "/api/classes/:classId/attendance"},
	}
	for _, w := range want {
		if !hasRoute(app, w[0], w[1]) {
			t.Errorf("route %s %s tidak terdaftar", w[0], w[1])
		}
	}
}
