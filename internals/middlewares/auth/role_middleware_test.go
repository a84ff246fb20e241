package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// newRoleApp memasang OnlyRoles di belakang middleware stub yang mengisi
// Locals "user_roles", lalu handler sukses sederhana.
func newRoleApp(userRoles []string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Post("/join",
		func(c *fiber.Ctx) error {
			if userRoles != nil {
				c.Locals("user_roles", userRoles)
			}
			return c.Next()
		},
		OnlyRoles("Hanya mentee yang boleh bergabung ke kelas.", allowed...),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
	return app
}

func TestOnlyRolesManagerGate(t *testing.T) {
	tests := []struct {
		name       string
		userRoles  []string
		wantStatus int
	}{
		{name: "manager diizinkan", userRoles: []string{"MANAGER"}, wantStatus: fiber.StatusOK},
		{name: "admin diizinkan", userRoles: []string{"ADMIN"}, wantStatus: fiber.StatusOK},
		{name: "mentor ditolak", userRoles: []string{"MENTOR"}, wantStatus: fiber.StatusForbidden},
		{name: "mentee ditolak", userRoles: []string{"MENTEE"}, wantStatus: fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRoleApp(tt.userRoles, "MANAGER", "ADMIN")
			req := httptest.NewRequest(fiber.MethodPost, "/join", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestOnlyRolesMenteeGate(t *testing.T) {
	tests := []struct {
		name       string
		userRoles  []string
		wantStatus int
	}{
		{name: "mentee diizinkan", userRoles: []string{"MENTEE"}, wantStatus: fiber.StatusOK},
		{name: "mentee lowercase diizinkan", userRoles: []string{"mentee"}, wantStatus: fiber.StatusOK},
		{name: "mentor ditolak", userRoles: []string{"MENTOR"}, wantStatus: fiber.StatusForbidden},
		{name: "manager ditolak", userRoles: []string{"MANAGER"}, wantStatus: fiber.StatusForbidden},
		{name: "multi-role dengan mentee diizinkan", userRoles: []string{"MENTOR", "MENTEE"}, wantStatus: fiber.StatusOK},
		{name: "tanpa role sama sekali", userRoles: nil, wantStatus: fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRoleApp(tt.userRoles, "MENTEE")
			req := httptest.NewRequest(fiber.MethodPost, "/join", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
