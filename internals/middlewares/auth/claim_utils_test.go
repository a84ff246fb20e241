package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestHasAnyRole(t *testing.T) {
	tests := []struct {
		name     string
		have     []string
		required []string
		want     bool
	}{
		{name: "irisan satu role", have: []string{"MENTOR"}, required: []string{"MENTOR", "MANAGER"}, want: true},
		{name: "tanpa irisan", have: []string{"MENTEE"}, required: []string{"MANAGER", "ADMIN"}, want: false},
		{name: "multi-role user", have: []string{"MENTEE", "MENTOR"}, required: []string{"MENTOR"}, want: true},
		{name: "case-insensitive", have: []string{"admin"}, required: []string{"ADMIN"}, want: true},
		{name: "roles kosong", have: nil, required: []string{"ADMIN"}, want: false},
		{name: "required kosong", have: []string{"ADMIN"}, required: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAnyRole(tt.have, tt.required...); got != tt.want {
				t.Errorf("HasAnyRole(%v, %v) = %v, want %v", tt.have, tt.required, got, tt.want)
			}
		})
	}
}

func TestRolesFromClaims(t *testing.T) {
	t.Run("roles array", func(t *testing.T) {
		claims := jwt.MapClaims{"roles": []interface{}{"mentor", "MENTEE"}}
		got := rolesFromClaims(claims)
		if len(got) != 2 || got[0] != "MENTOR" || got[1] != "MENTEE" {
			t.Errorf("rolesFromClaims = %v, want [MENTOR MENTEE]", got)
		}
	})

	t.Run("fallback ke legacy role", func(t *testing.T) {
		claims := jwt.MapClaims{"role": "manager"}
		got := rolesFromClaims(claims)
		if len(got) != 1 || got[0] != "MANAGER" {
			t.Errorf("rolesFromClaims = %v, want [MANAGER]", got)
		}
	})

	t.Run("kosong", func(t *testing.T) {
		if got := rolesFromClaims(jwt.MapClaims{}); len(got) != 0 {
			t.Errorf("rolesFromClaims = %v, want kosong", got)
		}
	})
}
