package auth

import (
	"testing"

	"smmehub_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsElevated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		role  models.UserRole
		email string
		want  bool
	}{
		{"admin role", models.UserRoleAdmin, "someone@example.com", true},
		{"superadmin role", models.UserRoleSuperadmin, "someone@example.com", true},
		{"business role", models.UserRoleBusiness, "owner@example.com", false},
		{"legacy admin email", models.UserRoleBusiness, "admin@gov.za", true},
		{"legacy admin email mixed case", models.UserRoleBusiness, "ADMIN@gov.za", true},
		{"admin substring inside email", models.UserRoleBusiness, "badminton@club.za", true},
		{"plain business email", models.UserRoleBusiness, "bakery@shop.za", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsElevated(tt.role, tt.email))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unauthenticated, Resolve(nil))
	assert.Equal(t, Unauthenticated, Resolve(&Claims{}))

	business := &Claims{UserID: "u1", Email: "owner@shop.za", Role: models.UserRoleBusiness}
	assert.Equal(t, Business, Resolve(business))

	admin := &Claims{UserID: "u2", Email: "x@y.za", Role: models.UserRoleAdmin}
	assert.Equal(t, Admin, Resolve(admin))

	legacy := &Claims{UserID: "u3", Email: "admin@y.za", Role: models.UserRoleBusiness}
	assert.Equal(t, Admin, Resolve(legacy))
}
