package auth

import (
	"strings"

	"smmehub_backend/internal/models"
)

// AccessLevel is the result of the access-control gate for a request.
type AccessLevel int

const (
	Unauthenticated AccessLevel = iota
	Business
	Admin
)

// IsElevated reports whether the account holds admin privileges.
// The role column is authoritative. The email substring check is a
// backwards-compatible shim for accounts created before the role field
// existed; it is deprecated and must go once those accounts are backfilled.
func IsElevated(role models.UserRole, email string) bool {
	if role == models.UserRoleAdmin || role == models.UserRoleSuperadmin {
		return true
	}
	return strings.Contains(strings.ToLower(email), "admin")
}

// Resolve maps claims to an access level. Callers treat Admin as a
// superset of Business.
func Resolve(claims *Claims) AccessLevel {
	if claims == nil || claims.UserID == "" {
		return Unauthenticated
	}
	if IsElevated(claims.Role, claims.Email) {
		return Admin
	}
	return Business
}
