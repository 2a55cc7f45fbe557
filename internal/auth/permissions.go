package auth

import (
	"errors"

	"monprof_backend/internal/models"
)

// Role capabilities. Authorization asks what a role can do, not which
// role it is, so adding a role means touching this file only.

type Capability string

const (
	CapPostRequests     Capability = "requests:post"
	CapBrowseRequests   Capability = "requests:browse"
	CapPublishProfile   Capability = "profile:publish"
	CapUnlockContacts   Capability = "contacts:unlock"
	CapWriteReviews     Capability = "reviews:write"
	CapAccessBackoffice Capability = "backoffice:access"
)

var roleCapabilities = map[models.UserRole][]Capability{
	models.UserRoleParent: {
		CapPostRequests,
		CapUnlockContacts,
		CapWriteReviews,
	},
	models.UserRoleTutor: {
		CapBrowseRequests,
		CapPublishProfile,
	},
	models.UserRoleAdmin: {
		CapPostRequests,
		CapBrowseRequests,
		CapAccessBackoffice,
	},
}

// HasCapability reports whether role carries cap.
func HasCapability(role models.UserRole, cap Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// CanPerformAction checks a capability against token claims.
func CanPerformAction(claims *Claims, cap Capability) bool {
	return HasCapability(claims.Role, cap)
}

// IsStaff reports whether the claims belong to a back-office account.
func IsStaff(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}

// ValidateRole checks a role string from a registration payload.
// Admin accounts are never created through the public path.
func ValidatePublicRole(role models.UserRole) error {
	switch role {
	case models.UserRoleParent, models.UserRoleTutor:
		return nil
	default:
		return errors.New("invalid role")
	}
}
