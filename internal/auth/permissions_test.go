package auth

import (
	"testing"

	"monprof_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestHasCapability(t *testing.T) {
	assert.True(t, HasCapability(models.UserRoleParent, CapPostRequests))
	assert.True(t, HasCapability(models.UserRoleParent, CapUnlockContacts))
	assert.False(t, HasCapability(models.UserRoleParent, CapBrowseRequests))
	assert.False(t, HasCapability(models.UserRoleParent, CapAccessBackoffice))

	assert.True(t, HasCapability(models.UserRoleTutor, CapBrowseRequests))
	assert.True(t, HasCapability(models.UserRoleTutor, CapPublishProfile))
	assert.False(t, HasCapability(models.UserRoleTutor, CapPostRequests))
	assert.False(t, HasCapability(models.UserRoleTutor, CapWriteReviews))

	assert.True(t, HasCapability(models.UserRoleAdmin, CapAccessBackoffice))
	assert.True(t, HasCapability(models.UserRoleAdmin, CapPostRequests))
	assert.False(t, HasCapability(models.UserRoleAdmin, CapWriteReviews))

	assert.False(t, HasCapability(models.UserRole("ghost"), CapPostRequests))
}

func TestIsStaff(t *testing.T) {
	assert.True(t, IsStaff(&Claims{Role: models.UserRoleAdmin}))
	assert.False(t, IsStaff(&Claims{Role: models.UserRoleParent}))
	assert.False(t, IsStaff(&Claims{Role: models.UserRoleTutor}))
}

func TestValidatePublicRole(t *testing.T) {
	assert.NoError(t, ValidatePublicRole(models.UserRoleParent))
	assert.NoError(t, ValidatePublicRole(models.UserRoleTutor))
	assert.Error(t, ValidatePublicRole(models.UserRoleAdmin))
	assert.Error(t, ValidatePublicRole(models.UserRole("")))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", hash)
	assert.True(t, CheckPasswordHash("correct-horse-battery", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}
