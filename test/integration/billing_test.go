package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"monprof_backend/internal/models"
	"monprof_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tutorDetailResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	IsUnlocked bool   `json:"is_unlocked"`
}

type unlockResponse struct {
	TutorProfileID  string `json:"tutor_profile_id"`
	AmountPaid      int64  `json:"amount_paid"`
	AlreadyUnlocked bool   `json:"already_unlocked"`
}

const maskedValue = "••••••••"

func TestContactMaskedUntilUnlocked(t *testing.T) {
	ts := GetTestServer(t)

	tutorAuth, profile := helpers.CreateValidatedTutor(t, ts, "Marc")
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/tutors/"+profile.ID, parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var detail tutorDetailResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &detail))
	assert.Equal(t, maskedValue, detail.Email)
	assert.Equal(t, maskedValue, detail.Phone)
	assert.False(t, detail.IsUnlocked)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/billing/unlock/"+profile.ID, parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/tutors/"+profile.ID, parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &detail))
	assert.Equal(t, tutorAuth.User.Email, detail.Email)
	assert.True(t, detail.IsUnlocked)
}

// Paying twice for the same tutor must never create a second unlock.
func TestUnlockIsIdempotent(t *testing.T) {
	ts := GetTestServer(t)

	_, profile := helpers.CreateValidatedTutor(t, ts, "Marc")
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/billing/unlock/"+profile.ID, parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var first unlockResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &first))
	assert.Equal(t, profile.ID, first.TutorProfileID)
	assert.False(t, first.AlreadyUnlocked)
	assert.Equal(t, int64(2000), first.AmountPaid)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/billing/unlock/"+profile.ID, parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var second unlockResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &second))
	assert.True(t, second.AlreadyUnlocked)

	var count int64
	require.NoError(t, ts.DB.Model(&models.ContactUnlock{}).
		Where("parent_user_id = ? AND tutor_profile_id = ?", parentAuth.User.ID, profile.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnlockRequiresParentRole(t *testing.T) {
	ts := GetTestServer(t)

	_, profile := helpers.CreateValidatedTutor(t, ts, "Marc")
	otherTutor, _ := helpers.RegisterAndLogin(t, ts, "Paul", models.UserRoleTutor)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/billing/unlock/"+profile.ID, otherTutor.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestUnlockRefusesHiddenProfile(t *testing.T) {
	ts := GetTestServer(t)

	tutorAuth, _ := helpers.RegisterAndLogin(t, ts, "Marc", models.UserRoleTutor)
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	var profile models.TutorProfile
	require.NoError(t, ts.DB.Where("user_id = ?", tutorAuth.User.ID).First(&profile).Error)

	// Profile is still draft, never published.
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/billing/unlock/"+profile.ID, parentAuth.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}

func TestListUnlocks(t *testing.T) {
	ts := GetTestServer(t)

	_, profile := helpers.CreateValidatedTutor(t, ts, "Marc")
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/billing/unlock/"+profile.ID, parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/billing/unlocks", parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var list struct {
		Unlocks []unlockResponse `json:"unlocks"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list.Unlocks, 1)
	assert.Equal(t, profile.ID, list.Unlocks[0].TutorProfileID)
}
