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

type dashboardResponse struct {
	TutorProfile *struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		AdminNotes string `json:"admin_notes"`
	} `json:"tutor_profile"`
}

// saveTutorDashboard submits the profile form and returns the resulting
// profile state.
func saveTutorDashboard(t *testing.T, ts *helpers.TestServer, token string) *dashboardResponse {
	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/dashboard", token, map[string]interface{}{
		"first_name": "Marc",
		"tutor": map[string]interface{}{
			"bio":         "Agrégé de mathématiques, 10 ans d'expérience",
			"subjects":    []string{"Mathématiques"},
			"levels":      []string{"Terminale"},
			"hourly_rate": 35,
		},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var dashboard dashboardResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &dashboard))
	require.NotNil(t, dashboard.TutorProfile)
	return &dashboard
}

func TestTutorSubmissionEntersModeration(t *testing.T) {
	ts := GetTestServer(t)

	tutorAuth, _ := helpers.RegisterAndLogin(t, ts, "Marc", models.UserRoleTutor)

	dashboard := saveTutorDashboard(t, ts, tutorAuth.AccessToken)
	assert.Equal(t, string(models.TutorStatusPending), dashboard.TutorProfile.Status)

	adminAuth, _ := helpers.CreateAdmin(t, ts, false)
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/tutors?status=pending", adminAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var queue struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &queue))

	found := false
	for _, item := range queue.Items {
		if item.ID == dashboard.TutorProfile.ID {
			found = true
		}
	}
	assert.True(t, found, "submitted profile should be in the pending queue")
}

func TestRejectionRequiresNote(t *testing.T) {
	ts := GetTestServer(t)

	tutorAuth, _ := helpers.RegisterAndLogin(t, ts, "Marc", models.UserRoleTutor)
	dashboard := saveTutorDashboard(t, ts, tutorAuth.AccessToken)

	adminAuth, _ := helpers.CreateAdmin(t, ts, false)
	profileID := dashboard.TutorProfile.ID

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/tutors/"+profileID+"/moderate", adminAuth.AccessToken, map[string]interface{}{
		"action": "reject",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/tutors/"+profileID+"/moderate", adminAuth.AccessToken, map[string]interface{}{
		"action": "reject",
		"note":   "Le casier judiciaire est manquant",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// The tutor sees the rejection and its note on the dashboard.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/dashboard", tutorAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var dash dashboardResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &dash))
	require.NotNil(t, dash.TutorProfile)
	assert.Equal(t, string(models.TutorStatusRejected), dash.TutorProfile.Status)
	assert.Equal(t, "Le casier judiciaire est manquant", dash.TutorProfile.AdminNotes)

	// A rejected tutor can fix the profile and resubmit.
	dash2 := saveTutorDashboard(t, ts, tutorAuth.AccessToken)
	assert.Equal(t, string(models.TutorStatusPending), dash2.TutorProfile.Status)
}

func TestValidationPublishesProfile(t *testing.T) {
	ts := GetTestServer(t)

	tutorAuth, _ := helpers.RegisterAndLogin(t, ts, "Marc", models.UserRoleTutor)
	dashboard := saveTutorDashboard(t, ts, tutorAuth.AccessToken)
	profileID := dashboard.TutorProfile.ID

	// Hidden from the public directory while pending.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/tutors/"+profileID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)

	adminAuth, _ := helpers.CreateAdmin(t, ts, false)
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/tutors/"+profileID+"/moderate", adminAuth.AccessToken, map[string]interface{}{
		"action": "validate",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/tutors/"+profileID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// Validation is a one-way gate from pending.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/tutors/"+profileID+"/moderate", adminAuth.AccessToken, map[string]interface{}{
		"action": "validate",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestSuspensionHidesProfile(t *testing.T) {
	ts := GetTestServer(t)

	_, profile := helpers.CreateValidatedTutor(t, ts, "Marc")
	adminAuth, _ := helpers.CreateAdmin(t, ts, false)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/tutors/"+profile.ID+"/suspend", adminAuth.AccessToken, map[string]interface{}{
		"note": "Signalements répétés",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/tutors/"+profile.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)

	// Only validated profiles can be suspended.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/tutors/"+profile.ID+"/suspend", adminAuth.AccessToken, map[string]interface{}{
		"note": "again",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestModerationRequiresStaff(t *testing.T) {
	ts := GetTestServer(t)

	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/tutors", parentAuth.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}
