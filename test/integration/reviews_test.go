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

type reviewListResponse struct {
	Reviews []struct {
		ID         string `json:"id"`
		AuthorName string `json:"author_name"`
		Rating     int    `json:"rating"`
	} `json:"reviews"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

func unlockTutor(t *testing.T, ts *helpers.TestServer, token, profileID string) {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/billing/unlock/"+profileID, token, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
}

// Reviews are reserved for parents who actually paid for the contact.
func TestReviewRequiresUnlock(t *testing.T) {
	ts := GetTestServer(t)

	_, profile := helpers.CreateValidatedTutor(t, ts, "Marc")
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	body := map[string]interface{}{"rating": 5, "comment": "Excellent pédagogue"}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/tutors/"+profile.ID+"/reviews", parentAuth.AccessToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)

	unlockTutor(t, ts, parentAuth.AccessToken, profile.ID)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/tutors/"+profile.ID+"/reviews", parentAuth.AccessToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// One review per parent per tutor.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/tutors/"+profile.ID+"/reviews", parentAuth.AccessToken, body)
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestReviewAggregates(t *testing.T) {
	ts := GetTestServer(t)

	_, profile := helpers.CreateValidatedTutor(t, ts, "Marc")

	firstParent, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)
	secondParent, _ := helpers.RegisterAndLogin(t, ts, "Paul", models.UserRoleParent)

	unlockTutor(t, ts, firstParent.AccessToken, profile.ID)
	unlockTutor(t, ts, secondParent.AccessToken, profile.ID)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/tutors/"+profile.ID+"/reviews", firstParent.AccessToken, map[string]interface{}{
		"rating": 5, "comment": "Parfait",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/tutors/"+profile.ID+"/reviews", secondParent.AccessToken, map[string]interface{}{
		"rating": 4, "comment": "Très bien",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// The review list is public.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/tutors/"+profile.ID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var list reviewListResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Equal(t, int64(2), list.ReviewCount)
	assert.InDelta(t, 4.5, list.AverageRating, 0.01)
	require.Len(t, list.Reviews, 2)
}

// Staff can pull an abusive review; the aggregates follow.
func TestAdminReviewModeration(t *testing.T) {
	ts := GetTestServer(t)

	_, profile := helpers.CreateValidatedTutor(t, ts, "Marc")
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)
	adminAuth, _ := helpers.CreateAdmin(t, ts, false)

	unlockTutor(t, ts, parentAuth.AccessToken, profile.ID)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/tutors/"+profile.ID+"/reviews", parentAuth.AccessToken, map[string]interface{}{
		"rating": 1, "comment": "Contenu injurieux",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/tutors/"+profile.ID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	var list reviewListResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list.Reviews, 1)
	reviewID := list.Reviews[0].ID

	// Parents cannot reach the back-office route.
	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/reviews/"+reviewID, parentAuth.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/reviews/"+reviewID, adminAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/tutors/"+profile.ID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Equal(t, int64(0), list.ReviewCount)
	assert.Empty(t, list.Reviews)

	// A second delete of the same review is a 404.
	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/reviews/"+reviewID, adminAuth.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}
