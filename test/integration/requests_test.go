package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"monprof_backend/internal/models"
	"monprof_backend/internal/scoring"
	"monprof_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type courseRequestResponse struct {
	ID            string `json:"id"`
	ParentID      string `json:"parent_id"`
	Qualification string `json:"qualification"`
	Status        string `json:"status"`
}

func postRequest(t *testing.T, ts *helpers.TestServer, token string, budget, start, intention string) (*courseRequestResponse, *http.Response, string) {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/requests", token, map[string]interface{}{
		"subjects":     []string{"Mathématiques"},
		"level":        "Terminale",
		"budget_range": budget,
		"start_time":   start,
		"intention":    intention,
		"description":  "Préparation au bac",
	})
	if res.StatusCode != http.StatusCreated {
		return nil, res, bodyStr
	}

	var created courseRequestResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	return &created, res, bodyStr
}

func TestRequestScoring(t *testing.T) {
	ts := GetTestServer(t)

	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	cases := []struct {
		name      string
		budget    string
		start     string
		intention string
		expected  string
	}{
		{"ready with budget", "standard", "asap", "start", scoring.LabelStrong},
		{"budget but browsing", "high", "later", "info", scoring.LabelWarm},
		{"low budget", "low", "asap", "start", scoring.LabelLimited},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			created, res, bodyStr := postRequest(t, ts, parentAuth.AccessToken, tc.budget, tc.start, tc.intention)
			require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
			assert.Equal(t, tc.expected, created.Qualification)
			assert.Equal(t, string(models.RequestStatusActive), created.Status)
		})
	}
}

func TestRequestCapabilities(t *testing.T) {
	ts := GetTestServer(t)

	tutorAuth, _ := helpers.CreateValidatedTutor(t, ts, "Marc")

	// Tutors browse requests but never post them.
	_, res, bodyStr := postRequest(t, ts, tutorAuth.AccessToken, "standard", "asap", "start")
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)

	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)
	created, res, bodyStr := postRequest(t, ts, parentAuth.AccessToken, "standard", "asap", "start")
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/requests/"+created.ID, tutorAuth.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// Parents cannot browse the marketplace feed.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/requests", parentAuth.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestRequestUpdateOwnerOnly(t *testing.T) {
	ts := GetTestServer(t)

	ownerAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)
	otherAuth, _ := helpers.RegisterAndLogin(t, ts, "Paul", models.UserRoleParent)

	created, res, bodyStr := postRequest(t, ts, ownerAuth.AccessToken, "low", "later", "info")
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Equal(t, scoring.LabelLimited, created.Qualification)

	update := map[string]interface{}{
		"subjects":     []string{"Physique"},
		"level":        "Terminale",
		"budget_range": "high",
		"start_time":   "asap",
		"intention":    "start",
	}

	res, bodyStr = ts.SendRequest(t, http.MethodPut, "/api/v1/requests/"+created.ID, otherAuth.AccessToken, update)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)

	// The owner's edit goes through and the lead is re-scored.
	res, bodyStr = ts.SendRequest(t, http.MethodPut, "/api/v1/requests/"+created.ID, ownerAuth.AccessToken, update)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var updated courseRequestResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, scoring.LabelStrong, updated.Qualification)
}

// A parent can withdraw their own request; nobody else can.
func TestRequestWithdrawal(t *testing.T) {
	ts := GetTestServer(t)

	ownerAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)
	otherAuth, _ := helpers.RegisterAndLogin(t, ts, "Paul", models.UserRoleParent)
	tutorAuth, _ := helpers.CreateValidatedTutor(t, ts, "Marc")

	created, res, bodyStr := postRequest(t, ts, ownerAuth.AccessToken, "standard", "asap", "start")
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/requests/"+created.ID, otherAuth.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/requests/"+created.ID, ownerAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/requests/"+created.ID, tutorAuth.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/requests/"+created.ID, ownerAuth.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}

func TestListMyRequests(t *testing.T) {
	ts := GetTestServer(t)

	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	_, res, bodyStr := postRequest(t, ts, parentAuth.AccessToken, "standard", "asap", "start")
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	_, res, bodyStr = postRequest(t, ts, parentAuth.AccessToken, "medium", "later", "info")
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/requests/my", parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var mine struct {
		Requests []courseRequestResponse `json:"requests"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &mine))
	assert.Len(t, mine.Requests, 2)
	for _, r := range mine.Requests {
		assert.Equal(t, parentAuth.User.ID, r.ParentID)
	}
}
