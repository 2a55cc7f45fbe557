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

type startThreadResponse struct {
	ThreadID string `json:"thread_id"`
}

type threadDetailResponse struct {
	ID       string `json:"id"`
	Messages []struct {
		SenderID string `json:"sender_id"`
		Content  string `json:"content"`
		IsRead   bool   `json:"is_read"`
	} `json:"messages"`
}

func startThread(t *testing.T, ts *helpers.TestServer, token, otherUserID string) string {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/messages/start/"+otherUserID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var resp startThreadResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	require.NotEmpty(t, resp.ThreadID)
	return resp.ThreadID
}

// Both sides of a pair always land on the same conversation.
func TestThreadIsSharedBetweenParticipants(t *testing.T) {
	ts := GetTestServer(t)

	tutorAuth, _ := helpers.CreateValidatedTutor(t, ts, "Marc")
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	threadID := startThread(t, ts, parentAuth.AccessToken, tutorAuth.User.ID)
	sameThreadID := startThread(t, ts, tutorAuth.AccessToken, parentAuth.User.ID)
	assert.Equal(t, threadID, sameThreadID)
}

func TestStartThreadWithSelfRefused(t *testing.T) {
	ts := GetTestServer(t)

	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/messages/start/"+parentAuth.User.ID, parentAuth.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

// A tutor whose profile never reached validation is unreachable.
func TestStartThreadWithHiddenTutorRefused(t *testing.T) {
	ts := GetTestServer(t)

	tutorAuth, _ := helpers.RegisterAndLogin(t, ts, "Marc", models.UserRoleTutor)
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/messages/start/"+tutorAuth.User.ID, parentAuth.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}

func TestMessagingReadState(t *testing.T) {
	ts := GetTestServer(t)

	tutorAuth, _ := helpers.CreateValidatedTutor(t, ts, "Marc")
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	threadID := startThread(t, ts, parentAuth.AccessToken, tutorAuth.User.ID)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/messages/threads/"+threadID, parentAuth.AccessToken, map[string]interface{}{
		"content": "Bonjour, êtes-vous disponible le mercredi ?",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// The tutor has one unread message.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/messages/unread-count", tutorAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var unread struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &unread))
	assert.Equal(t, int64(1), unread.Count)

	// Opening the thread marks it read.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/messages/threads/"+threadID, tutorAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var detail threadDetailResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &detail))
	require.Len(t, detail.Messages, 1)
	assert.Equal(t, parentAuth.User.ID, detail.Messages[0].SenderID)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/messages/unread-count", tutorAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &unread))
	assert.Equal(t, int64(0), unread.Count)
}

func TestThreadRefusesOutsiders(t *testing.T) {
	ts := GetTestServer(t)

	tutorAuth, _ := helpers.CreateValidatedTutor(t, ts, "Marc")
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)
	strangerAuth, _ := helpers.RegisterAndLogin(t, ts, "Paul", models.UserRoleParent)

	threadID := startThread(t, ts, parentAuth.AccessToken, tutorAuth.User.ID)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/messages/threads/"+threadID, strangerAuth.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/messages/threads/"+threadID, strangerAuth.AccessToken, map[string]interface{}{
		"content": "intrusion",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestInboxOrdering(t *testing.T) {
	ts := GetTestServer(t)

	firstTutor, _ := helpers.CreateValidatedTutor(t, ts, "Marc")
	secondTutor, _ := helpers.CreateValidatedTutor(t, ts, "Sophie")
	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	firstThread := startThread(t, ts, parentAuth.AccessToken, firstTutor.User.ID)
	secondThread := startThread(t, ts, parentAuth.AccessToken, secondTutor.User.ID)

	// Activity in the first thread bumps it back to the top.
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/messages/threads/"+firstThread, parentAuth.AccessToken, map[string]interface{}{
		"content": "relance",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/messages/inbox", parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var inbox struct {
		Threads []struct {
			ID string `json:"id"`
		} `json:"threads"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &inbox))
	require.Len(t, inbox.Threads, 2)
	assert.Equal(t, firstThread, inbox.Threads[0].ID)
	assert.Equal(t, secondThread, inbox.Threads[1].ID)
}
