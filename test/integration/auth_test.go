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

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)

	auth, email := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)
	assert.Equal(t, "parent", auth.User.Role)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var login helpers.AuthResult
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, auth.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	_, email := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"role":       "parent",
		"first_name": "Claire",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestRegisterRefusesAdminRole(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":      helpers.UniqueEmail("rogue"),
		"password":   "password123",
		"role":       "admin",
		"first_name": "Rogue",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

// Staff accounts never authenticate through the public login; they use
// the back-office endpoint, and vice versa.
func TestLoginSeparatesStaffAndPublic(t *testing.T) {
	ts := GetTestServer(t)

	adminAuth, admin := helpers.CreateAdmin(t, ts, false)
	require.NotEmpty(t, adminAuth.AccessToken)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    admin.Email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, bodyStr)

	_, parentEmail := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/auth/login", "", map[string]interface{}{
		"email":    parentEmail,
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestRefreshTokenRotation(t *testing.T) {
	ts := GetTestServer(t)

	auth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": auth.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var refreshed helpers.AuthResult
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, auth.RefreshToken, refreshed.RefreshToken)

	// The old refresh token died with the rotation.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": auth.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, bodyStr)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	ts := GetTestServer(t)

	auth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "", map[string]interface{}{
		"refresh_token": auth.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": auth.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, bodyStr)
}
