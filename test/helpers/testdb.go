package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"monprof_backend/internal/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// AuthResult is the decoded auth response shared by register and login.
type AuthResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// UniqueEmail returns an email address unique per test run.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.local", prefix, time.Now().UnixNano())
}

// RegisterAndLogin creates a parent or tutor account through the public
// API and returns its tokens.
func RegisterAndLogin(t *testing.T, ts *TestServer, firstName string, role models.UserRole) (*AuthResult, string) {
	email := UniqueEmail(string(role))
	body := map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"role":       string(role),
		"first_name": firstName,
		"phone":      "+33600000000",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed, got: "+bodyStr)

	var auth AuthResult
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &auth))
	require.NotEmpty(t, auth.AccessToken)
	require.Equal(t, email, auth.User.Email)

	return &auth, email
}

// CreateValidatedTutor registers a tutor and pushes its profile straight
// to validated in the database, bypassing the moderation queue.
func CreateValidatedTutor(t *testing.T, ts *TestServer, firstName string) (*AuthResult, *models.TutorProfile) {
	auth, _ := RegisterAndLogin(t, ts, firstName, models.UserRoleTutor)

	now := time.Now()
	err := ts.DB.Model(&models.TutorProfile{}).
		Where("user_id = ?", auth.User.ID).
		Updates(map[string]interface{}{
			"bio":          "Experienced maths tutor",
			"subjects":     pq.StringArray{"Mathématiques"},
			"levels":       pq.StringArray{"Terminale"},
			"hourly_rate":  30.0,
			"status":       models.TutorStatusValidated,
			"validated_at": &now,
		}).Error
	require.NoError(t, err, "failed to validate tutor profile")

	var profile models.TutorProfile
	require.NoError(t, ts.DB.Where("user_id = ?", auth.User.ID).First(&profile).Error)

	return auth, &profile
}

// CreateAdmin inserts a back-office account directly and logs it in
// through the admin login endpoint.
func CreateAdmin(t *testing.T, ts *TestServer, superuser bool) (*AuthResult, *models.User) {
	email := UniqueEmail("admin")
	password := "password123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.UserRoleAdmin,
		IsSuperuser:  superuser,
		FirstName:    "Admin",
		IsActive:     true,
	}
	require.NoError(t, ts.DB.Create(admin).Error)

	body := map[string]interface{}{"email": email, "password": password}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/auth/login", "", body)
	require.Equal(t, http.StatusOK, res.StatusCode, "admin login should succeed, got: "+bodyStr)

	var auth AuthResult
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &auth))
	require.NotEmpty(t, auth.AccessToken)

	return &auth, admin
}
