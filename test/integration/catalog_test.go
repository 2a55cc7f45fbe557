package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"monprof_backend/internal/models"
	"monprof_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The reference catalog is seeded at startup and publicly readable.
func TestReferenceCatalog(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/subjects", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var subjects struct {
		Subjects []struct {
			Name string `json:"name"`
		} `json:"subjects"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &subjects))
	assert.NotEmpty(t, subjects.Subjects)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/levels", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var levels struct {
		Levels []struct {
			Name string `json:"name"`
		} `json:"levels"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &levels))
	assert.NotEmpty(t, levels.Levels)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/countries", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var countries struct {
		Countries []struct {
			Code string `json:"code"`
		} `json:"countries"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &countries))

	found := false
	for _, c := range countries.Countries {
		if c.Code == "FR" {
			found = true
		}
	}
	assert.True(t, found, "seeded country should be listed")
}

func TestAdminCatalogManagement(t *testing.T) {
	ts := GetTestServer(t)

	adminAuth, _ := helpers.CreateAdmin(t, ts, false)

	// Find the seeded country to attach a city to.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/countries", adminAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var countries struct {
		Countries []struct {
			ID   string `json:"id"`
			Code string `json:"code"`
		} `json:"countries"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &countries))

	var franceID string
	for _, c := range countries.Countries {
		if c.Code == "FR" {
			franceID = c.ID
		}
	}
	require.NotEmpty(t, franceID)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/cities", adminAuth.AccessToken, map[string]interface{}{
		"country_id": franceID,
		"name":       "Bordeaux",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var city struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &city))

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/quartiers", adminAuth.AccessToken, map[string]interface{}{
		"city_id": city.ID,
		"name":    "Chartrons",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/subjects", adminAuth.AccessToken, map[string]interface{}{
		"name": fmt.Sprintf("Latin %d", time.Now().UnixNano()),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/levels", adminAuth.AccessToken, map[string]interface{}{
		"name":     "Licence",
		"category": "superieur",
		"order":    1,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// The additions show up in the public catalog.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/cities/"+city.ID+"/quartiers", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var quartiers struct {
		Quartiers []struct {
			Name string `json:"name"`
		} `json:"quartiers"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &quartiers))
	require.Len(t, quartiers.Quartiers, 1)
	assert.Equal(t, "Chartrons", quartiers.Quartiers[0].Name)
}

func TestTutorSearch(t *testing.T) {
	ts := GetTestServer(t)

	_, profile := helpers.CreateValidatedTutor(t, ts, "Marc")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/tutors?subject=Mathématiques", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var results struct {
		Items []struct {
			ID        string `json:"id"`
			FirstName string `json:"first_name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &results))

	found := false
	for _, item := range results.Items {
		if item.ID == profile.ID {
			found = true
			assert.Equal(t, "Marc", item.FirstName)
		}
	}
	assert.True(t, found, "validated tutor should appear in search results")

	// A subject nobody teaches returns an empty page, not an error.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/tutors?subject=Philosophie", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// Draft and pending profiles never show up.
	hidden, _ := helpers.RegisterAndLogin(t, ts, "Sophie", models.UserRoleTutor)
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/tutors", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &results))
	for _, item := range results.Items {
		assert.NotEqual(t, hidden.User.ID, item.ID)
	}
}
