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

type articleResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

func createArticle(t *testing.T, ts *helpers.TestServer, token, slug string, published bool) *articleResponse {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/articles", token, map[string]interface{}{
		"title":        "Réussir son bac de maths",
		"slug":         slug,
		"excerpt":      "Nos conseils pour la dernière ligne droite.",
		"content":      "Un plan de révision sur six semaines...",
		"is_published": published,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var article articleResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &article))
	return &article
}

func uniqueSlug(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestArticleLifecycle(t *testing.T) {
	ts := GetTestServer(t)

	adminAuth, _ := helpers.CreateAdmin(t, ts, false)
	slug := uniqueSlug("bac-maths")
	createArticle(t, ts, adminAuth.AccessToken, slug, true)

	// Published articles are public, no account needed.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/articles/"+slug, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// A second article cannot reuse the slug.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/articles", adminAuth.AccessToken, map[string]interface{}{
		"title":   "Doublon",
		"slug":    slug,
		"content": "...",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestDraftArticlesAreHidden(t *testing.T) {
	ts := GetTestServer(t)

	adminAuth, _ := helpers.CreateAdmin(t, ts, false)
	slug := uniqueSlug("brouillon")
	createArticle(t, ts, adminAuth.AccessToken, slug, false)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/articles/"+slug, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}

func TestCommentsAndLikes(t *testing.T) {
	ts := GetTestServer(t)

	adminAuth, _ := helpers.CreateAdmin(t, ts, false)
	slug := uniqueSlug("conseils")
	createArticle(t, ts, adminAuth.AccessToken, slug, true)

	parentAuth, _ := helpers.RegisterAndLogin(t, ts, "Claire", models.UserRoleParent)

	// Commenting needs an account.
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/articles/"+slug+"/comments", "", map[string]interface{}{
		"content": "Merci pour ces conseils !",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/articles/"+slug+"/comments", parentAuth.AccessToken, map[string]interface{}{
		"content": "Merci pour ces conseils !",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// Likes toggle on and off.
	var like struct {
		Liked     bool `json:"liked"`
		LikeCount int  `json:"like_count"`
	}
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/articles/"+slug+"/like", parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &like))
	assert.True(t, like.Liked)
	assert.Equal(t, 1, like.LikeCount)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/articles/"+slug+"/like", parentAuth.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &like))
	assert.False(t, like.Liked)
	assert.Equal(t, 0, like.LikeCount)
}

func TestArticleDeletionIsSuperuserOnly(t *testing.T) {
	ts := GetTestServer(t)

	regularAdmin, _ := helpers.CreateAdmin(t, ts, false)
	article := createArticle(t, ts, regularAdmin.AccessToken, uniqueSlug("a-supprimer"), true)

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/articles/"+article.ID, regularAdmin.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)

	superAdmin, _ := helpers.CreateAdmin(t, ts, true)
	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/articles/"+article.ID, superAdmin.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/articles/"+article.Slug, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}
