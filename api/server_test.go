package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/app-blogs/backend/auth"
	"github.com/app-blogs/backend/database"
	"github.com/app-blogs/backend/models"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	tokens := auth.NewTokenService("test-secret", time.Minute)
	return newRouter(database.New(db), tokens)
}

func doJSON(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router http.Handler) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/users",
		`{"name":"Ana","email":"ana@x.com","password":"pw123"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/users/login",
		`{"email":"ana@x.com","password":"pw123"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRegisterLoginAndAuthFailures(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/users",
		`{"name":"Ana","email":"ana@x.com","password":"pw123"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "pw123")

	// Duplicate email is a conflict
	w = doJSON(t, router, http.MethodPost, "/users",
		`{"name":"Ana2","email":"ana@x.com","password":"pw456"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Login sets the access_token cookie alongside the body token
	w = doJSON(t, router, http.MethodPost, "/users/login",
		`{"email":"ana@x.com","password":"pw123"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "access_token", cookies[0].Name)

	// Wrong secret and unknown email are the same unauthorized outcome
	w = doJSON(t, router, http.MethodPost, "/users/login",
		`{"email":"ana@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, router, http.MethodPost, "/users/login",
		`{"email":"nobody@x.com","password":"pw123"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedPostLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Creating without a credential is rejected
	w := doJSON(t, router, http.MethodPost, "/posts",
		`{"title":"Hi","body":"there"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/posts",
		`{"title":"Hi","body":"there","tags":["infra","go"]}`, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	assert.NotZero(t, created.AuthorID, "author comes from the token")

	// Get returns the tags sorted by name
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/posts/%d", created.ID), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Len(t, fetched.Tags, 2)
	assert.Equal(t, "go", fetched.Tags[0].Name)
	assert.Equal(t, "infra", fetched.Tags[1].Name)

	// Partial update keeps omitted fields
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/posts/%d", created.ID),
		`{"published":true}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.Published)
	assert.Equal(t, "Hi", updated.Title)

	// Delete once, then 404
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/posts/%d", created.ID), "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/posts/%d", created.ID), "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPostsPagination(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	for i := 0; i < 5; i++ {
		body := fmt.Sprintf(`{"title":"post-%d","body":"b","publishDate":"2025-01-0%dT00:00:00Z"}`, i, i+1)
		w := doJSON(t, router, http.MethodPost, "/posts", body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodGet, "/posts?offset=0&limit=2", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page PostPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, "post-4", page.Posts[0].Title)
	assert.Equal(t, "post-3", page.Posts[1].Title)
}

func TestTagEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Strict create conflicts on the second attempt
	w := doJSON(t, router, http.MethodPost, "/tags", `{"name":"rust"}`, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doJSON(t, router, http.MethodPost, "/tags", `{"name":"rust"}`, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Assigning to a post reuses the existing tag
	w = doJSON(t, router, http.MethodPost, "/posts", `{"title":"t","body":"b"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/posts/%d/tags", post.ID),
		`{"tags":["rust","web"]}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/tags", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var tags []models.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	require.Len(t, tags, 2)
	assert.Equal(t, "rust", tags[0].Name)
	assert.Equal(t, "web", tags[1].Name)

	// Assigning to an unknown post is not found
	w = doJSON(t, router, http.MethodPost, "/posts/999/tags", `{"tags":["rust"]}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRatingEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/posts", `{"title":"t","body":"b"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

	for _, value := range []float64{5, 3, 4} {
		body := fmt.Sprintf(`{"postId":%d,"value":%g}`, post.ID, value)
		w = doJSON(t, router, http.MethodPost, "/ratings", body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Out-of-range values are rejected before persistence
	w = doJSON(t, router, http.MethodPost, "/ratings",
		fmt.Sprintf(`{"postId":%d,"value":5.5}`, post.ID), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/ratings/%d", post.ID), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var summary models.RatingSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.InDelta(t, 4.0, summary.Average, 1e-9)
	assert.Equal(t, int64(3), summary.Count)

	// Rating an unknown post is not found
	w = doJSON(t, router, http.MethodPost, "/ratings", `{"postId":999,"value":3}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCookieAuthentication(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	// The token works from the cookie as well as the header
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"c","body":"b"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// A tampered cookie is unauthorized
	req = httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"c","body":"b"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token + "x"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
