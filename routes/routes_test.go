package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-platform/domain/content"
	"school-platform/utils"
)

const testSecret = "routes-test-secret"

func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	viper.Set("JWT_SECRET", testSecret)
	viper.Set("CORS_ORIGINS", "*")
	viper.Set("ADMIN_USER", "admin")

	hash, err := utils.HashPassword("school-admin-pass")
	require.NoError(t, err)
	viper.Set("ADMIN_PASS_HASH", hash)

	svc := content.NewService(content.NewMemoryStore())
	return NewRouter(svc)
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWT("admin")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeContent(t *testing.T, rec *httptest.ResponseRecorder) content.Content {
	t.Helper()
	var c content.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	return c
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []content.Content {
	t.Helper()
	var list []content.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateContentScenario(t *testing.T) {
	e := newTestApp(t)
	token := adminToken(t)

	rec := doJSON(t, e, http.MethodPost, "/api/content", token, map[string]interface{}{
		"title":    "Hero EN",
		"body":     "Welcome",
		"section":  "hero",
		"language": "en",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeContent(t, rec)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, 0, created.Order)
	assert.Equal(t, "hero", created.Section)
	assert.Equal(t, "en", created.Language)
}

func TestCreateContentRequiresAuth(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(t, e, http.MethodPost, "/api/content", "", map[string]interface{}{
		"title": "t", "body": "b", "section": "hero",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Nothing must have been created
	list := doJSON(t, e, http.MethodGet, "/api/content?section=hero", "", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Empty(t, decodeList(t, list))
}

func TestCreateContentRejectsNonAdminToken(t *testing.T) {
	e := newTestApp(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "viewer",
		"isAdmin":  false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := doJSON(t, e, http.MethodPost, "/api/content", signed, map[string]interface{}{
		"title": "t", "body": "b", "section": "hero",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateContentValidation(t *testing.T) {
	e := newTestApp(t)
	token := adminToken(t)

	rec := doJSON(t, e, http.MethodPost, "/api/content", token, map[string]interface{}{
		"title": "t", "body": "b",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "Title, body, and section are required", body["message"])

	rec = doJSON(t, e, http.MethodPost, "/api/content", token, map[string]interface{}{
		"title": "t", "body": "b", "section": "homepage",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicListOrdering(t *testing.T) {
	e := newTestApp(t)
	token := adminToken(t)

	rec := doJSON(t, e, http.MethodPost, "/api/content", token, map[string]interface{}{
		"title": "second slide", "body": "b", "section": "slideshow", "language": "en", "order": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/content", token, map[string]interface{}{
		"title": "first slide", "body": "b", "section": "slideshow", "language": "en", "order": 0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	list := doJSON(t, e, http.MethodGet, "/api/content?section=slideshow&language=en", "", nil)
	require.Equal(t, http.StatusOK, list.Code)

	results := decodeList(t, list)
	require.Len(t, results, 2)
	assert.Equal(t, "first slide", results[0].Title)
	assert.Equal(t, "second slide", results[1].Title)
}

func TestInactiveHiddenFromPublicVisibleToAdmin(t *testing.T) {
	e := newTestApp(t)
	token := adminToken(t)

	rec := doJSON(t, e, http.MethodPost, "/api/content", token, map[string]interface{}{
		"title": "lesson", "body": "b", "section": "lessons",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeContent(t, rec)

	rec = doJSON(t, e, http.MethodPut, "/api/content/"+created.ID, token, map[string]interface{}{
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	public := doJSON(t, e, http.MethodGet, "/api/content?section=lessons", "", nil)
	require.Equal(t, http.StatusOK, public.Code)
	assert.Empty(t, decodeList(t, public))

	admin := doJSON(t, e, http.MethodGet, "/api/content/admin/all?section=lessons", token, nil)
	require.Equal(t, http.StatusOK, admin.Code)
	results := decodeList(t, admin)
	require.Len(t, results, 1)
	assert.False(t, results[0].IsActive)

	// The record itself is still readable by ID
	get := doJSON(t, e, http.MethodGet, "/api/content/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, get.Code)
}

func TestAdminListRequiresAuth(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(t, e, http.MethodGet, "/api/content/admin/all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateNonexistentReturnsNotFound(t *testing.T) {
	e := newTestApp(t)
	token := adminToken(t)

	rec := doJSON(t, e, http.MethodPut, "/api/content/doesnotexist", token, map[string]interface{}{
		"title": "new",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "Content not found", body["message"])
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	e := newTestApp(t)
	token := adminToken(t)

	rec := doJSON(t, e, http.MethodPost, "/api/content", token, map[string]interface{}{
		"title": "t", "body": "b", "section": "projects",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeContent(t, rec)

	del := doJSON(t, e, http.MethodDelete, "/api/content/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, del.Code)
	body := decodeMap(t, del)
	assert.Equal(t, "Content deleted successfully", body["message"])

	get := doJSON(t, e, http.MethodGet, "/api/content/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, get.Code)
}

func TestPartialUpdateKeepsOtherFields(t *testing.T) {
	e := newTestApp(t)
	token := adminToken(t)

	rec := doJSON(t, e, http.MethodPost, "/api/content", token, map[string]interface{}{
		"title":    "Robotics Club",
		"body":     "Build robots after class",
		"section":  "activities",
		"order":    2,
		"metadata": map[string]interface{}{"teacher": "Ms. Amina"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeContent(t, rec)

	upd := doJSON(t, e, http.MethodPut, "/api/content/"+created.ID, token, map[string]interface{}{
		"title": "Robotics & Coding Club",
	})
	require.Equal(t, http.StatusOK, upd.Code)

	updated := decodeContent(t, upd)
	assert.Equal(t, "Robotics & Coding Club", updated.Title)
	assert.Equal(t, created.Body, updated.Body)
	assert.Equal(t, created.Section, updated.Section)
	assert.Equal(t, created.Order, updated.Order)
	assert.Equal(t, "Ms. Amina", updated.Metadata["teacher"])
}

func TestLoginIssuesUsableToken(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(t, e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "school-admin-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Username string `json:"username"`
			IsAdmin  bool   `json:"isAdmin"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Equal(t, "Login successful", login.Message)
	assert.True(t, login.User.IsAdmin)
	require.NotEmpty(t, login.Token)

	// The issued token passes the admin gate
	create := doJSON(t, e, http.MethodPost, "/api/content", login.Token, map[string]interface{}{
		"title": "t", "body": "b", "section": "about",
	})
	assert.Equal(t, http.StatusCreated, create.Code)

	verify := doJSON(t, e, http.MethodGet, "/api/auth/verify", login.Token, nil)
	assert.Equal(t, http.StatusOK, verify.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(t, e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "someoneelse",
		"password": "school-admin-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthReportsStoreMode(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(t, e, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeMap(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, content.ModeMemory, body["store_mode"])
}

func TestPublicListDefaultsToEnglish(t *testing.T) {
	e := newTestApp(t)
	token := adminToken(t)

	for i, lang := range []string{"en", "ar"} {
		rec := doJSON(t, e, http.MethodPost, "/api/content", token, map[string]interface{}{
			"title":    fmt.Sprintf("hero %s", lang),
			"body":     "b",
			"section":  "hero",
			"language": lang,
			"order":    i,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	list := doJSON(t, e, http.MethodGet, "/api/content?section=hero", "", nil)
	require.Equal(t, http.StatusOK, list.Code)
	results := decodeList(t, list)
	require.Len(t, results, 1)
	assert.Equal(t, "hero en", results[0].Title)
}
