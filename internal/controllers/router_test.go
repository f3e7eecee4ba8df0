package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ecomap/internal/auth"
	"ecomap/internal/models"
	"ecomap/internal/routes"
	"ecomap/internal/storage"
)

// fixture wires the full router against a mocked database so handler tests
// exercise routing, middleware and controllers together.
type fixture struct {
	router  *gin.Engine
	mock    sqlmock.Sqlmock
	tokens  *auth.TokenService
	uploads *storage.UploadStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	tokens := auth.NewTokenService("test-secret", time.Hour)

	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)

	return &fixture{
		router:  routes.SetupRouter(db, tokens, uploads),
		mock:    mock,
		tokens:  tokens,
		uploads: uploads,
	}
}

func (f *fixture) bearerFor(t *testing.T, id uint, role models.Role) string {
	t.Helper()
	token, err := f.tokens.Generate(&models.User{
		Model: gorm.Model{ID: id},
		Email: "user@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func (f *fixture) do(t *testing.T, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeJSONList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

var userColumns = []string{"id", "created_at", "updated_at", "deleted_at", "name", "email", "password", "role"}

func userRows(id uint, name, email, passwordHash string, role models.Role) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id, time.Now(), time.Now(), nil, name, email, passwordHash, string(role))
}

var reportColumns = []string{
	"id", "title", "description", "category", "severity", "location",
	"status", "user_id", "image_url", "latitude", "longitude", "created_at", "updated_at",
}

func reportRows(id, owner uint, status, image string) *sqlmock.Rows {
	return sqlmock.NewRows(reportColumns).
		AddRow(id, "Overflowing bins", "Bins on Elm Street have not been collected", "waste", "moderate",
			"Elm Street", status, owner, image, nil, nil, time.Now(), time.Now())
}
