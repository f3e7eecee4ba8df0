package controllers_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Success(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	f.mock.ExpectCommit()

	w := f.do(t, http.MethodPost, "/auth/register", jsonBody(t, map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "secret123",
	}), map[string]string{"Content-Type": "application/json"})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeJSON(t, w)
	user := body["user"].(map[string]any)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Equal(t, "citizen", user["role"])
	assert.NotContains(t, w.Body.String(), "password")
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	f.mock.ExpectRollback()

	w := f.do(t, http.MethodPost, "/auth/register", jsonBody(t, map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "secret123",
	}), map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestRegister_InvalidRole(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/auth/register", jsonBody(t, map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "secret123",
		"role":     "superuser",
	}), map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	f.mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(7, "Ada", "ada@example.com", string(hash), "citizen"))

	w := f.do(t, http.MethodPost, "/auth/login", jsonBody(t, map[string]string{
		"email":    "ada@example.com",
		"password": "secret123",
	}), map[string]string{"Content-Type": "application/json"})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)

	claims, err := f.tokens.Validate(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	w := f.do(t, http.MethodPost, "/auth/login", jsonBody(t, map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	}), map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.MinCost)
	require.NoError(t, err)
	f.mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(7, "Ada", "ada@example.com", string(hash), "citizen"))

	w := f.do(t, http.MethodPost, "/auth/login", jsonBody(t, map[string]string{
		"email":    "ada@example.com",
		"password": "wrongpassword",
	}), map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid password")
	require.NoError(t, f.mock.ExpectationsWereMet())
}
