package endpoints

import (
	"database/sql/driver"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHashOf matches an insert argument that is a valid bcrypt hash of
// the given plaintext but not the plaintext itself.
type bcryptHashOf struct {
	plaintext string
}

func (b bcryptHashOf) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok || s == b.plaintext {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s), []byte(b.plaintext)) == nil
}

func TestSignup(t *testing.T) {
	t.Run("creates a user and returns its id", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterUsersEndpoints(s)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WithArgs("jane", "jane@example.com", bcryptHashOf{"hunter2"}, "Jane Doe", "user").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(42))
		mock.ExpectCommit()

		body := `{"username":"jane","email":"jane@example.com","password":"hunter2","full_name":"Jane Doe"}`
		req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Record inserted successfully", resp["message"])
		assert.Equal(t, float64(42), resp["user_id"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps an explicit role after trimming", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterUsersEndpoints(s)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WithArgs("jane", "jane@example.com", bcryptHashOf{"hunter2"}, "", "admin").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))
		mock.ExpectCommit()

		body := `{"username":"jane","email":"jane@example.com","password":"hunter2","role":"  admin  "}`
		req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violations to 409", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterUsersEndpoints(s)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		body := `{"username":"jane","email":"jane@example.com","password":"hunter2"}`
		req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"Email or username already taken"}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports other insert failures as 500", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterUsersEndpoints(s)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		body := `{"username":"jane","email":"jane@example.com","password":"hunter2"}`
		req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"Error inserting record"}`, w.Body.String())
	})
}

func TestLogin(t *testing.T) {
	userColumns := []string{"user_id", "username", "email", "password", "full_name", "role"}

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("succeeds with the right password and hides the hash", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterUsersEndpoints(s)

		mock.ExpectQuery(`SELECT .* FROM "users"`).
			WithArgs("jane@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(42, "jane", "jane@example.com", string(hash), "Jane Doe", "user"))

		body := `{"email":"jane@example.com","password":"hunter2"}`
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)

		var resp struct {
			Message string                 `json:"message"`
			User    map[string]interface{} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp.Message)
		assert.Equal(t, "jane@example.com", resp.User["email"])
		assert.NotContains(t, resp.User, "password")
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterUsersEndpoints(s)

		mock.ExpectQuery(`SELECT .* FROM "users"`).
			WithArgs("jane@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(42, "jane", "jane@example.com", string(hash), "Jane Doe", "user"))

		body := `{"email":"jane@example.com","password":"wrong"}`
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
	})

	t.Run("answers identically for an unknown email", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterUsersEndpoints(s)

		mock.ExpectQuery(`SELECT .* FROM "users"`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		body := `{"email":"nobody@example.com","password":"hunter2"}`
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
	})

	t.Run("reports storage failures as 500", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterUsersEndpoints(s)

		mock.ExpectQuery(`SELECT .* FROM "users"`).
			WillReturnError(assert.AnError)

		body := `{"email":"jane@example.com","password":"hunter2"}`
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"Login failed"}`, w.Body.String())
	})
}
