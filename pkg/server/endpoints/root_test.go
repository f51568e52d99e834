package endpoints

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	s, _, err := NewMockTestServer()
	require.NoError(t, err)
	RegisterRootEndpoints(s)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `"Hello, this is the backend!"`, w.Body.String())
}

func TestHealth(t *testing.T) {
	t.Run("reports ok when the database answers", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterRootEndpoints(s)

		mock.ExpectQuery(`SELECT 1`).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		req := httptest.NewRequest("GET", "/healthz", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("reports 503 when the database is down", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterRootEndpoints(s)

		mock.ExpectQuery(`SELECT 1`).
			WillReturnError(assert.AnError)

		req := httptest.NewRequest("GET", "/healthz", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 503, w.Code)
		assert.JSONEq(t, `{"status":"error"}`, w.Body.String())
	})
}
