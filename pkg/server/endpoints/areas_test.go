package endpoints

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAreaAdmin(t *testing.T) {
	t.Run("returns the first administered area", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterAreasEndpoints(s)

		mock.ExpectQuery(`SELECT .* FROM "area_admins"`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "area_id"}).
				AddRow(1, 5, 12))

		req := httptest.NewRequest("GET", "/api/area-admins/5", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"areaId":12}`, w.Body.String())
	})

	t.Run("answers 404 for a user without a grant", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterAreasEndpoints(s)

		mock.ExpectQuery(`SELECT .* FROM "area_admins"`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "area_id"}))

		req := httptest.NewRequest("GET", "/api/area-admins/5", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"User is not an area admin."}`, w.Body.String())
	})

	t.Run("rejects a non-numeric user id at the router", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterAreasEndpoints(s)

		req := httptest.NewRequest("GET", "/api/area-admins/abc", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetArea(t *testing.T) {
	t.Run("returns name and information", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterAreasEndpoints(s)

		mock.ExpectQuery(`SELECT .* FROM "areas"`).
			WithArgs(12).
			WillReturnRows(sqlmock.NewRows([]string{"area_id", "area_name", "area_information"}).
				AddRow(12, "Demonstration forest", "Mixed hardwood stand"))

		req := httptest.NewRequest("GET", "/api/areas/12", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"area_name":"Demonstration forest","area_information":"Mixed hardwood stand"}`, w.Body.String())
	})

	t.Run("answers 404 for an unknown area", func(t *testing.T) {
		s, mock, err := NewMockTestServer()
		require.NoError(t, err)
		RegisterAreasEndpoints(s)

		mock.ExpectQuery(`SELECT .* FROM "areas"`).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"area_id", "area_name", "area_information"}))

		req := httptest.NewRequest("GET", "/api/areas/99", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"Area not found."}`, w.Body.String())
	})
}
