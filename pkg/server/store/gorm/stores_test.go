package gorm

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	return gormDB, mock
}

func TestUsersStoreCreateUser(t *testing.T) {
	t.Run("fills in the generated id", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewUsersStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(42))
		mock.ExpectCommit()

		user := &model.User{Username: "jane", Email: "jane@example.com", Password: "hash", Role: "user"}
		require.NoError(t, s.CreateUser(user))
		assert.Equal(t, 42, user.UserID)
	})

	t.Run("translates unique violations to ErrConflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewUsersStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		user := &model.User{Username: "jane", Email: "jane@example.com", Password: "hash", Role: "user"}
		err := s.CreateUser(user)
		assert.ErrorIs(t, err, store.ErrConflict)
	})
}

func TestUsersStoreFindUserByEmail(t *testing.T) {
	t.Run("translates a miss to ErrNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewUsersStore(db)

		mock.ExpectQuery(`SELECT .* FROM "users"`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "email", "password", "full_name", "role"}))

		_, err := s.FindUserByEmail("nobody@example.com")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTreesStoreCreateTrees(t *testing.T) {
	t.Run("commits the whole batch", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewTreesStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "trees"`).
			WillReturnRows(sqlmock.NewRows([]string{"tree_id"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO "trees"`).
			WillReturnRows(sqlmock.NewRows([]string{"tree_id"}).AddRow(2))
		mock.ExpectCommit()

		trees := []model.Tree{
			{TreeNo: 1, PlotID: 7},
			{TreeNo: 2, PlotID: 7},
		}
		require.NoError(t, s.CreateTrees(trees))
		assert.Equal(t, 1, trees[0].TreeID)
		assert.Equal(t, 2, trees[1].TreeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when any row fails", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewTreesStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "trees"`).
			WillReturnRows(sqlmock.NewRows([]string{"tree_id"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO "trees"`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := s.CreateTrees([]model.Tree{
			{TreeNo: 1, PlotID: 7},
			{TreeNo: 2, PlotID: 7},
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVideosStoreFindVideoByName(t *testing.T) {
	t.Run("returns the first match", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewVideosStore(db)

		mock.ExpectQuery(`SELECT .* FROM "videos"`).
			WithArgs("walkthrough-01").
			WillReturnRows(sqlmock.NewRows([]string{"video_id", "video_name", "video_url_id"}).
				AddRow(10, "walkthrough-01", "yt-abc"))

		video, err := s.FindVideoByName("walkthrough-01")
		require.NoError(t, err)
		assert.Equal(t, 10, video.VideoID)
	})

	t.Run("translates a miss to ErrNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewVideosStore(db)

		mock.ExpectQuery(`SELECT .* FROM "videos"`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"video_id", "video_name", "video_url_id"}))

		_, err := s.FindVideoByName("missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPlotsStoreCreatePlot(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPlotsStore(db)

	boundary := []byte(`{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}`)

	mock.ExpectQuery(`INSERT INTO plots`).
		WithArgs("North stand", "Planted 2019", 3, string(boundary)).
		WillReturnRows(sqlmock.NewRows([]string{"plot_id"}).AddRow(7))

	plotID, err := s.CreatePlot("North stand", "Planted 2019", 3, boundary)
	require.NoError(t, err)
	assert.Equal(t, 7, plotID)
}

func TestPlotsStoreListPlots(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPlotsStore(db)

	mock.ExpectQuery(`SELECT "plot_id","plot_name","plot_information","area_id" FROM "plots"`).
		WillReturnRows(sqlmock.NewRows([]string{"plot_id", "plot_name", "plot_information", "area_id"}).
			AddRow(1, "North stand", "Planted 2019", 3))

	plots, err := s.ListPlots()
	require.NoError(t, err)
	require.Len(t, plots, 1)
	assert.Equal(t, "North stand", plots[0].PlotName)
	assert.Nil(t, plots[0].PlotBorder)
}

func TestHealthStorePing(t *testing.T) {
	t.Run("succeeds when the database answers", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewHealthStore(db)

		mock.ExpectQuery(`SELECT 1`).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		assert.NoError(t, s.Ping())
	})

	t.Run("propagates connection failures", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewHealthStore(db)

		mock.ExpectQuery(`SELECT 1`).
			WillReturnError(sql.ErrConnDone)

		assert.Error(t, s.Ping())
	})
}
