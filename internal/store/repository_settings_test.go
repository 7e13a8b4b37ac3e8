package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calhub/internal/logger"
)

func newTestSettingsRepo(t *testing.T) (*settingsRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &settingsRepository{
		DB:     &DB{DB: db, logger: l, errorClassifier: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestSettingsGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, db := newTestSettingsRepo(t)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM settings").
			WithArgs(int64(7), "timezone").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("Europe/Berlin"))

		got, err := repo.Get(context.Background(), 7, "timezone")
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", got)
	})

	t.Run("missing key maps to sentinel", func(t *testing.T) {
		repo, mock, db := newTestSettingsRepo(t)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM settings").
			WithArgs(int64(7), "timezone").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), 7, "timezone")
		require.ErrorIs(t, err, ErrSettingNotFound)
	})
}

func TestSettingsSet_Upsert(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO settings .+ ON CONFLICT \(user_id, key\) DO UPDATE`).
		WithArgs(int64(7), "calendar:cal-1", `{"id":"cal-1"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Set(context.Background(), 7, "calendar:cal-1", `{"id":"cal-1"}`)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsListByPrefix(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("calendar:cal-1", `{"id":"cal-1"}`).
		AddRow("calendar:cal-2", `{"id":"cal-2"}`)

	mock.ExpectQuery("SELECT key, value FROM settings").
		WithArgs(int64(7), "calendar:%").
		WillReturnRows(rows)

	got, err := repo.ListByPrefix(context.Background(), 7, "calendar:")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"calendar:cal-1": `{"id":"cal-1"}`,
		"calendar:cal-2": `{"id":"cal-2"}`,
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsListUserIDs(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id"}).
		AddRow(int64(1)).
		AddRow(int64(7))

	mock.ExpectQuery("SELECT DISTINCT user_id FROM settings").
		WithArgs("calendar:%").
		WillReturnRows(rows)

	got, err := repo.ListUserIDs(context.Background(), "calendar:")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 7}, got)
}

func TestLikePrefix_EscapesMetacharacters(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{name: "plain prefix", prefix: "calendar:", want: "calendar:%"},
		{name: "underscore escaped", prefix: "sync_state:", want: `sync\_state:%`},
		{name: "percent escaped", prefix: "100%:", want: `100\%:%`},
		{name: "backslash escaped", prefix: `a\b`, want: `a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, likePrefix(tt.prefix))
		})
	}
}
