package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calhub/internal/logger"
	"calhub/models"
)

func newTestEventRepo(t *testing.T) (*eventRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &eventRepository{
		DB:     &DB{DB: db, logger: l, errorClassifier: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func testEvent(id, calendarID string, start, end time.Time) models.CalendarEvent {
	return models.CalendarEvent{
		ID:         id,
		CalendarID: calendarID,
		Title:      "Event " + id,
		StartTime:  start,
		EndTime:    end,
		Source: models.EventSource{
			Type: models.CalendarTypeICal,
			Name: "Test Calendar",
		},
	}
}

func TestSaveMany_EmptyInputIsNoOp(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	// No expectations registered: any DB round-trip would fail the test.
	err := repo.SaveMany(context.Background(), 1, nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMany_BulkUpsert(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	now := time.Now()
	events := []models.CalendarEvent{
		testEvent("ev-1", "cal-1", now, now.Add(time.Hour)),
		testEvent("ev-2", "cal-1", now.Add(2*time.Hour), now.Add(3*time.Hour)),
	}

	// The statement must be an upsert: replaying a sync may not
	// duplicate rows.
	mock.ExpectExec(`INSERT INTO events .+ ON CONFLICT \(id, calendar_id, user_id\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.SaveMany(context.Background(), 1, events)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMany_ExecError(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec("INSERT INTO events").
		WillReturnError(assert.AnError)

	err := repo.SaveMany(context.Background(), 1, []models.CalendarEvent{
		testEvent("ev-1", "cal-1", now, now.Add(time.Hour)),
	})
	require.ErrorIs(t, err, ErrExecutingStatement)
}

func TestFindByRange_OverlapPredicateAndOrdering(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	window := models.TimeRange{
		Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	rows := sqlmock.NewRows([]string{
		"id", "calendar_id", "title", "start_time", "end_time", "all_day",
		"location", "description", "source_type", "source_name", "source_email",
	}).
		AddRow("ev-1", "cal-1", "Early", window.Start, window.Start.Add(time.Hour), false, "", "", "ical", "Cal One", "").
		AddRow("ev-2", "cal-2", "Late", window.Start.Add(2*time.Hour), window.Start.Add(3*time.Hour), true, "HQ", "desc", "google", "Cal Two", "a@b.test")

	// Overlap, not containment: start_time compared against the window
	// end, end_time against the window start.
	mock.ExpectQuery(`SELECT .+ FROM events WHERE user_id = \$1 AND start_time <= \$2 AND end_time >= \$3 ORDER BY start_time ASC`).
		WithArgs(int64(7), window.End, window.Start).
		WillReturnRows(rows)

	got, err := repo.FindByRange(context.Background(), 7, window)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "ev-1", got[0].ID)
	assert.Equal(t, "ev-2", got[1].ID)
	assert.Equal(t, models.CalendarTypeGoogle, got[1].Source.Type)
	assert.True(t, got[1].AllDay)
	assert.Equal(t, "a@b.test", got[1].Source.AccountEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCalendarID_ScopedToCalendar(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "calendar_id", "title", "start_time", "end_time", "all_day",
		"location", "description", "source_type", "source_name", "source_email",
	}).AddRow("ev-1", "cal-1", "Only", time.Now(), time.Now().Add(time.Hour), false, "", "", "ical", "Cal One", "")

	mock.ExpectQuery(`SELECT .+ FROM events WHERE`).
		WithArgs("cal-1", int64(7)).
		WillReturnRows(rows)

	got, err := repo.FindByCalendarID(context.Background(), 7, "cal-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "cal-1", got[0].CalendarID)
}

func TestDeleteByCalendar(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM events").
		WithArgs(int64(7), "cal-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.DeleteByCalendar(context.Background(), 7, "cal-1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureCalendarRecord_IsInsertIfAbsent(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO calendars .+ ON CONFLICT \(id, user_id\) DO NOTHING`).
		WithArgs("cal-1", int64(7), "Work", "google", `{"id":"cal-1"}`, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.EnsureCalendarRecord(context.Background(), 7, CalendarRecord{
		ID:         "cal-1",
		Name:       "Work",
		Type:       "google",
		ConfigBlob: `{"id":"cal-1"}`,
		IsActive:   true,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLastSyncTime(t *testing.T) {
	t.Run("never synced returns nil", func(t *testing.T) {
		repo, mock, db := newTestEventRepo(t)
		defer db.Close()

		mock.ExpectQuery("SELECT last_synced_at").
			WithArgs("cal-1", int64(7)).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.GetLastSyncTime(context.Background(), 7, "cal-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("synced returns timestamp", func(t *testing.T) {
		repo, mock, db := newTestEventRepo(t)
		defer db.Close()

		syncedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT last_synced_at").
			WithArgs("cal-1", int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"last_synced_at"}).AddRow(syncedAt))

		got, err := repo.GetLastSyncTime(context.Background(), 7, "cal-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Equal(syncedAt))
	})
}

func TestUpdateLastSyncTime_Upsert(t *testing.T) {
	repo, mock, db := newTestEventRepo(t)
	defer db.Close()

	syncedAt := time.Now()
	mock.ExpectExec(`INSERT INTO sync_state .+ ON CONFLICT \(calendar_id, user_id\) DO UPDATE`).
		WithArgs("cal-1", int64(7), syncedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateLastSyncTime(context.Background(), 7, "cal-1", syncedAt)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
