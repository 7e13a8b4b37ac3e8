package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"calhub/internal/logger"
	"calhub/internal/metrics"
	"calhub/models"
)

// eventRepository is the PostgreSQL-backed implementation of
// [EventRepository]. It operates on the events, calendars, and sync_state
// tables through the embedded [*DB] connection.
//
// Every method obtains a context-scoped logger via [logger.FromContext]
// so database interactions are traced with structured fields.
type eventRepository struct {
	*DB
	logger *logger.Logger
}

// NewEventRepository constructs an [EventRepository] backed by the given
// database connection and fallback logger.
func NewEventRepository(db *DB, log *logger.Logger) EventRepository {
	return &eventRepository{
		DB:     db,
		logger: log,
	}
}

// SaveMany implements [EventRepository]. The batch is written as one
// multi-row INSERT with an ON CONFLICT overwrite, so replaying a sync is
// idempotent.
func (e *eventRepository) SaveMany(ctx context.Context, userID int64, events []models.CalendarEvent) error {
	if len(events) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("events.save_many")()

	builder := sq.Insert("events").
		Columns(eventInsertColumns...).
		Suffix(eventsOnConflictClause).
		PlaceholderFormat(sq.Dollar)

	for _, ev := range events {
		builder = builder.Values(
			ev.ID,
			ev.CalendarID,
			userID,
			ev.Title,
			ev.StartTime,
			ev.EndTime,
			ev.AllDay,
			ev.Location,
			ev.Description,
			string(ev.Source.Type),
			ev.Source.Name,
			ev.Source.AccountEmail,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.SaveMany").
			Int64("user_id", userID).
			Msg("failed to build bulk upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := e.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "eventRepository.SaveMany").
			Int64("user_id", userID).
			Int("event_count", len(events)).
			Msg("failed to execute bulk event upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindByRange implements [EventRepository]. The predicate is an interval
// overlap, not containment: start_time <= window.End AND end_time >=
// window.Start.
func (e *eventRepository) FindByRange(ctx context.Context, userID int64, window models.TimeRange) ([]models.CalendarEvent, error) {
	defer metrics.ObserveDB("events.find_by_range")()

	builder := sq.Select(eventSelectColumns...).
		From("events").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"start_time": window.End}).
		Where(sq.GtOrEq{"end_time": window.Start}).
		OrderBy("start_time ASC").
		PlaceholderFormat(sq.Dollar)

	return e.queryEvents(ctx, userID, "eventRepository.FindByRange", builder)
}

// FindByCalendarID implements [EventRepository].
func (e *eventRepository) FindByCalendarID(ctx context.Context, userID int64, calendarID string) ([]models.CalendarEvent, error) {
	defer metrics.ObserveDB("events.find_by_calendar")()

	builder := sq.Select(eventSelectColumns...).
		From("events").
		Where(sq.Eq{"user_id": userID, "calendar_id": calendarID}).
		OrderBy("start_time ASC").
		PlaceholderFormat(sq.Dollar)

	return e.queryEvents(ctx, userID, "eventRepository.FindByCalendarID", builder)
}

// queryEvents runs a select builder and scans the result rows.
func (e *eventRepository) queryEvents(ctx context.Context, userID int64, caller string, builder sq.SelectBuilder) ([]models.CalendarEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Int64("user_id", userID).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Int64("user_id", userID).
			Msg("failed to execute event select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.CalendarEvent, 0, 50)

	for rows.Next() {
		var (
			item       models.CalendarEvent
			sourceType string
		)

		scanErr := rows.Scan(
			&item.ID,
			&item.CalendarID,
			&item.Title,
			&item.StartTime,
			&item.EndTime,
			&item.AllDay,
			&item.Location,
			&item.Description,
			&sourceType,
			&item.Source.Name,
			&item.Source.AccountEmail,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Int64("user_id", userID).
				Msg("failed to scan event row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.Source.Type = models.CalendarType(sourceType)
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// DeleteByCalendar implements [EventRepository].
func (e *eventRepository) DeleteByCalendar(ctx context.Context, userID int64, calendarID string) error {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("events.delete_by_calendar")()

	if _, err := e.DB.ExecContext(ctx, deleteEventsByCalendarQuery, userID, calendarID); err != nil {
		log.Err(err).
			Str("func", "eventRepository.DeleteByCalendar").
			Int64("user_id", userID).
			Str("calendar_id", calendarID).
			Msg("failed to delete cached events")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// EnsureCalendarRecord implements [EventRepository]. ON CONFLICT DO
// NOTHING keeps the insert idempotent and never overwrites an existing
// row.
func (e *eventRepository) EnsureCalendarRecord(ctx context.Context, userID int64, record CalendarRecord) error {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("calendars.ensure")()

	_, err := e.DB.ExecContext(ctx, ensureCalendarRecordQuery,
		record.ID,
		userID,
		record.Name,
		record.Type,
		record.ConfigBlob,
		record.IsActive,
	)
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.EnsureCalendarRecord").
			Int64("user_id", userID).
			Str("calendar_id", record.ID).
			Msg("failed to ensure calendar record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteCalendarRecord implements [EventRepository]. Cached events and
// sync state hang off the calendar row via foreign keys, but the explicit
// per-table deletes stay in the service layer so the cascade is visible.
func (e *eventRepository) DeleteCalendarRecord(ctx context.Context, userID int64, calendarID string) error {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("calendars.delete")()

	if _, err := e.DB.ExecContext(ctx, deleteCalendarRecordQuery, calendarID, userID); err != nil {
		log.Err(err).
			Str("func", "eventRepository.DeleteCalendarRecord").
			Int64("user_id", userID).
			Str("calendar_id", calendarID).
			Msg("failed to delete calendar record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetLastSyncTime implements [EventRepository]. A missing row means the
// calendar has never synced and is reported as nil, not as an error.
func (e *eventRepository) GetLastSyncTime(ctx context.Context, userID int64, calendarID string) (*time.Time, error) {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("sync_state.get")()

	var syncedAt time.Time
	err := e.DB.QueryRowContext(ctx, getLastSyncTimeQuery, calendarID, userID).Scan(&syncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.GetLastSyncTime").
			Int64("user_id", userID).
			Str("calendar_id", calendarID).
			Msg("failed to query sync state")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &syncedAt, nil
}

// UpdateLastSyncTime implements [EventRepository].
func (e *eventRepository) UpdateLastSyncTime(ctx context.Context, userID int64, calendarID string, syncedAt time.Time) error {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("sync_state.upsert")()

	if _, err := e.DB.ExecContext(ctx, upsertLastSyncTimeQuery, calendarID, userID, syncedAt); err != nil {
		log.Err(err).
			Str("func", "eventRepository.UpdateLastSyncTime").
			Int64("user_id", userID).
			Str("calendar_id", calendarID).
			Msg("failed to upsert sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteSyncState implements [EventRepository].
func (e *eventRepository) DeleteSyncState(ctx context.Context, userID int64, calendarID string) error {
	log := logger.FromContext(ctx)
	defer metrics.ObserveDB("sync_state.delete")()

	if _, err := e.DB.ExecContext(ctx, deleteSyncStateQuery, calendarID, userID); err != nil {
		log.Err(err).
			Str("func", "eventRepository.DeleteSyncState").
			Int64("user_id", userID).
			Str("calendar_id", calendarID).
			Msg("failed to delete sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
