package service

import (
	"context"
	"fmt"
	"time"

	"calhub/internal/logger"
	"calhub/internal/store"
	"calhub/models"
)

// queryService implements [QueryService] over the event cache. Day
// boundaries are pinned to the product timezone, not the server's.
type queryService struct {
	events store.EventRepository
	loc    *time.Location
	now    func() time.Time
	logger *logger.Logger
}

// NewQueryService constructs the cached-event query service.
func NewQueryService(events store.EventRepository, loc *time.Location, log *logger.Logger) QueryService {
	return &queryService{
		events: events,
		loc:    loc,
		now:    time.Now,
		logger: log,
	}
}

// EventsForToday implements [QueryService].
func (q *queryService) EventsForToday(ctx context.Context, userID int64) ([]models.CalendarEvent, error) {
	midnight := q.todayMidnight()
	return q.query(ctx, userID, models.TimeRange{
		Start: midnight,
		End:   midnight.AddDate(0, 0, 1),
	})
}

// EventsForWeek implements [QueryService]. The week is the next seven
// days starting today, not a calendar week.
func (q *queryService) EventsForWeek(ctx context.Context, userID int64) ([]models.CalendarEvent, error) {
	midnight := q.todayMidnight()
	return q.query(ctx, userID, models.TimeRange{
		Start: midnight,
		End:   midnight.AddDate(0, 0, 7),
	})
}

// EventsForRange implements [QueryService].
func (q *queryService) EventsForRange(ctx context.Context, userID int64, window models.TimeRange) ([]models.CalendarEvent, error) {
	if !window.IsValid() {
		return nil, ErrInvalidRange
	}
	return q.query(ctx, userID, window)
}

func (q *queryService) query(ctx context.Context, userID int64, window models.TimeRange) ([]models.CalendarEvent, error) {
	events, err := q.events.FindByRange(ctx, userID, window)
	if err != nil {
		return nil, fmt.Errorf("query event cache: %w", err)
	}
	return events, nil
}

func (q *queryService) todayMidnight() time.Time {
	local := q.now().In(q.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, q.loc)
}
