package http

import (
	"context"
	"net/http"
	"time"

	"calhub/internal/logger"
	"calhub/internal/utils"
	"calhub/models"
)

func (h *Handler) eventsForToday(w http.ResponseWriter, r *http.Request) {
	h.serveEvents(w, r, "*Handler.eventsForToday", h.services.Query.EventsForToday)
}

func (h *Handler) eventsForWeek(w http.ResponseWriter, r *http.Request) {
	h.serveEvents(w, r, "*Handler.eventsForWeek", h.services.Query.EventsForWeek)
}

// eventsForRange serves an arbitrary window given as RFC 3339 "start"
// and "end" query parameters.
func (h *Handler) eventsForRange(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	window, err := parseRangeParams(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.eventsForRange").Msg("invalid range parameters")
		http.Error(w, "invalid range parameters, expected RFC 3339 `start` and `end`", http.StatusBadRequest)
		return
	}

	h.serveEvents(w, r, "*Handler.eventsForRange", func(ctx context.Context, userID int64) ([]models.CalendarEvent, error) {
		return h.services.Query.EventsForRange(ctx, userID, window)
	})
}

func (h *Handler) serveEvents(w http.ResponseWriter, r *http.Request, funcName string, query func(ctx context.Context, userID int64) ([]models.CalendarEvent, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", funcName).Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	events, err := query(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying events")
		http.Error(w, "error querying events", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.EventsResponse{Events: events, Length: len(events)}, http.StatusOK)
}

func parseRangeParams(r *http.Request) (models.TimeRange, error) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		return models.TimeRange{}, err
	}

	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		return models.TimeRange{}, err
	}

	return models.TimeRange{Start: start, End: end}, nil
}
