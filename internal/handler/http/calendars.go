package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"calhub/internal/logger"
	"calhub/internal/utils"
	"calhub/models"
)

func (h *Handler) listCalendars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listCalendars").Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	calendars, err := h.services.Calendars.List(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCalendars").Msg("error listing calendars")
		http.Error(w, "error listing calendars", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CalendarsResponse{Calendars: calendars, Length: len(calendars)}, http.StatusOK)
}

func (h *Handler) getCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getCalendar").Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	calendarID := chi.URLParam(r, "calendarID")

	cfg, err := h.services.Calendars.Get(ctx, userID, calendarID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCalendar").Str("calendar_id", calendarID).Msg("error getting calendar")
		http.Error(w, "error getting calendar", statusFromError(err))
		return
	}

	utils.WriteJSON(w, cfg, http.StatusOK)
}

func (h *Handler) addCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.addCalendar").Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	var cfg models.CalendarConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Err(err).Str("func", "*Handler.addCalendar").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.Calendars.Add(ctx, userID, cfg)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addCalendar").Msg("error adding calendar")
		http.Error(w, "error adding calendar", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) toggleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.toggleCalendar").Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	calendarID := chi.URLParam(r, "calendarID")

	var toggle models.ToggleCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&toggle); err != nil {
		log.Err(err).Str("func", "*Handler.toggleCalendar").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.Calendars.SetEnabled(ctx, userID, calendarID, toggle.Enabled)
	if err != nil {
		log.Err(err).Str("func", "*Handler.toggleCalendar").Str("calendar_id", calendarID).Msg("error toggling calendar")
		http.Error(w, "error toggling calendar", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteCalendar").Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	calendarID := chi.URLParam(r, "calendarID")

	if err := h.services.Calendars.Delete(ctx, userID, calendarID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCalendar").Str("calendar_id", calendarID).Msg("error deleting calendar")
		http.Error(w, "error deleting calendar", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
