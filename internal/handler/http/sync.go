package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"calhub/internal/logger"
	"calhub/internal/utils"
)

func (h *Handler) syncAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncAll").Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	result, err := h.services.Sync.SyncAll(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncAll").Msg("error syncing calendars")
		http.Error(w, "error syncing calendars", statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) syncCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncCalendar").Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	calendarID := chi.URLParam(r, "calendarID")

	result, err := h.services.Sync.SyncCalendar(ctx, userID, calendarID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncCalendar").Str("calendar_id", calendarID).Msg("error syncing calendar")
		http.Error(w, "error syncing calendar", statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
