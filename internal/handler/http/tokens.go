package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"calhub/internal/logger"
	"calhub/internal/utils"
	"calhub/models"
)

// connectGoogleAccount stores the token set obtained by an external
// OAuth handshake. The handshake itself (consent screen, code exchange)
// happens outside this service; only its result is handed over here.
func (h *Handler) connectGoogleAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.connectGoogleAccount").Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	var request models.GoogleTokensRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.connectGoogleAccount").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if request.AccountEmail == "" || request.RefreshToken == "" {
		log.Error().Str("func", "*Handler.connectGoogleAccount").Msg("account email and refresh token are required")
		http.Error(w, "account email and refresh token are required", http.StatusBadRequest)
		return
	}

	if err := h.services.Tokens.StoreGoogleTokens(ctx, userID, request.AccountEmail, request.OAuthTokens); err != nil {
		log.Err(err).Str("func", "*Handler.connectGoogleAccount").Msg("error storing google tokens")
		http.Error(w, "error storing google tokens", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) googleTokenStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.googleTokenStatus").Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	accountEmail := chi.URLParam(r, "accountEmail")

	connected, err := h.services.Tokens.HasGoogleTokens(ctx, userID, accountEmail)
	if err != nil {
		log.Err(err).Str("func", "*Handler.googleTokenStatus").Msg("error checking google tokens")
		http.Error(w, "error checking google tokens", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.GoogleTokenStatus{AccountEmail: accountEmail, Connected: connected}, http.StatusOK)
}

func (h *Handler) disconnectGoogleAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.disconnectGoogleAccount").Msg("no user ID was given")
		http.Error(w, ErrNoUserIDInContext.Error(), http.StatusUnauthorized)
		return
	}

	accountEmail := chi.URLParam(r, "accountEmail")

	if err := h.services.Tokens.DeleteGoogleTokens(ctx, userID, accountEmail); err != nil {
		log.Err(err).Str("func", "*Handler.disconnectGoogleAccount").Msg("error deleting google tokens")
		http.Error(w, "error deleting google tokens", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
