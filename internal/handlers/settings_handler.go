package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"cakeshop-api/internal/models"
	"cakeshop-api/internal/store"
)

type SettingsHandler struct {
	settings store.SettingsStore
	logger   zerolog.Logger
}

func NewSettingsHandler(settings store.SettingsStore, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		logger:   logger,
	}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Error fetching settings")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not fetch settings")
		return
	}

	respondWithJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var settings models.StoreSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	updated, err := h.settings.Replace(r.Context(), &settings)
	if err != nil {
		h.logger.Error().Err(err).Msg("Error updating settings")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not update settings")
		return
	}

	h.logger.Info().Float64("delivery_fee", updated.DeliveryFee).Msg("Settings updated")
	respondWithJSON(w, http.StatusOK, updated)
}
