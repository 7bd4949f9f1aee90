package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// PreferenceHandler handles HTTP requests for device preferences.
type PreferenceHandler struct {
	service *service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(svc *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: svc}
}

// HandleGetTheme handles GET /api/v1/preferences/theme requests.
func (h *PreferenceHandler) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.DeviceIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.Theme(r.Context(), deviceID)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandlePutTheme handles PUT /api/v1/preferences/theme requests.
func (h *PreferenceHandler) HandlePutTheme(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := middleware.DeviceIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ThemeRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.SetTheme(r.Context(), deviceID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
