package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// DeviceHandler handles HTTP requests for device registration and tokens.
type DeviceHandler struct {
	service *service.DeviceService
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(svc *service.DeviceService) *DeviceHandler {
	return &DeviceHandler{service: svc}
}

// HandleRegister handles POST /api/v1/devices requests.
func (h *DeviceHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Register(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeCredentials(w, http.StatusCreated, resp)
}

// HandleToken handles POST /api/v1/devices/token requests.
func (h *DeviceHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req model.DeviceTokenRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.Token(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeInternalError(w, r, err)
		return
	}
	writeCredentials(w, http.StatusOK, resp)
}
