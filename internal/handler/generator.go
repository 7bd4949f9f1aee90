package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// GeneratorHandler handles HTTP requests for credential generation and checking.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandlePassword handles POST /api/v1/generate/password requests.
func (h *GeneratorHandler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.Password(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCredentials(w, http.StatusOK, resp)
}

// HandlePassphrase handles POST /api/v1/generate/passphrase requests.
func (h *GeneratorHandler) HandlePassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphraseRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.Passphrase(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCredentials(w, http.StatusOK, resp)
}

// HandlePin handles POST /api/v1/generate/pin requests.
func (h *GeneratorHandler) HandlePin(w http.ResponseWriter, r *http.Request) {
	var req model.PinRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.Pin(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCredentials(w, http.StatusOK, resp)
}

// HandleCheck handles POST /api/v1/check requests. The submitted password is
// not part of the response.
func (h *GeneratorHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req model.CheckRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.Check(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCredentials(w, http.StatusOK, resp)
}

// HandleProfiles handles GET /api/v1/profiles requests.
func (h *GeneratorHandler) HandleProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Profiles())
}

func (h *GeneratorHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrInvalidRequest) || errors.Is(err, service.ErrUnknownProfile) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	writeInternalError(w, r, err)
}
