package http

import (
	"net/http"

	"github.com/DvEyZ/rkblog-be/internal/apperr"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/utils"
	"github.com/DvEyZ/rkblog-be/models"
)

// statusFromError maps an error's apperr kind to the HTTP status tier.
// Errors without a kind are infrastructure faults and map to 500.
func statusFromError(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindMalformed:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as the uniform JSON error body. The full error
// chain is logged; only the client-safe message leaves the process, and
// server faults are reduced to a generic message so that internal details
// never leak.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	log.Err(err).Int("status", status).Msg("request failed")

	message := apperr.MessageOf(err)
	if status == http.StatusInternalServerError || message == "" {
		message = http.StatusText(status)
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
