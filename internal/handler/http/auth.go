package http

import (
	"encoding/json"
	"net/http"

	"github.com/DvEyZ/rkblog-be/internal/apperr"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/utils"
	"github.com/DvEyZ/rkblog-be/models"
)

func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.KindMalformed, "Invalid JSON was passed.", err))
		return
	}

	token, err := h.services.AuthService.Token(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("name", credentials.Name).Msg("token issued")

	if _, err := utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing token response failed")
	}
}
