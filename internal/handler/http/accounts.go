package http

import (
	"encoding/json"
	"net/http"

	"github.com/DvEyZ/rkblog-be/internal/apperr"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/utils"
	"github.com/DvEyZ/rkblog-be/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accounts, err := h.services.AccountService.List(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, accounts, http.StatusOK); err != nil {
		log.Err(err).Msg("writing accounts response failed")
	}
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	account, err := h.services.AccountService.Get(ctx, name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Msg("writing account response failed")
	}
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var write models.AccountWrite
	if err := json.NewDecoder(r.Body).Decode(&write); err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.KindMalformed, "Invalid JSON was passed.", err))
		return
	}

	account, err := h.services.AccountService.Create(ctx, write)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("name", account.Name).Msg("account created")

	if _, err := utils.WriteJSON(w, account, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing account response failed")
	}
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		h.writeError(w, r, apperr.New(apperr.KindServerFault, "claims missing from request context"))
		return
	}

	var write models.AccountWrite
	if err := json.NewDecoder(r.Body).Decode(&write); err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.KindMalformed, "Invalid JSON was passed.", err))
		return
	}

	account, err := h.services.AccountService.Update(ctx, name, write, claims)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("name", account.Name).Msg("account updated")

	if _, err := utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Msg("writing account response failed")
	}
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	account, err := h.services.AccountService.Delete(ctx, name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("name", account.Name).Msg("account deleted")

	if _, err := utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Msg("writing account response failed")
	}
}
