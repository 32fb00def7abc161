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

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.List(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, posts, http.StatusOK); err != nil {
		log.Err(err).Msg("writing posts response failed")
	}
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	title := chi.URLParam(r, "title")

	post, err := h.services.PostService.Get(ctx, title)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, post, http.StatusOK); err != nil {
		log.Err(err).Msg("writing post response failed")
	}
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		h.writeError(w, r, apperr.New(apperr.KindServerFault, "claims missing from request context"))
		return
	}

	var write models.PostWrite
	if err := json.NewDecoder(r.Body).Decode(&write); err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.KindMalformed, "Invalid JSON was passed.", err))
		return
	}

	post, err := h.services.PostService.Create(ctx, write, claims)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("title", post.Title).Msg("post created")

	if _, err := utils.WriteJSON(w, post, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing post response failed")
	}
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	title := chi.URLParam(r, "title")

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		h.writeError(w, r, apperr.New(apperr.KindServerFault, "claims missing from request context"))
		return
	}

	var write models.PostWrite
	if err := json.NewDecoder(r.Body).Decode(&write); err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.KindMalformed, "Invalid JSON was passed.", err))
		return
	}

	post, err := h.services.PostService.Update(ctx, title, write, claims)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("title", post.Title).Msg("post updated")

	if _, err := utils.WriteJSON(w, post, http.StatusOK); err != nil {
		log.Err(err).Msg("writing post response failed")
	}
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	title := chi.URLParam(r, "title")

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		h.writeError(w, r, apperr.New(apperr.KindServerFault, "claims missing from request context"))
		return
	}

	post, err := h.services.PostService.Delete(ctx, title, claims)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("title", post.Title).Msg("post deleted")

	if _, err := utils.WriteJSON(w, post, http.StatusOK); err != nil {
		log.Err(err).Msg("writing post response failed")
	}
}
