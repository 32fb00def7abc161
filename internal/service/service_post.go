package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DvEyZ/rkblog-be/internal/apperr"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/store"
	"github.com/DvEyZ/rkblog-be/internal/utils"
	"github.com/DvEyZ/rkblog-be/models"
)

// postService is the concrete implementation of PostService. Every read
// model resolves the stored author reference back to an account; a dangling
// reference is a data-integrity fault surfaced as not found, never masked.
type postService struct {
	postRepository    store.PostRepository
	accountRepository store.AccountRepository
	uuidGenerator     *utils.UUIDGenerator
	logger            *logger.Logger
}

// NewPostService constructs a PostService wired to the given repositories.
func NewPostService(postRepository store.PostRepository, accountRepository store.AccountRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository:    postRepository,
		accountRepository: accountRepository,
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// List returns the brief representation of every post with authors resolved
// to display names.
func (s *postService) List(ctx context.Context) ([]models.PostBrief, error) {
	posts, err := s.postRepository.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("post listing failed")
		return nil, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	briefs := make([]models.PostBrief, 0, len(posts))
	for _, post := range posts {
		author, err := s.resolveAuthorByID(ctx, post.AuthorID)
		if err != nil {
			return nil, err
		}
		briefs = append(briefs, post.Brief(author))
	}

	return briefs, nil
}

// Get returns the full read model of the post with the given title.
func (s *postService) Get(ctx context.Context, title string) (models.PostRead, error) {
	post, err := s.findByTitle(ctx, title)
	if err != nil {
		return models.PostRead{}, err
	}

	author, err := s.resolveAuthorByID(ctx, post.AuthorID)
	if err != nil {
		return models.PostRead{}, err
	}

	return post.Read(author), nil
}

// Create persists a new post owned by the caller. The title pre-check is
// advisory; the store's unique constraint is authoritative under concurrent
// creates.
func (s *postService) Create(ctx context.Context, write models.PostWrite, caller models.AccessClaims) (models.PostRead, error) {
	log := logger.FromContext(ctx)

	if write.Title == "" {
		return models.PostRead{}, apperr.New(apperr.KindMalformed, "Title is required.")
	}

	if _, err := s.postRepository.FindByTitle(ctx, write.Title); err == nil {
		return models.PostRead{}, apperr.New(apperr.KindConflict, fmt.Sprintf("Post %s already exists.", write.Title))
	} else if !errors.Is(err, store.ErrPostNotFound) {
		log.Err(err).Str("title", write.Title).Msg("post pre-check failed")
		return models.PostRead{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	author, err := s.resolveAuthorByName(ctx, caller.Name)
	if err != nil {
		return models.PostRead{}, err
	}

	post := models.Post{
		ID:       s.uuidGenerator.Generate(),
		Title:    write.Title,
		Content:  write.Content,
		AuthorID: author.ID,
	}

	created, err := s.postRepository.Create(ctx, post)
	if err != nil {
		if errors.Is(err, store.ErrPostTitleTaken) {
			return models.PostRead{}, apperr.Wrap(apperr.KindConflict, fmt.Sprintf("Post %s already exists.", write.Title), err)
		}
		log.Err(err).Str("title", write.Title).Msg("post creation failed")
		return models.PostRead{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	return created.Read(author), nil
}

// Update replaces the post identified by title. The caller must own the post
// or be an administrator; the replacement is recorded as authored by the
// caller.
func (s *postService) Update(ctx context.Context, title string, write models.PostWrite, caller models.AccessClaims) (models.PostRead, error) {
	log := logger.FromContext(ctx)

	origin, err := s.findByTitle(ctx, title)
	if err != nil {
		return models.PostRead{}, err
	}

	owner, err := s.resolveAuthorByID(ctx, origin.AuthorID)
	if err != nil {
		return models.PostRead{}, err
	}

	if !CanMutate(owner.Name, caller) {
		return models.PostRead{}, apperr.New(apperr.KindForbidden, "You don't have permission to modify this resource.")
	}

	if write.Title == "" {
		return models.PostRead{}, apperr.New(apperr.KindMalformed, "Title is required.")
	}

	author, err := s.resolveAuthorByName(ctx, caller.Name)
	if err != nil {
		return models.PostRead{}, err
	}

	replacement := models.Post{
		ID:       origin.ID,
		Title:    write.Title,
		Content:  write.Content,
		AuthorID: author.ID,
	}

	replaced, err := s.postRepository.Replace(ctx, replacement)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPostNotFound):
			return models.PostRead{}, apperr.Wrap(apperr.KindNotFound, fmt.Sprintf("Post %s not found.", title), err)
		case errors.Is(err, store.ErrPostTitleTaken):
			return models.PostRead{}, apperr.Wrap(apperr.KindConflict, fmt.Sprintf("Post %s already exists.", write.Title), err)
		default:
			log.Err(err).Str("title", title).Msg("post replacement failed")
			return models.PostRead{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
		}
	}

	return replaced.Read(author), nil
}

// Delete removes the post identified by title. The caller must own the post
// or be an administrator. The deleted post's read model is returned.
func (s *postService) Delete(ctx context.Context, title string, caller models.AccessClaims) (models.PostRead, error) {
	log := logger.FromContext(ctx)

	post, err := s.findByTitle(ctx, title)
	if err != nil {
		return models.PostRead{}, err
	}

	owner, err := s.resolveAuthorByID(ctx, post.AuthorID)
	if err != nil {
		return models.PostRead{}, err
	}

	if !CanMutate(owner.Name, caller) {
		return models.PostRead{}, apperr.New(apperr.KindForbidden, "You don't have permission to delete this resource.")
	}

	if err := s.postRepository.Delete(ctx, post.ID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.PostRead{}, apperr.Wrap(apperr.KindNotFound, fmt.Sprintf("Post %s not found.", title), err)
		}
		log.Err(err).Str("title", title).Msg("post deletion failed")
		return models.PostRead{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	return post.Read(owner), nil
}

func (s *postService) findByTitle(ctx context.Context, title string) (models.Post, error) {
	post, err := s.postRepository.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.Post{}, apperr.Wrap(apperr.KindNotFound, fmt.Sprintf("Post %s not found.", title), err)
		}
		logger.FromContext(ctx).Err(err).Str("title", title).Msg("post lookup failed")
		return models.Post{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	return post, nil
}

// resolveAuthorByID resolves the stored owner reference of a post. An absent
// account is a data-integrity fault: it is reported as not found rather than
// substituted with a default.
func (s *postService) resolveAuthorByID(ctx context.Context, id string) (models.Account, error) {
	return s.resolveAuthor(ctx, func(ctx context.Context) (models.Account, error) {
		return s.accountRepository.FindByID(ctx, id)
	})
}

// resolveAuthorByName resolves the caller's claimed name to a live account.
func (s *postService) resolveAuthorByName(ctx context.Context, name string) (models.Account, error) {
	return s.resolveAuthor(ctx, func(ctx context.Context) (models.Account, error) {
		return s.accountRepository.FindByName(ctx, name)
	})
}

func (s *postService) resolveAuthor(ctx context.Context, find func(context.Context) (models.Account, error)) (models.Account, error) {
	account, err := find(ctx)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Account{}, apperr.Wrap(apperr.KindNotFound, "Account not found.", err)
		}
		logger.FromContext(ctx).Err(err).Msg("author resolution failed")
		return models.Account{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	return account, nil
}
