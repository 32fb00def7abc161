package store

import (
	"context"

	"github.com/DvEyZ/rkblog-be/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// AccountRepository is the credential store contract. Name uniqueness is
// enforced by the database at write time; callers may pre-check for nicer
// error messages but must not rely on the pre-check for correctness.
type AccountRepository interface {
	// FindByName returns the account with the given display name, or
	// ErrAccountNotFound.
	FindByName(ctx context.Context, name string) (models.Account, error)

	// FindByID returns the account with the given stable identifier, or
	// ErrAccountNotFound.
	FindByID(ctx context.Context, id string) (models.Account, error)

	// List returns all accounts.
	List(ctx context.Context) ([]models.Account, error)

	// Create persists a new account. Returns ErrAccountNameTaken when the
	// name unique constraint is violated.
	Create(ctx context.Context, account models.Account) (models.Account, error)

	// Replace overwrites the account identified by account.ID with the given
	// record. Returns ErrAccountNotFound if no such account exists and
	// ErrAccountNameTaken when the new name collides with another account.
	Replace(ctx context.Context, account models.Account) (models.Account, error)

	// Delete removes the account with the given identifier. Returns
	// ErrAccountNotFound if no such account exists.
	Delete(ctx context.Context, id string) error
}

// PostRepository is the resource store contract for posts.
type PostRepository interface {
	// FindByTitle returns the post with the given title, or ErrPostNotFound.
	FindByTitle(ctx context.Context, title string) (models.Post, error)

	// FindByID returns the post with the given identifier, or ErrPostNotFound.
	FindByID(ctx context.Context, id string) (models.Post, error)

	// List returns all posts.
	List(ctx context.Context) ([]models.Post, error)

	// Create persists a new post. Returns ErrPostTitleTaken when the title
	// unique constraint is violated.
	Create(ctx context.Context, post models.Post) (models.Post, error)

	// Replace overwrites the post identified by post.ID with the given
	// record. Returns ErrPostNotFound if no such post exists and
	// ErrPostTitleTaken when the new title collides with another post.
	Replace(ctx context.Context, post models.Post) (models.Post, error)

	// Delete removes the post with the given identifier. Returns
	// ErrPostNotFound if no such post exists.
	Delete(ctx context.Context, id string) error

	// DeleteByAuthor removes every post owned by the given account. Deleting
	// zero posts is not an error.
	DeleteByAuthor(ctx context.Context, authorID string) error
}
