// Package adapter provides transport-layer abstractions for communicating
// with the blog server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/DvEyZ/rkblog-be/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the blog
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges the supplied credentials for a bearer token. On
	// success the token is stored via SetToken and returned.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	ListAccounts(ctx context.Context) ([]models.AccountBrief, error)
	GetAccount(ctx context.Context, name string) (models.AccountRead, error)
	CreateAccount(ctx context.Context, write models.AccountWrite) (models.AccountRead, error)
	UpdateAccount(ctx context.Context, name string, write models.AccountWrite) (models.AccountRead, error)
	DeleteAccount(ctx context.Context, name string) (models.AccountRead, error)

	ListPosts(ctx context.Context) ([]models.PostBrief, error)
	GetPost(ctx context.Context, title string) (models.PostRead, error)
	CreatePost(ctx context.Context, write models.PostWrite) (models.PostRead, error)
	UpdatePost(ctx context.Context, title string, write models.PostWrite) (models.PostRead, error)
	DeletePost(ctx context.Context, title string) (models.PostRead, error)
}
