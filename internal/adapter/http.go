package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/utils"
	"github.com/DvEyZ/rkblog-be/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from httpAddress
// and configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if httpAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(httpAddress string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(httpAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/token, stores the returned bearer token via SetToken and
// returns it.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var tokenResponse models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&tokenResponse).
		Post("/api/auth/token")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(tokenResponse.Token)
	return h.token, nil
}

func (h *httpServerAdapter) ListAccounts(ctx context.Context) ([]models.AccountBrief, error) {
	var accounts []models.AccountBrief

	resp, err := h.authedRequest(ctx).
		SetResult(&accounts).
		Get("/api/accounts")
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (h *httpServerAdapter) GetAccount(ctx context.Context, name string) (models.AccountRead, error) {
	var account models.AccountRead

	resp, err := h.authedRequest(ctx).
		SetResult(&account).
		Get("/api/accounts/" + url.PathEscape(name))
	if err != nil {
		return models.AccountRead{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountRead{}, err
	}

	return account, nil
}

func (h *httpServerAdapter) CreateAccount(ctx context.Context, write models.AccountWrite) (models.AccountRead, error) {
	var account models.AccountRead

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(write).
		SetResult(&account).
		Post("/api/accounts")
	if err != nil {
		return models.AccountRead{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountRead{}, err
	}

	return account, nil
}

func (h *httpServerAdapter) UpdateAccount(ctx context.Context, name string, write models.AccountWrite) (models.AccountRead, error) {
	var account models.AccountRead

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(write).
		SetResult(&account).
		Put("/api/accounts/" + url.PathEscape(name))
	if err != nil {
		return models.AccountRead{}, fmt.Errorf("update account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountRead{}, err
	}

	return account, nil
}

func (h *httpServerAdapter) DeleteAccount(ctx context.Context, name string) (models.AccountRead, error) {
	var account models.AccountRead

	resp, err := h.authedRequest(ctx).
		SetResult(&account).
		Delete("/api/accounts/" + url.PathEscape(name))
	if err != nil {
		return models.AccountRead{}, fmt.Errorf("delete account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountRead{}, err
	}

	return account, nil
}

func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.PostBrief, error) {
	var posts []models.PostBrief

	resp, err := h.authedRequest(ctx).
		SetResult(&posts).
		Get("/api/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpServerAdapter) GetPost(ctx context.Context, title string) (models.PostRead, error) {
	var post models.PostRead

	resp, err := h.authedRequest(ctx).
		SetResult(&post).
		Get("/api/posts/" + url.PathEscape(title))
	if err != nil {
		return models.PostRead{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostRead{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, write models.PostWrite) (models.PostRead, error) {
	var post models.PostRead

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(write).
		SetResult(&post).
		Post("/api/posts")
	if err != nil {
		return models.PostRead{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostRead{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) UpdatePost(ctx context.Context, title string, write models.PostWrite) (models.PostRead, error) {
	var post models.PostRead

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(write).
		SetResult(&post).
		Put("/api/posts/" + url.PathEscape(title))
	if err != nil {
		return models.PostRead{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostRead{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, title string) (models.PostRead, error) {
	var post models.PostRead

	resp, err := h.authedRequest(ctx).
		SetResult(&post).
		Delete("/api/posts/" + url.PathEscape(title))
	if err != nil {
		return models.PostRead{}, fmt.Errorf("delete post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostRead{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
