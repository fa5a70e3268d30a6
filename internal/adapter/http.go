package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"notewell/internal/config"
	"notewell/internal/logger"
	"notewell/internal/utils"
	"notewell/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

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

// SetToken implements [NoteGateway]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [NoteGateway]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [NoteGateway]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Email: user.Email}, nil
}

// Login implements [NoteGateway]. It POSTs the user credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Email: user.Email}, nil
}

// ListNotes implements [NoteGateway] via GET /api/notes, optionally filtered
// by tag.
func (h *httpServerAdapter) ListNotes(ctx context.Context, tag string) ([]models.Note, error) {
	req := h.authedRequest(ctx)
	if tag != "" {
		req.SetQueryParam("tag", tag)
	}

	resp, err := req.Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}
	return notes, nil
}

// SearchNotes implements [NoteGateway] via GET /api/notes/search.
func (h *httpServerAdapter) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("q", query).
		Get("/api/notes/search")
	if err != nil {
		return nil, fmt.Errorf("search notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode search notes response: %w", err)
	}
	return notes, nil
}

// ListTags implements [NoteGateway] via GET /api/notes/tags.
func (h *httpServerAdapter) ListTags(ctx context.Context) ([]string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes/tags")
	if err != nil {
		return nil, fmt.Errorf("list tags request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tags []string
	if err = json.Unmarshal(resp.Body(), &tags); err != nil {
		return nil, fmt.Errorf("decode list tags response: %w", err)
	}
	return tags, nil
}

// GetNote implements [NoteGateway] via GET /api/notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/notes/%d", noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode get note response: %w", err)
	}
	return note, nil
}

// CreateNote implements [NoteGateway] via POST /api/notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode create note response: %w", err)
	}
	return note, nil
}

// UpdateNote implements [NoteGateway] via PUT /api/notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID int64, draft models.NoteDraft) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Put(fmt.Sprintf("/api/notes/%d", noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode update note response: %w", err)
	}
	return note, nil
}

// DeleteNote implements [NoteGateway] via DELETE /api/notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/notes/%d", noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	return mapHTTPError(resp)
}

// Summarize implements [AIGateway] via POST /api/ai/summarize.
func (h *httpServerAdapter) Summarize(ctx context.Context, text string) (string, error) {
	var result models.SummarizeResponse
	if err := h.postAI(ctx, "/api/ai/summarize", models.SummarizeRequest{Text: text}, &result); err != nil {
		return "", err
	}
	return result.Summary, nil
}

// ExpandContent implements [AIGateway] via POST /api/ai/expand.
func (h *httpServerAdapter) ExpandContent(ctx context.Context, text string) (string, error) {
	var result models.ExpandResponse
	if err := h.postAI(ctx, "/api/ai/expand", models.ExpandRequest{Text: text}, &result); err != nil {
		return "", err
	}
	return result.ExpandedContent, nil
}

// ScrapeAndSummarize implements [AIGateway] via POST /api/ai/scrape-and-summarize.
func (h *httpServerAdapter) ScrapeAndSummarize(ctx context.Context, url string) (string, error) {
	var result models.SummarizeResponse
	if err := h.postAI(ctx, "/api/ai/scrape-and-summarize", models.ScrapeRequest{URL: url}, &result); err != nil {
		return "", err
	}
	return result.Summary, nil
}

// ChatWithNotes implements [AIGateway] via POST /api/ai/chat.
func (h *httpServerAdapter) ChatWithNotes(ctx context.Context, query string) (string, error) {
	var result models.ChatResponse
	if err := h.postAI(ctx, "/api/ai/chat", models.ChatRequest{Query: query}, &result); err != nil {
		return "", err
	}
	return result.Answer, nil
}

func (h *httpServerAdapter) postAI(ctx context.Context, path string, body any, result any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("ai request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode ai response %s: %w", path, err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
