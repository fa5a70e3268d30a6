package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notewell/internal/service"
	"notewell/models"
)

func TestSummarize_Success(t *testing.T) {
	ai := &mockAIService{
		enabled: true,
		summarizeFn: func(_ context.Context, content string) (string, error) {
			assert.Equal(t, "a very long article", content)
			return "short", nil
		},
	}

	h := newTestHandler(t, nil, nil, ai)
	req := httptest.NewRequest(http.MethodPost, "/api/ai/summarize", strings.NewReader(`{"text":"a very long article"}`))

	rec := serve(h.summarize, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SummarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "short", resp.Summary)
}

func TestSummarize_NotConfigured(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockAIService{enabled: false})
	req := httptest.NewRequest(http.MethodPost, "/api/ai/summarize", strings.NewReader(`{"text":"x"}`))

	rec := serve(h.summarize, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSummarize_EmptyText(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockAIService{enabled: true})
	req := httptest.NewRequest(http.MethodPost, "/api/ai/summarize", strings.NewReader(`{"text":"   "}`))

	rec := serve(h.summarize, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummarize_UpstreamFailure(t *testing.T) {
	ai := &mockAIService{
		enabled: true,
		summarizeFn: func(_ context.Context, _ string) (string, error) {
			return "", service.ErrUpstreamAI
		},
	}

	h := newTestHandler(t, nil, nil, ai)
	req := httptest.NewRequest(http.MethodPost, "/api/ai/summarize", strings.NewReader(`{"text":"x"}`))

	rec := serve(h.summarize, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestExpandContent_Success(t *testing.T) {
	ai := &mockAIService{
		enabled: true,
		expandFn: func(_ context.Context, content string) (string, error) {
			assert.Equal(t, "bullet points", content)
			return "full prose", nil
		},
	}

	h := newTestHandler(t, nil, nil, ai)
	req := httptest.NewRequest(http.MethodPost, "/api/ai/expand", strings.NewReader(`{"text":"bullet points"}`))

	rec := serve(h.expandContent, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ExpandResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "full prose", resp.ExpandedContent)
}

func TestExpandContent_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockAIService{enabled: true})
	req := httptest.NewRequest(http.MethodPost, "/api/ai/expand", strings.NewReader("{"))

	rec := serve(h.expandContent, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScrapeAndSummarize_Success(t *testing.T) {
	ai := &mockAIService{
		enabled: true,
		scrapeFn: func(_ context.Context, url string) (string, error) {
			assert.Equal(t, "https://example.com/article", url)
			return "article digest", nil
		},
	}

	h := newTestHandler(t, nil, nil, ai)
	req := httptest.NewRequest(http.MethodPost, "/api/ai/scrape-and-summarize",
		strings.NewReader(`{"url":"https://example.com/article"}`))

	rec := serve(h.scrapeAndSummarize, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SummarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "article digest", resp.Summary)
}

func TestScrapeAndSummarize_ScrapeFailure(t *testing.T) {
	ai := &mockAIService{
		enabled: true,
		scrapeFn: func(_ context.Context, _ string) (string, error) {
			return "", service.ErrScrapeFailed
		},
	}

	h := newTestHandler(t, nil, nil, ai)
	req := httptest.NewRequest(http.MethodPost, "/api/ai/scrape-and-summarize",
		strings.NewReader(`{"url":"https://example.com"}`))

	rec := serve(h.scrapeAndSummarize, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "error fetching the requested page", apiErr.Error)
}

func TestScrapeAndSummarize_EmptyURL(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockAIService{enabled: true})
	req := httptest.NewRequest(http.MethodPost, "/api/ai/scrape-and-summarize", strings.NewReader(`{"url":""}`))

	rec := serve(h.scrapeAndSummarize, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatWithNotes_Success(t *testing.T) {
	ai := &mockAIService{
		enabled: true,
		chatFn: func(_ context.Context, userID int64, message string) (string, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, "when is the meeting?", message)
			return "tuesday, according to your notes", nil
		},
	}

	h := newTestHandler(t, nil, nil, ai)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/ai/chat",
		strings.NewReader(`{"query":"when is the meeting?"}`)), testUserID)

	rec := serve(h.chatWithNotes, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tuesday, according to your notes", resp.Answer)
}

func TestChatWithNotes_NoUserInContext(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockAIService{enabled: true})
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(`{"query":"x"}`))

	rec := serve(h.chatWithNotes, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatWithNotes_EmptyQuery(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockAIService{enabled: true})
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(`{"query":""}`)), testUserID)

	rec := serve(h.chatWithNotes, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
