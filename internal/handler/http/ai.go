package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"notewell/internal/logger"
	"notewell/internal/service"
	"notewell/internal/utils"
	"notewell/models"
)

func (h *Handler) summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.services.AIService.Enabled() {
		writeError(w, "AI features are not configured", http.StatusServiceUnavailable)
		return
	}

	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.summarize").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, "no text provided", http.StatusBadRequest)
		return
	}

	summary, err := h.services.AIService.Summarize(ctx, req.Text)
	if err != nil {
		h.writeAIError(w, r, "*Handler.summarize", err)
		return
	}

	utils.WriteJSON(w, models.SummarizeResponse{Summary: summary}, http.StatusOK)
}

func (h *Handler) expandContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.services.AIService.Enabled() {
		writeError(w, "AI features are not configured", http.StatusServiceUnavailable)
		return
	}

	var req models.ExpandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.expandContent").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, "no text provided", http.StatusBadRequest)
		return
	}

	expanded, err := h.services.AIService.ExpandContent(ctx, req.Text)
	if err != nil {
		h.writeAIError(w, r, "*Handler.expandContent", err)
		return
	}

	utils.WriteJSON(w, models.ExpandResponse{ExpandedContent: expanded}, http.StatusOK)
}

func (h *Handler) scrapeAndSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.services.AIService.Enabled() {
		writeError(w, "AI features are not configured", http.StatusServiceUnavailable)
		return
	}

	var req models.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.scrapeAndSummarize").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, "no url provided", http.StatusBadRequest)
		return
	}

	summary, err := h.services.AIService.ScrapeAndSummarize(ctx, req.URL)
	if err != nil {
		h.writeAIError(w, r, "*Handler.scrapeAndSummarize", err)
		return
	}

	utils.WriteJSON(w, models.SummarizeResponse{Summary: summary}, http.StatusOK)
}

func (h *Handler) chatWithNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.services.AIService.Enabled() {
		writeError(w, "AI features are not configured", http.StatusServiceUnavailable)
		return
	}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.chatWithNotes").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.chatWithNotes").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, "no query provided", http.StatusBadRequest)
		return
	}

	answer, err := h.services.AIService.ChatWithNotes(ctx, userID, req.Query)
	if err != nil {
		h.writeAIError(w, r, "*Handler.chatWithNotes", err)
		return
	}

	utils.WriteJSON(w, models.ChatResponse{Answer: answer}, http.StatusOK)
}

// writeAIError maps AI service failures onto HTTP statuses shared by all AI
// endpoints.
func (h *Handler) writeAIError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrAIUnavailable):
		log.Err(err).Str("func", funcName).Msg("ai service is not configured")
		writeError(w, "AI features are not configured", http.StatusServiceUnavailable)
	case errors.Is(err, service.ErrScrapeFailed):
		log.Err(err).Str("func", funcName).Msg("error scraping url")
		writeError(w, "error fetching the requested page", http.StatusBadGateway)
	case errors.Is(err, service.ErrUpstreamAI):
		log.Err(err).Str("func", funcName).Msg("upstream ai request failed")
		writeError(w, "upstream AI request failed", http.StatusBadGateway)
	default:
		log.Err(err).Str("func", funcName).Msg("unexpected ai error")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
