package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"notewell/internal/config"
	"notewell/internal/logger"
	"notewell/internal/store"
	"notewell/internal/utils"
	"notewell/models"
)

// chatContextNoteLimit caps how many notes are folded into the prompt when
// chatting, keeping the upstream request within reasonable token bounds.
const chatContextNoteLimit = 5

// generateContentRequest is the request body of the upstream
// models/{model}:generateContent endpoint.
type generateContentRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

// generateContentResponse is the (partial) response body of the upstream
// generateContent endpoint. Only the first candidate is consumed.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// aiService proxies text-generation requests to a Gemini-style upstream API
// and enriches chat requests with the user's own notes.
type aiService struct {
	httpClient     *utils.HTTPClient
	noteRepository store.NoteRepository
	cfg            config.AI
	logger         *logger.Logger
}

// NewAIService constructs an AIService. When cfg.BaseURL is empty the service
// is disabled and every operation returns ErrAIUnavailable.
func NewAIService(httpClient *utils.HTTPClient, noteRepository store.NoteRepository, cfg config.AI, logger *logger.Logger) AIService {
	if cfg.RequestTimeout > 0 {
		httpClient.SetTimeout(cfg.RequestTimeout)
	}

	return &aiService{
		httpClient:     httpClient,
		noteRepository: noteRepository,
		cfg:            cfg,
		logger:         logger,
	}
}

func (s *aiService) Enabled() bool {
	return s.cfg.BaseURL != ""
}

func (s *aiService) Summarize(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrInvalidDataProvided
	}

	prompt := "Summarize the following note in a few concise sentences:\n\n" + content
	return s.generate(ctx, prompt)
}

func (s *aiService) ExpandContent(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrInvalidDataProvided
	}

	prompt := "Expand the following rough note into well-structured, detailed prose. " +
		"Keep the author's intent and tone:\n\n" + content
	return s.generate(ctx, prompt)
}

func (s *aiService) ScrapeAndSummarize(ctx context.Context, url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", ErrInvalidDataProvided
	}
	if !s.Enabled() {
		return "", ErrAIUnavailable
	}

	text, err := s.scrape(ctx, url)
	if err != nil {
		return "", err
	}

	prompt := "Summarize the key points of the following web page text:\n\n" + text
	return s.generate(ctx, prompt)
}

// ChatWithNotes answers a free-form question using the user's notes as
// context. Relevant notes are retrieved by keyword search over the message
// words; when nothing matches, the model is asked to answer unaided.
func (s *aiService) ChatWithNotes(ctx context.Context, userID int64, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrInvalidDataProvided
	}
	if !s.Enabled() {
		return "", ErrAIUnavailable
	}

	notes := s.relevantNotes(ctx, userID, message)

	var prompt strings.Builder
	prompt.WriteString("You are an assistant answering questions about the user's personal notes.\n")
	if len(notes) == 0 {
		prompt.WriteString("No matching notes were found; say so if the question depends on them.\n")
	} else {
		prompt.WriteString("Relevant notes:\n")
		for _, note := range notes {
			prompt.WriteString("---\nTitle: ")
			prompt.WriteString(note.Title)
			prompt.WriteString("\n")
			prompt.WriteString(note.Content)
			prompt.WriteString("\n")
		}
		prompt.WriteString("---\n")
	}
	prompt.WriteString("\nQuestion: ")
	prompt.WriteString(message)

	return s.generate(ctx, prompt.String())
}

// relevantNotes retrieves up to chatContextNoteLimit distinct notes matching
// any meaningful word of the message. Retrieval failures degrade to an empty
// context rather than failing the chat.
func (s *aiService) relevantNotes(ctx context.Context, userID int64, message string) []models.Note {
	log := logger.FromContext(ctx)

	seen := make(map[int64]struct{})
	result := make([]models.Note, 0, chatContextNoteLimit)

	for _, word := range strings.Fields(message) {
		word = strings.Trim(word, ".,!?;:\"'")
		if len(word) < 4 {
			continue
		}

		notes, err := s.noteRepository.SearchNotes(ctx, userID, word)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Str("word", word).Msg("note context search failed")
			continue
		}

		for _, note := range notes {
			if _, ok := seen[note.ID]; ok {
				continue
			}
			seen[note.ID] = struct{}{}
			result = append(result, note)
			if len(result) == chatContextNoteLimit {
				return result
			}
		}
	}

	return result
}

// generate performs one upstream generateContent call and extracts the first
// candidate's text.
func (s *aiService) generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	if !s.Enabled() {
		return "", ErrAIUnavailable
	}

	reqBody := generateContentRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
	}

	var respBody generateContentResponse
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", s.cfg.APIKey).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.cfg.BaseURL, s.cfg.Model))
	if err != nil {
		log.Err(err).Str("func", "aiService.generate").Msg("upstream request failed")
		return "", fmt.Errorf("%w: %w", ErrUpstreamAI, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().
			Str("func", "aiService.generate").
			Int("status", resp.StatusCode()).
			Msg("upstream returned non-OK status")
		return "", fmt.Errorf("%w: status %d", ErrUpstreamAI, resp.StatusCode())
	}

	if len(respBody.Candidates) == 0 || len(respBody.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUpstreamAI)
	}

	return strings.TrimSpace(respBody.Candidates[0].Content.Parts[0].Text), nil
}
