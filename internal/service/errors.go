package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAIUnavailable is returned by all AI operations when the upstream
	// generative service is not configured.
	ErrAIUnavailable = errors.New("ai service is not configured")

	// ErrUpstreamAI is returned when the upstream generative service rejects
	// a request or responds with an unusable payload.
	ErrUpstreamAI = errors.New("upstream ai request failed")

	// ErrScrapeFailed is returned when a web page cannot be fetched or no
	// readable text can be extracted from it.
	ErrScrapeFailed = errors.New("failed to scrape web page")
)
