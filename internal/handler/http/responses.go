package http

import (
	"net/http"

	"notewell/internal/utils"
	"notewell/models"
)

// writeError renders the uniform JSON error body used by the notes and AI
// endpoints.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.APIError{Error: message}, statusCode)
}
