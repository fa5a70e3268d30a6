package models

// SummarizeRequest asks the AI service for a concise summary of Text.
type SummarizeRequest struct {
	Text string `json:"text"`
}

// SummarizeResponse carries the generated summary back to the caller.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// ExpandRequest asks the AI service to expand an idea or bullet list into
// coherent prose.
type ExpandRequest struct {
	Text string `json:"text"`
}

// ExpandResponse carries the expanded content back to the caller.
type ExpandResponse struct {
	ExpandedContent string `json:"expanded_content"`
}

// ScrapeRequest asks the AI service to fetch the article at URL, extract its
// readable text, and summarize it.
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ChatRequest asks a question that should be answered from the user's own
// notes only.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse carries the grounded answer back to the caller.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// APIError is the uniform error body returned by the server for all
// non-2xx responses.
type APIError struct {
	Error string `json:"error"`
}
