package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"notewell/internal/logger"
)

// scrapeCharLimit bounds how much extracted page text is forwarded to the
// upstream model.
const scrapeCharLimit = 8000

// scrape fetches a web page and extracts its paragraph text.
func (s *aiService) scrape(ctx context.Context, url string) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		log.Err(err).Str("url", url).Msg("failed to fetch page")
		return "", fmt.Errorf("%w: %w", ErrScrapeFailed, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		log.Error().Str("url", url).Int("status", resp.StatusCode()).Msg("page returned non-OK status")
		return "", fmt.Errorf("%w: status %d", ErrScrapeFailed, resp.StatusCode())
	}

	text, err := extractParagraphText(body)
	if err != nil {
		log.Err(err).Str("url", url).Msg("failed to parse page html")
		return "", fmt.Errorf("%w: %w", ErrScrapeFailed, err)
	}
	if text == "" {
		return "", fmt.Errorf("%w: no readable text found", ErrScrapeFailed)
	}

	return truncateOnRuneBoundary(text, scrapeCharLimit), nil
}

// truncateOnRuneBoundary cuts text to at most limit bytes without splitting a
// multi-byte rune.
func truncateOnRuneBoundary(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}

// extractParagraphText walks the HTML tree and joins the text content of all
// <p> elements, skipping script and style subtrees.
func extractParagraphText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var paragraphs []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "p":
				var sb strings.Builder
				collectText(n, &sb)
				if text := strings.TrimSpace(sb.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(paragraphs, "\n\n"), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
