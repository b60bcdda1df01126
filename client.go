// Package helloao is a read-only client SDK for the public Bible text API
// at bible.helloao.org. It exposes three operations — list translations,
// list books, get chapter — and normalizes the API's inconsistent response
// shapes into stable types.
package helloao

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/awesomebible/helloao-go/internal/api"
)

// DefaultBaseURL is the production API base. Override it with WithBaseURL
// for mirrors or tests.
const DefaultBaseURL = "https://bible.helloao.org/api"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client issues requests against the API. Operations are independent and
// stateless; a Client is safe for concurrent use. Each call performs a
// single attempt — there is no retry, caching or request deduplication.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New constructs a Client with the production base URL and a 30s HTTP
// timeout. Options can override either; an option error panics, matching
// construction-time misuse semantics.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// --------------------------------------------------------------------
// Operations - delegated to internal/api
// --------------------------------------------------------------------

// ListTranslations retrieves all available translations.
func (c *Client) ListTranslations(ctx context.Context) ([]Translation, error) {
	return api.ListTranslations(ctx, c.http, c.baseURL, c.log)
}

// ListBooks retrieves the books of a translation, in canonical order.
func (c *Client) ListBooks(ctx context.Context, translationID string) ([]Book, error) {
	return api.ListBooks(ctx, c.http, c.baseURL, c.log, translationID)
}

// GetChapter retrieves one chapter's verses. The result's BookName is left
// empty; attach it from a prior ListBooks result when rendering.
func (c *Client) GetChapter(ctx context.Context, translationID, bookID string, chapter int) (*ChapterContent, error) {
	return api.GetChapter(ctx, c.http, c.baseURL, c.log, translationID, bookID, chapter)
}
