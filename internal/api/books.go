package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/awesomebible/helloao-go/internal/types"
)

// bookPayload mirrors the books endpoint's wire shape. The book identifier
// arrives under "book_id" on current responses and under "id" on older
// ones; both keys are read and reconciled.
type bookPayload struct {
	BookID    string `json:"book_id"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Testament string `json:"testament"`
	Chapters  int    `json:"chapters"`
}

// ListBooks retrieves the books of one translation, in upstream order.
func ListBooks(ctx context.Context, httpClient HTTPClient, baseURL string, logger zerolog.Logger, translationID string) ([]types.Book, error) {
	if err := types.ValidateTranslationID(translationID); err != nil {
		return nil, err
	}
	requestsTotal.WithLabelValues(opListBooks).Inc()

	msg := fmt.Sprintf("Failed to load books for translation %s.", translationID)
	url := fmt.Sprintf("%s/%s/books.json", baseURL, translationID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, loadFailure(logger, opListBooks, msg, err, "translation_id", translationID)
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, loadFailure(logger, opListBooks, msg, err, "translation_id", translationID)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, loadFailure(logger, opListBooks, msg,
			fmt.Errorf("list books: status %d", resp.StatusCode), "translation_id", translationID)
	}

	var payload []bookPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, loadFailure(logger, opListBooks, msg, err, "translation_id", translationID)
	}

	books := make([]types.Book, 0, len(payload))
	for _, b := range payload {
		books = append(books, types.Book{
			ID:        firstNonEmpty(b.BookID, b.ID),
			Name:      b.Name,
			Testament: b.Testament,
			Chapters:  b.Chapters,
		})
	}
	return books, nil
}
