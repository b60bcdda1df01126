package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/awesomebible/helloao-go/internal/types"
)

// chapterPayload mirrors the chapter endpoint's wire shape. The chapter
// number arrives under "chapter" or "chapter_number" and may be a JSON
// number or a string; verse labels have the same ambiguity.
type chapterPayload struct {
	TranslationID string               `json:"translation_id"`
	BookID        string               `json:"book_id"`
	Chapter       types.StringOrNumber `json:"chapter"`
	ChapterNumber types.StringOrNumber `json:"chapter_number"`
	Verses        []versePayload       `json:"verses"`
}

type versePayload struct {
	Verse   types.StringOrNumber `json:"verse"`
	Text    string               `json:"text"`
	Heading string               `json:"heading"`
}

// GetChapter retrieves one chapter of one book. The result never carries a
// book name; that field is left for the caller to attach from a prior
// ListBooks lookup. Missing fields fall back to the caller's inputs, and
// the verse list is always present, empty when upstream omits it.
func GetChapter(ctx context.Context, httpClient HTTPClient, baseURL string, logger zerolog.Logger, translationID, bookID string, chapter int) (*types.ChapterContent, error) {
	if err := types.ValidateTranslationID(translationID); err != nil {
		return nil, err
	}
	if err := types.ValidateBookID(bookID); err != nil {
		return nil, err
	}
	if err := types.ValidateChapter(chapter); err != nil {
		return nil, err
	}
	requestsTotal.WithLabelValues(opGetChapter).Inc()

	msg := fmt.Sprintf("Failed to load chapter %d of %s.", chapter, bookID)
	chapterStr := strconv.Itoa(chapter)
	url := fmt.Sprintf("%s/%s/%s/%s.json", baseURL, translationID, bookID, chapterStr)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, loadFailure(logger, opGetChapter, msg, err, "book_id", bookID, "chapter", chapterStr)
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, loadFailure(logger, opGetChapter, msg, err, "book_id", bookID, "chapter", chapterStr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, loadFailure(logger, opGetChapter, msg,
			fmt.Errorf("get chapter: status %d", resp.StatusCode), "book_id", bookID, "chapter", chapterStr)
	}

	var payload chapterPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, loadFailure(logger, opGetChapter, msg, err, "book_id", bookID, "chapter", chapterStr)
	}

	out := &types.ChapterContent{
		TranslationID: firstNonEmpty(payload.TranslationID, translationID),
		BookID:        firstNonEmpty(payload.BookID, bookID),
		ChapterNumber: firstNonEmpty(payload.Chapter.String(), payload.ChapterNumber.String(), chapterStr),
		Verses:        make([]types.Verse, 0, len(payload.Verses)),
	}
	for _, v := range payload.Verses {
		out.Verses = append(out.Verses, types.Verse{
			Verse:   v.Verse.String(),
			Text:    v.Text,
			Heading: v.Heading,
		})
	}
	return out, nil
}
