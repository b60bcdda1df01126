// Package live_test exercises the real public API. Opt in with
// HELLOAO_LIVE_TESTS=1; these tests are skipped otherwise so CI stays
// hermetic.
package live_test

import (
	"context"
	"os"
	"testing"
	"time"

	helloao "github.com/awesomebible/helloao-go"
)

func liveClient(t *testing.T) *helloao.Client {
	t.Helper()
	if os.Getenv("HELLOAO_LIVE_TESTS") != "1" {
		t.Skip("set HELLOAO_LIVE_TESTS=1 to run live API tests")
	}
	return helloao.New(helloao.WithHTTPTimeout(60 * time.Second))
}

func TestLive_ListTranslations(t *testing.T) {
	c := liveClient(t)
	translations, err := c.ListTranslations(context.Background())
	if err != nil {
		t.Fatalf("ListTranslations error: %v", err)
	}
	if len(translations) == 0 {
		t.Fatal("expected at least one translation")
	}
	for _, tr := range translations {
		if tr.ID == "" {
			t.Fatalf("translation with empty id: %+v", tr)
		}
	}
}

func TestLive_BooksAndChapter(t *testing.T) {
	c := liveClient(t)
	ctx := context.Background()

	books, err := c.ListBooks(ctx, "BSB")
	if err != nil {
		t.Fatalf("ListBooks error: %v", err)
	}
	if len(books) == 0 {
		t.Fatal("expected at least one book")
	}
	for _, b := range books {
		if b.ID == "" {
			t.Fatalf("book with empty id: %+v", b)
		}
	}

	chapter, err := c.GetChapter(ctx, "BSB", books[0].ID, 1)
	if err != nil {
		t.Fatalf("GetChapter error: %v", err)
	}
	if chapter.ChapterNumber == "" {
		t.Fatal("expected chapter number")
	}
	if chapter.Verses == nil {
		t.Fatal("verses must never be nil")
	}
	if chapter.BookName != "" {
		t.Fatalf("chapter endpoint must not set book name, got %q", chapter.BookName)
	}
}
