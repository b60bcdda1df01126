package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Translation represents a published edition of the Bible text.
type Translation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
}

// Book represents a canonical book within a translation.
type Book struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Testament string `json:"testament,omitempty"`
	Chapters  int    `json:"chapters,omitempty"`
}

// Verse represents a single addressable unit of text. Verse labels are
// strings rather than integers because upstream may merge verses into a
// range label such as "2-4".
type Verse struct {
	Verse   string `json:"verse"`
	Text    string `json:"text"`
	Heading string `json:"heading,omitempty"`
}

// ChapterContent holds the verses of one chapter. BookName is never filled
// in by the chapter endpoint; callers attach it from a prior Book lookup.
type ChapterContent struct {
	TranslationID string  `json:"translation_id"`
	BookID        string  `json:"book_id"`
	BookName      string  `json:"book_name,omitempty"`
	ChapterNumber string  `json:"chapter_number"`
	Verses        []Verse `json:"verses"`
}
