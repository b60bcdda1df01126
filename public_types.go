package helloao

import "github.com/awesomebible/helloao-go/internal/types"

// Public type aliases so SDK consumers can import only the helloao package.
type (
	Translation    = types.Translation
	Book           = types.Book
	Verse          = types.Verse
	ChapterContent = types.ChapterContent
)

// Errors re-exported in errors.go
