package types

// ValidateTranslationID checks that a translation id was supplied.
func ValidateTranslationID(id string) error {
	if id == "" {
		return &ValidationError{Field: "translationId"}
	}
	return nil
}

// ValidateBookID checks that a book id was supplied.
func ValidateBookID(id string) error {
	if id == "" {
		return &ValidationError{Field: "bookId"}
	}
	return nil
}

// ValidateChapter checks that a chapter number was supplied. Zero is
// treated as missing; negative values pass and surface as an upstream 404.
func ValidateChapter(chapter int) error {
	if chapter == 0 {
		return &ValidationError{Field: "chapter"}
	}
	return nil
}
