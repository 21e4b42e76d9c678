// Package search classifies and validates user-typed search input.
//
// A search string is either an ISBN lookup (10 or 13 digits, hyphens and
// spaces ignored) or a free-text title lookup. Classification and
// validation are pure string functions with no store or network access.
package search

import (
	"errors"
	"strings"
	"unicode"
)

// Kind is the detected type of a search input.
type Kind string

const (
	KindISBN  Kind = "isbn"
	KindTitle Kind = "title"
)

const (
	minTitleLength = 2
	maxTitleLength = 100
)

var (
	ErrEmptyInput    = errors.New("Please enter an ISBN or book title")
	ErrInvalidISBN   = errors.New("Invalid ISBN format. Please enter a valid 10 or 13 digit ISBN")
	ErrTitleTooShort = errors.New("Book title must be at least 2 characters long")
	ErrTitleTooLong  = errors.New("Book title is too long (max 100 characters)")
)

// CleanISBN strips hyphens and whitespace from an ISBN candidate.
func CleanISBN(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Classify detects whether input is an ISBN or a title search.
func Classify(input string) Kind {
	cleaned := CleanISBN(input)
	if isDigits(cleaned) && (len(cleaned) == 10 || len(cleaned) == 13) {
		return KindISBN
	}
	return KindTitle
}

// Validate checks a raw search input and returns a descriptive error when
// it cannot be used for a lookup. All-digit input is held to the ISBN
// length rule; anything else is held to the title length rules.
func Validate(input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ErrEmptyInput
	}

	cleaned := CleanISBN(trimmed)
	if isDigits(cleaned) {
		if len(cleaned) != 10 && len(cleaned) != 13 {
			return ErrInvalidISBN
		}
		return nil
	}

	if len([]rune(trimmed)) < minTitleLength {
		return ErrTitleTooShort
	}
	if len([]rune(trimmed)) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
