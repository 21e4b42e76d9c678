package catalog

import (
	"strconv"
	"strings"
	"time"
)

// ImageSize selects which cover size to prefer when normalizing a volume.
type ImageSize string

const (
	SizeThumbnail ImageSize = "thumbnail"
	SizeSmall     ImageSize = "small"
	SizeMedium    ImageSize = "medium"
	SizeLarge     ImageSize = "large"
)

// Fallback priority per preferred size. The first present URL wins.
var sizePriorities = map[ImageSize][]ImageSize{
	SizeThumbnail: {SizeThumbnail, "smallThumbnail", SizeSmall, SizeMedium},
	SizeSmall:     {SizeSmall, SizeThumbnail, SizeMedium, "smallThumbnail"},
	SizeMedium:    {SizeMedium, SizeSmall, SizeLarge, SizeThumbnail},
	SizeLarge:     {SizeLarge, "extraLarge", SizeMedium, SizeSmall},
}

func (l *ImageLinks) bySize(size ImageSize) string {
	switch size {
	case "smallThumbnail":
		return l.SmallThumbnail
	case SizeThumbnail:
		return l.Thumbnail
	case SizeSmall:
		return l.Small
	case SizeMedium:
		return l.Medium
	case SizeLarge:
		return l.Large
	case "extraLarge":
		return l.ExtraLarge
	}
	return ""
}

// SelectImageURL picks the best cover URL for the preferred size, walking
// that size's fallback chain. Any plain-HTTP URL is upgraded to HTTPS.
// Returns "" when no URL is present.
func SelectImageURL(links *ImageLinks, preferred ImageSize) string {
	if links == nil {
		return ""
	}

	priorities, ok := sizePriorities[preferred]
	if !ok {
		priorities = sizePriorities[SizeMedium]
	}

	for _, size := range priorities {
		if url := links.bySize(size); url != "" {
			return strings.Replace(url, "http://", "https://", 1)
		}
	}
	return ""
}

// ExtractISBNs scans industry identifiers for ISBN-10 and ISBN-13 values.
// The first match of each type wins.
func ExtractISBNs(identifiers []IndustryIdentifier) (isbn10, isbn13 string) {
	for _, id := range identifiers {
		switch id.Type {
		case "ISBN_10":
			if isbn10 == "" {
				isbn10 = id.Identifier
			}
		case "ISBN_13":
			if isbn13 == "" {
				isbn13 = id.Identifier
			}
		}
	}
	return isbn10, isbn13
}

// PrimaryISBN returns the ISBN-13 when present, else the ISBN-10,
// else "".
func PrimaryISBN(identifiers []IndustryIdentifier) string {
	isbn10, isbn13 := ExtractISBNs(identifiers)
	if isbn13 != "" {
		return isbn13
	}
	return isbn10
}

// ExtractYear parses the leading 4 characters of a published date as a
// year. Returns 0 when the date is absent or not parseable.
func ExtractYear(publishedDate string) int {
	if len(publishedDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(publishedDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// Normalize maps one search response volume into a form-ready candidate.
// Missing data degrades to defaults; Normalize never fails.
func Normalize(v Volume) Candidate {
	info := v.VolumeInfo
	isbn10, isbn13 := ExtractISBNs(info.IndustryIdentifiers)

	authors := info.Authors
	if authors == nil {
		authors = []string{}
	}
	author := strings.Join(authors, ", ")
	if author == "" {
		author = "Unknown Author"
	}

	categories := info.Categories
	if categories == nil {
		categories = []string{}
	}

	return Candidate{
		ID:            v.ID,
		Title:         info.Title,
		Authors:       authors,
		Author:        author,
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		PublishedYear: ExtractYear(info.PublishedDate),
		Description:   info.Description,
		PageCount:     info.PageCount,
		TotalPages:    info.PageCount,
		Categories:    categories,
		Genre:         strings.Join(categories, ", "),
		CoverURL:      SelectImageURL(info.ImageLinks, SizeMedium),
		ISBN10:        isbn10,
		ISBN13:        isbn13,
		ISBN:          PrimaryISBN(info.IndustryIdentifiers),
		AverageRating: info.AverageRating,
		RatingsCount:  info.RatingsCount,
	}
}

// TruncateDescription shortens a description for display, appending an
// ellipsis marker. Absent descriptions get a fixed placeholder.
func TruncateDescription(description string, maxLength int) string {
	if description == "" {
		return "No description available"
	}

	runes := []rune(description)
	if len(runes) <= maxLength {
		return description
	}

	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}

// FormatPublicationDate renders a published date for display: a long date
// for full calendar dates, the bare year otherwise, "Unknown" when the
// year cannot be determined.
func FormatPublicationDate(publishedDate string) string {
	year := ExtractYear(publishedDate)
	if year == 0 {
		return "Unknown"
	}

	t, err := time.Parse("2006-01-02", publishedDate)
	if err != nil {
		return strconv.Itoa(year)
	}

	return t.Format("January 2, 2006")
}
