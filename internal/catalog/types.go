package catalog

// Google Books API response types (internal)

type searchResponse struct {
	Kind       string   `json:"kind"`
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

// Volume is a single entry of a Google Books search response.
type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo holds the descriptive part of a volume.
type VolumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	Publisher           string               `json:"publisher"`
	PublishedDate       string               `json:"publishedDate"`
	Description         string               `json:"description"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers"`
	PageCount           int                  `json:"pageCount"`
	Categories          []string             `json:"categories"`
	AverageRating       float64              `json:"averageRating"`
	RatingsCount        int                  `json:"ratingsCount"`
	ImageLinks          *ImageLinks          `json:"imageLinks"`
}

// IndustryIdentifier tags an identifier with its scheme,
// e.g. "ISBN_10", "ISBN_13", "ISSN", "OTHER".
type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// ImageLinks holds the cover image URLs a volume may carry, by size.
type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
	Small          string `json:"small,omitempty"`
	Medium         string `json:"medium,omitempty"`
	Large          string `json:"large,omitempty"`
	ExtraLarge     string `json:"extraLarge,omitempty"`
}

// Candidate is a normalized, form-ready book description derived from one
// volume. It is ephemeral: built per search response item and never stored.
type Candidate struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Author        string   `json:"author"` // joined authors for form compatibility
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
	PublishedYear int      `json:"published_year,omitempty"`
	Description   string   `json:"description,omitempty"`
	PageCount     int      `json:"pageCount,omitempty"`
	TotalPages    int      `json:"total_pages,omitempty"` // for form compatibility
	Categories    []string `json:"categories"`
	Genre         string   `json:"genre,omitempty"` // joined categories for form compatibility
	CoverURL      string   `json:"cover_url,omitempty"`
	ISBN10        string   `json:"isbn10,omitempty"`
	ISBN13        string   `json:"isbn13,omitempty"`
	ISBN          string   `json:"isbn,omitempty"` // primary ISBN, ISBN-13 preferred
	AverageRating float64  `json:"averageRating,omitempty"`
	RatingsCount  int      `json:"ratingsCount,omitempty"`
}
