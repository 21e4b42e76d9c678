package entities

import (
	"time"
)

type ReadingStatus string

const (
	StatusWantToRead       ReadingStatus = "want_to_read"
	StatusCurrentlyReading ReadingStatus = "currently_reading"
	StatusFinished         ReadingStatus = "finished"
)

// IsValid reports whether s is one of the known reading statuses.
func (s ReadingStatus) IsValid() bool {
	switch s {
	case StatusWantToRead, StatusCurrentlyReading, StatusFinished:
		return true
	}
	return false
}

type Book struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	ISBN          string        `gorm:"index;size:20" json:"isbn,omitempty"`
	Title         string        `gorm:"index;size:512" json:"title"`
	Author        string        `gorm:"index;size:256" json:"author"`
	Publisher     string        `gorm:"size:256" json:"publisher,omitempty"`
	PublishedYear int           `json:"published_year,omitempty"`
	Genre         string        `gorm:"index;size:256" json:"genre,omitempty"`
	Description   string        `gorm:"type:text" json:"description,omitempty"`
	CoverURL      string        `gorm:"size:2048" json:"cover_url,omitempty"`
	TotalPages    int           `json:"total_pages,omitempty"`
	Status        ReadingStatus `gorm:"index;size:20;default:'want_to_read'" json:"status"`
	CurrentPage   int           `gorm:"default:0" json:"current_page"`
	Rating        int           `json:"rating,omitempty"`
	StartedDate   *time.Time    `json:"started_date,omitempty"`
	FinishedDate  *time.Time    `gorm:"index" json:"finished_date,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ReadingGoal stores the yearly target book count. One row per year.
type ReadingGoal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Year        int       `gorm:"uniqueIndex" json:"year"`
	TargetBooks int       `json:"target_books"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

func (ReadingGoal) TableName() string {
	return "reading_goals"
}
