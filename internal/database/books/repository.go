// Package books provides database operations for the book catalog.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(123)
package books

import (
	"time"

	"gorm.io/gorm"

	"booktrail/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// GetByID retrieves a book by its ID.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List retrieves books, newest first, optionally filtered by status.
// Page numbering starts at 1.
func (r *Repository) List(status entities.ReadingStatus, page, limit int) ([]entities.Book, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := r.db.Model(&entities.Book{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var books []entities.Book
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&books).Error
	return books, err
}

// Update persists all fields of an existing book.
func (r *Repository) Update(book *entities.Book) error {
	return r.db.Save(book).Error
}

// Delete removes a book by ID.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// yearBounds returns the [Jan 1 of year, Jan 1 of year+1) range used for
// finished-date filtering.
func yearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

// CountFinishedInYear counts books finished within the given calendar year.
func (r *Repository) CountFinishedInYear(year int) (int64, error) {
	start, end := yearBounds(year)
	var count int64
	err := r.db.Model(&entities.Book{}).
		Where("status = ?", entities.StatusFinished).
		Where("finished_date >= ? AND finished_date < ?", start, end).
		Count(&count).Error
	return count, err
}

// CountCurrentlyReading counts books with currently_reading status.
func (r *Repository) CountCurrentlyReading() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).
		Where("status = ?", entities.StatusCurrentlyReading).
		Count(&count).Error
	return count, err
}

// ListCurrentlyReading retrieves up to limit in-progress books,
// most recently started first.
func (r *Repository) ListCurrentlyReading(limit int) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.
		Where("status = ?", entities.StatusCurrentlyReading).
		Order("started_date DESC").
		Limit(limit).
		Find(&books).Error
	return books, err
}

// FinishedPageCounts returns the total_pages value of every finished book.
func (r *Repository) FinishedPageCounts() ([]int, error) {
	var pages []int
	err := r.db.Model(&entities.Book{}).
		Where("status = ?", entities.StatusFinished).
		Pluck("total_pages", &pages).Error
	return pages, err
}

// FinishedGenres returns the genre of every finished book that has one,
// in insertion order.
func (r *Repository) FinishedGenres() ([]string, error) {
	var genres []string
	err := r.db.Model(&entities.Book{}).
		Where("status = ?", entities.StatusFinished).
		Where("genre IS NOT NULL AND genre <> ''").
		Order("id ASC").
		Pluck("genre", &genres).Error
	return genres, err
}

// FinishedDatesInYear returns the finished_date of every book finished
// within the given calendar year.
func (r *Repository) FinishedDatesInYear(year int) ([]time.Time, error) {
	start, end := yearBounds(year)
	var dates []time.Time
	err := r.db.Model(&entities.Book{}).
		Where("status = ?", entities.StatusFinished).
		Where("finished_date >= ? AND finished_date < ?", start, end).
		Pluck("finished_date", &dates).Error
	return dates, err
}
