package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booktrail/internal/entities"
)

// BookStore is the repository surface the books controller needs.
type BookStore interface {
	Create(book *entities.Book) error
	GetByID(id uint) (*entities.Book, error)
	List(status entities.ReadingStatus, page, limit int) ([]entities.Book, error)
	Update(book *entities.Book) error
	Delete(id uint) error
}

// BooksController handles book CRUD endpoints.
type BooksController struct {
	store BookStore
}

// NewBooksController creates a new BooksController.
func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// CreateBookRequest is the request body for creating a book.
type CreateBookRequest struct {
	ISBN          string                 `json:"isbn"`
	Title         string                 `json:"title"`
	Author        string                 `json:"author"`
	Publisher     string                 `json:"publisher"`
	PublishedYear int                    `json:"published_year"`
	Genre         string                 `json:"genre"`
	Description   string                 `json:"description"`
	CoverURL      string                 `json:"cover_url"`
	TotalPages    int                    `json:"total_pages"`
	Status        entities.ReadingStatus `json:"status"`
	CurrentPage   int                    `json:"current_page"`
	Rating        int                    `json:"rating"`
	StartedDate   *time.Time             `json:"started_date"`
	FinishedDate  *time.Time             `json:"finished_date"`
}

// UpdateBookRequest is the request body for updating a book. Absent
// fields are left untouched.
type UpdateBookRequest struct {
	ISBN          *string                 `json:"isbn"`
	Title         *string                 `json:"title"`
	Author        *string                 `json:"author"`
	Publisher     *string                 `json:"publisher"`
	PublishedYear *int                    `json:"published_year"`
	Genre         *string                 `json:"genre"`
	Description   *string                 `json:"description"`
	CoverURL      *string                 `json:"cover_url"`
	TotalPages    *int                    `json:"total_pages"`
	Status        *entities.ReadingStatus `json:"status"`
	CurrentPage   *int                    `json:"current_page"`
	Rating        *int                    `json:"rating"`
	StartedDate   *time.Time              `json:"started_date"`
}

// ListBooks handles GET /api/books with optional status filter and
// pagination, newest first.
func (bc *BooksController) ListBooks(c *gin.Context) {
	status := entities.ReadingStatus(c.Query("status"))
	if status == "all" {
		status = ""
	}
	if status != "" && !status.IsValid() {
		respondBadRequest(c, "invalid status filter")
		return
	}

	page := parseQueryInt(c, "page", 1)
	limit := parseQueryInt(c, "limit", 20)

	books, err := bc.store.List(status, page, limit)
	if err != nil {
		respondStoreError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// CreateBook handles POST /api/books.
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Title == "" || req.Author == "" {
		respondBadRequest(c, "title and author are required")
		return
	}
	if req.Status == "" {
		req.Status = entities.StatusWantToRead
	}
	if !req.Status.IsValid() {
		respondBadRequest(c, "invalid status")
		return
	}

	book := entities.Book{
		ISBN:          req.ISBN,
		Title:         req.Title,
		Author:        req.Author,
		Publisher:     req.Publisher,
		PublishedYear: req.PublishedYear,
		Genre:         req.Genre,
		Description:   req.Description,
		CoverURL:      req.CoverURL,
		TotalPages:    req.TotalPages,
		Status:        req.Status,
		CurrentPage:   req.CurrentPage,
		Rating:        req.Rating,
		StartedDate:   req.StartedDate,
		FinishedDate:  req.FinishedDate,
	}

	// finished_date is non-null iff status is finished
	if book.Status == entities.StatusFinished && book.FinishedDate == nil {
		now := time.Now()
		book.FinishedDate = &now
	}
	if book.Status != entities.StatusFinished {
		book.FinishedDate = nil
	}

	if err := bc.store.Create(&book); err != nil {
		respondStoreError(c, err, "create book")
		return
	}
	c.JSON(http.StatusCreated, book)
}

// GetBook handles GET /api/books/:id.
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "Book")
		return
	}
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// UpdateBook handles PUT /api/books/:id. A status change to finished
// stamps the finished date; any other status clears it.
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := bc.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "Book")
		return
	}
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}

	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}
	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Publisher != nil {
		book.Publisher = *req.Publisher
	}
	if req.PublishedYear != nil {
		book.PublishedYear = *req.PublishedYear
	}
	if req.Genre != nil {
		book.Genre = *req.Genre
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.CoverURL != nil {
		book.CoverURL = *req.CoverURL
	}
	if req.TotalPages != nil {
		book.TotalPages = *req.TotalPages
	}
	if req.CurrentPage != nil {
		book.CurrentPage = *req.CurrentPage
	}
	if req.Rating != nil {
		book.Rating = *req.Rating
	}
	if req.StartedDate != nil {
		book.StartedDate = req.StartedDate
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			respondBadRequest(c, "invalid status")
			return
		}
		book.Status = *req.Status
		if book.Status == entities.StatusFinished {
			now := time.Now()
			book.FinishedDate = &now
		} else {
			book.FinishedDate = nil
		}
	}

	if err := bc.store.Update(book); err != nil {
		respondStoreError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /api/books/:id.
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.Delete(id); err != nil {
		respondStoreError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}
