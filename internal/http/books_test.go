package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"booktrail/internal/entities"
)

type fakeBookStore struct {
	books  map[uint]*entities.Book
	nextID uint
	err    error
}

func newFakeBookStore() *fakeBookStore {
	return &fakeBookStore{books: make(map[uint]*entities.Book), nextID: 1}
}

func (f *fakeBookStore) Create(book *entities.Book) error {
	if f.err != nil {
		return f.err
	}
	book.ID = f.nextID
	f.nextID++
	copied := *book
	f.books[book.ID] = &copied
	return nil
}

func (f *fakeBookStore) GetByID(id uint) (*entities.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	book, ok := f.books[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *book
	return &copied, nil
}

func (f *fakeBookStore) List(status entities.ReadingStatus, page, limit int) ([]entities.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	var books []entities.Book
	for _, book := range f.books {
		if status == "" || book.Status == status {
			books = append(books, *book)
		}
	}
	return books, nil
}

func (f *fakeBookStore) Update(book *entities.Book) error {
	if f.err != nil {
		return f.err
	}
	copied := *book
	f.books[book.ID] = &copied
	return nil
}

func (f *fakeBookStore) Delete(id uint) error {
	if f.err != nil {
		return f.err
	}
	delete(f.books, id)
	return nil
}

func booksRouter(store BookStore) *gin.Engine {
	router := gin.New()
	controller := NewBooksController(store)
	router.GET("/api/books", controller.ListBooks)
	router.POST("/api/books", controller.CreateBook)
	router.GET("/api/books/:id", controller.GetBook)
	router.PUT("/api/books/:id", controller.UpdateBook)
	router.DELETE("/api/books/:id", controller.DeleteBook)
	return router
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateBook(t *testing.T) {
	store := newFakeBookStore()
	router := booksRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/books", gin.H{
		"title":  "Dune",
		"author": "Frank Herbert",
		"genre":  "Science Fiction",
	}))

	require.Equal(t, http.StatusCreated, w.Code)

	var book entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.NotZero(t, book.ID)
	assert.Equal(t, entities.StatusWantToRead, book.Status)
	assert.Nil(t, book.FinishedDate)
}

func TestCreateBook_MissingTitle(t *testing.T) {
	router := booksRouter(newFakeBookStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/books", gin.H{"author": "Frank Herbert"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title and author are required")
}

func TestCreateBook_FinishedGetsFinishedDate(t *testing.T) {
	router := booksRouter(newFakeBookStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/books", gin.H{
		"title":  "Dune",
		"author": "Frank Herbert",
		"status": "finished",
	}))

	require.Equal(t, http.StatusCreated, w.Code)

	var book entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, entities.StatusFinished, book.Status)
	assert.NotNil(t, book.FinishedDate)
}

func TestCreateBook_InvalidStatus(t *testing.T) {
	router := booksRouter(newFakeBookStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/books", gin.H{
		"title":  "Dune",
		"author": "Frank Herbert",
		"status": "abandoned",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBook_NotFound(t *testing.T) {
	router := booksRouter(newFakeBookStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/books/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Book not found")
}

func TestGetBook_InvalidID(t *testing.T) {
	router := booksRouter(newFakeBookStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/books/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestUpdateBook_StatusFinishedStampsDate(t *testing.T) {
	store := newFakeBookStore()
	require.NoError(t, store.Create(&entities.Book{
		Title:  "Dune",
		Author: "Frank Herbert",
		Status: entities.StatusCurrentlyReading,
	}))
	router := booksRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/books/1", gin.H{"status": "finished"}))

	require.Equal(t, http.StatusOK, w.Code)

	var book entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, entities.StatusFinished, book.Status)
	require.NotNil(t, book.FinishedDate)
}

func TestUpdateBook_LeavingFinishedClearsDate(t *testing.T) {
	store := newFakeBookStore()
	require.NoError(t, store.Create(&entities.Book{
		Title:  "Dune",
		Author: "Frank Herbert",
		Status: entities.StatusWantToRead,
	}))
	router := booksRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/books/1", gin.H{"status": "finished"}))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/books/1", gin.H{"status": "currently_reading"}))
	require.Equal(t, http.StatusOK, w.Code)

	var book entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, entities.StatusCurrentlyReading, book.Status)
	assert.Nil(t, book.FinishedDate)
}

func TestUpdateBook_PartialFieldsPreserved(t *testing.T) {
	store := newFakeBookStore()
	require.NoError(t, store.Create(&entities.Book{
		Title:      "Dune",
		Author:     "Frank Herbert",
		TotalPages: 412,
	}))
	router := booksRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/books/1", gin.H{"current_page": 100}))
	require.Equal(t, http.StatusOK, w.Code)

	var book entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, 100, book.CurrentPage)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, 412, book.TotalPages)
}

func TestUpdateBook_NotFound(t *testing.T) {
	router := booksRouter(newFakeBookStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/books/7", gin.H{"title": "X"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBook(t *testing.T) {
	store := newFakeBookStore()
	require.NoError(t, store.Create(&entities.Book{Title: "Dune", Author: "Frank Herbert"}))
	router := booksRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/books/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/books/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBooks_InvalidStatusFilter(t *testing.T) {
	router := booksRouter(newFakeBookStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/books?status=unknown", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBooks_StatusAllPassesThrough(t *testing.T) {
	store := newFakeBookStore()
	require.NoError(t, store.Create(&entities.Book{Title: "A", Author: "X"}))
	router := booksRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/books?status=all", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var books []entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	assert.Len(t, books, 1)
}
