package http

import (
	"github.com/gin-gonic/gin"

	"booktrail/internal/database"
	"booktrail/internal/goals"
)

// RouterConfig carries all controller dependencies, improving
// testability and reducing parameter count.
type RouterConfig struct {
	Database    *database.Database
	BookStore   BookStore
	Searcher    CatalogSearcher
	Aggregator  SnapshotComputer
	GoalTracker *goals.Tracker
	Version     string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	searchController := NewSearchController(cfg.Searcher)
	booksController := NewBooksController(cfg.BookStore)
	statsController := NewStatsController(cfg.Aggregator)
	goalsController := NewGoalsController(cfg.GoalTracker)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")
	{
		api.GET("/search", searchController.Search)

		api.GET("/books", booksController.ListBooks)
		api.POST("/books", booksController.CreateBook)
		api.GET("/books/:id", booksController.GetBook)
		api.PUT("/books/:id", booksController.UpdateBook)
		api.DELETE("/books/:id", booksController.DeleteBook)

		api.GET("/statistics", statsController.GetStatistics)

		api.GET("/reading-goals", goalsController.GetGoal)
		api.POST("/reading-goals", goalsController.SetGoal)
	}

	return router
}
