package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"booktrail/internal/catalog"
	"booktrail/internal/config"
	"booktrail/internal/database"
	booksdb "booktrail/internal/database/books"
	goalsdb "booktrail/internal/database/goals"
	"booktrail/internal/goals"
	http_controllers "booktrail/internal/http"
	"booktrail/internal/stats"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	booksRepo := booksdb.NewRepository(db.DB)
	goalsRepo := goalsdb.NewRepository(db.DB)

	if cfg.GoogleBooks.APIKey == "" {
		log.Printf("WARNING: Google Books API key is not set. Search requests run at the anonymous quota. Set 'GOOGLE_BOOKS_API_KEY' to raise it.")
	}
	catalogClient := catalog.NewClient(cfg.GoogleBooks.APIKey)

	aggregator := stats.NewAggregator(booksRepo, goalsRepo)
	goalTracker := goals.NewTracker(goalsRepo)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:    db,
		BookStore:   booksRepo,
		Searcher:    catalogClient,
		Aggregator:  aggregator,
		GoalTracker: goalTracker,
		Version:     version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})
}
