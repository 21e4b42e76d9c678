package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"booktrail/internal/catalog"
	"booktrail/internal/search"
)

// CatalogSearcher runs a validated search input against the external
// book catalog.
type CatalogSearcher interface {
	Search(ctx context.Context, input string) (*catalog.SearchResult, error)
}

// SearchController handles book catalog search endpoints.
type SearchController struct {
	searcher CatalogSearcher
}

// NewSearchController creates a new SearchController.
func NewSearchController(searcher CatalogSearcher) *SearchController {
	return &SearchController{searcher: searcher}
}

// SearchResponse is the successful search payload.
type SearchResponse struct {
	TotalItems int                 `json:"totalItems"`
	Results    []catalog.Candidate `json:"results"`
	Query      string              `json:"query"`
	SearchType search.Kind         `json:"searchType"`
}

// Search handles GET /api/search?q=
// It validates the input, queries the catalog, and returns normalized
// candidates for user selection.
func (sc *SearchController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondBadRequest(c, "Search query is required")
		return
	}

	if err := search.Validate(query); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	kind := search.Classify(query)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result, err := sc.searcher.Search(ctx, query)
	if err != nil {
		sc.respondUpstreamError(c, err)
		return
	}

	if len(result.Items) == 0 {
		message := fmt.Sprintf("No books found for title: %q", query)
		if kind == search.KindISBN {
			message = fmt.Sprintf("No books found for ISBN: %s", query)
		}
		c.JSON(http.StatusNotFound, gin.H{
			"error":      message,
			"totalItems": 0,
			"results":    []catalog.Candidate{},
			"searchType": kind,
		})
		return
	}

	candidates := make([]catalog.Candidate, 0, len(result.Items))
	for _, item := range result.Items {
		candidates = append(candidates, catalog.Normalize(item))
	}

	c.JSON(http.StatusOK, SearchResponse{
		TotalItems: result.TotalItems,
		Results:    candidates,
		Query:      query,
		SearchType: kind,
	})
}

// respondUpstreamError swaps raw upstream statuses for friendlier
// messages. Rate limits and credential problems keep their status code;
// everything else becomes a generic 500.
func (sc *SearchController) respondUpstreamError(c *gin.Context, err error) {
	log.Printf("Catalog search error: %v", err)

	var upstream *catalog.UpstreamError
	if errors.As(err, &upstream) {
		switch upstream.StatusCode {
		case http.StatusTooManyRequests:
			c.JSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "Too many requests. Please try again in a moment.",
			})
			return
		case http.StatusForbidden:
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "API access denied. Please check API key configuration.",
			})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Failed to fetch book data. Please try again.",
	})
}
