package http

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"booktrail/internal/stats"
)

// SnapshotComputer builds the statistics snapshot for a year.
type SnapshotComputer interface {
	Compute(year int) (*stats.Snapshot, error)
}

// StatsController handles the reading-statistics endpoint.
type StatsController struct {
	aggregator SnapshotComputer
}

// NewStatsController creates a new StatsController.
func NewStatsController(aggregator SnapshotComputer) *StatsController {
	return &StatsController{aggregator: aggregator}
}

// GetStatistics handles GET /api/statistics. The snapshot is recomputed
// for the current year on every request; any sub-query failure fails the
// whole response.
func (sc *StatsController) GetStatistics(c *gin.Context) {
	snapshot, err := sc.aggregator.Compute(time.Now().Year())
	if err != nil {
		log.Printf("Statistics aggregation error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to calculate statistics",
		})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
