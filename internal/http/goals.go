package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktrail/internal/goals"
)

// GoalsController handles reading-goal endpoints.
type GoalsController struct {
	tracker *goals.Tracker
}

// NewGoalsController creates a new GoalsController.
func NewGoalsController(tracker *goals.Tracker) *GoalsController {
	return &GoalsController{tracker: tracker}
}

// SetGoalRequest is the request body for upserting a yearly goal.
type SetGoalRequest struct {
	Year        int `json:"year"`
	TargetBooks int `json:"target_books"`
}

// GetGoal handles GET /api/reading-goals?year=
func (gc *GoalsController) GetGoal(c *gin.Context) {
	year := parseQueryInt(c, "year", 0)
	if year <= 0 {
		respondBadRequest(c, "year query parameter is required")
		return
	}

	goal, err := gc.tracker.Get(year)
	if err != nil {
		respondStoreError(c, err, "get reading goal")
		return
	}
	if goal == nil {
		respondNotFound(c, "Reading goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}

// SetGoal handles POST /api/reading-goals. The goal is upserted keyed by
// year, overwriting any existing row.
func (gc *GoalsController) SetGoal(c *gin.Context) {
	var req SetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Year <= 0 {
		respondBadRequest(c, "year is required")
		return
	}

	goal, err := gc.tracker.Set(req.Year, req.TargetBooks)
	if errors.Is(err, goals.ErrInvalidTarget) {
		respondBadRequest(c, err.Error())
		return
	}
	if err != nil {
		respondStoreError(c, err, "set reading goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}
