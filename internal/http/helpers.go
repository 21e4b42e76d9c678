package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// parseIDParam reads a numeric path parameter. On failure it writes a
// 400 response and returns ok=false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value := c.Param(name)
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parseQueryInt reads an optional integer query parameter, falling back
// to a default for absent or unparsable values.
func parseQueryInt(c *gin.Context, name string, fallback int) int {
	value := c.Query(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondStoreError logs the underlying store error and passes its
// message through to the client.
func respondStoreError(c *gin.Context, err error, context string) {
	log.Printf("Store error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
