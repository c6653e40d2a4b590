package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/readingclub/internal/database"
	"github.com/mrlokans/readingclub/internal/services"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondServiceError maps a service failure to a response. Missing rows,
// rejected input and store failures are the client's problem and come back
// as 400 with their message; anything else is a 500.
func respondServiceError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, database.ErrPersistence):
		respondBadRequest(c, err.Error())
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

func respondResult(c *gin.Context, action, kind string, ok bool) {
	c.JSON(http.StatusOK, SuccessResponse{
		Message: fmt.Sprintf("Result of %s %s: %t", action, kind, ok),
		Data:    gin.H{"result": ok},
	})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts a numeric id from the path. A malformed id is a
// server error, matching how the rest of the id-less failures are reported.
func parseIDParam(c *gin.Context, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(paramName), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "invalid " + paramName + ": " + c.Param(paramName)})
		return 0, false
	}
	return id, true
}

// parseQueryID extracts an optional numeric id from the query string.
// present is false when the parameter is missing.
func parseQueryID(c *gin.Context, paramName string) (id int64, present, ok bool) {
	raw, present := c.GetQuery(paramName)
	if !present {
		return 0, false, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "invalid " + paramName + ": " + raw})
		return 0, true, false
	}
	return id, true, true
}
