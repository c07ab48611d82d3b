package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/errors"
)

// Paginated is the uniform list response contract. Pagination metadata is
// derived once at construction; the envelope is immutable afterwards.
type Paginated[T any] struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Data       []T       `json:"data"`
	Page       int       `json:"page"`
	Size       int       `json:"size"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
	HasNext    bool      `json:"hasNext"`
	HasPrev    bool      `json:"hasPrev"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewPaginated assembles a list envelope. hasNext follows page*size < total,
// so an out-of-band page yields no rows and no next/prev confusion.
func NewPaginated[T any](data []T, page, size, total int, message string) Paginated[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	return Paginated[T]{
		Success:    true,
		Message:    message,
		Data:       data,
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page*size < total,
		HasPrev:    page > 1 && total > 0,
		Timestamp:  time.Now().UTC(),
	}
}

// Envelope is the single-entity response contract. Data is absent for bare
// acknowledgements.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     *appErrors.Error `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Single wraps one entity.
func Single(data interface{}, message string) Envelope {
	return Envelope{Success: true, Message: message, Data: data, Timestamp: time.Now().UTC()}
}

// Empty acknowledges an operation that returns no entity, such as a delete.
func Empty(message string) Envelope {
	return Envelope{Success: true, Message: message, Timestamp: time.Now().UTC()}
}

// JSON sends a success payload.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, payload)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}, message string) {
	JSON(c, http.StatusCreated, Single(data, message))
}

// Error sends an error response converting the error to the common structure.
// Only the typed code/status/message surface; wrapped store errors stay in
// the logs.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	public := &appErrors.Error{Code: appErr.Code, Status: appErr.Status, Message: appErr.Message}
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, Envelope{Success: false, Message: appErr.Message, Error: public, Timestamp: time.Now().UTC()})
}
