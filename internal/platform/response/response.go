package response

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// Meta carries pagination details.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Rejection is a business rule failure that carries its own reason code and
// shopper-facing message.
type Rejection interface {
	error
	ReasonCode() string
	Message() string
}

// Success writes a 200 with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// Created writes a 201 with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// NoContent writes a 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated writes a 200 with data and pagination metadata.
func Paginated(c *gin.Context, data interface{}, total int64, page, limit int) {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta:    &Meta{Page: page, Limit: limit, Total: total, TotalPages: pages},
	})
}

// BadRequest writes a 400.
func BadRequest(c *gin.Context, msg string) {
	abort(c, http.StatusBadRequest, APIError{Code: "BAD_REQUEST", Message: msg})
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context, msg string) {
	abort(c, http.StatusUnauthorized, APIError{Code: "UNAUTHORIZED", Message: msg})
}

// Error maps err onto a status code and writes it.
func Error(c *gin.Context, err error) {
	var rej Rejection
	if errors.As(err, &rej) {
		abort(c, http.StatusUnprocessableEntity, APIError{
			Code:    "REJECTED",
			Message: rej.Message(),
			Reason:  rej.ReasonCode(),
		})
		return
	}

	var domErr *shared.DomainError
	if errors.As(err, &domErr) {
		switch {
		case errors.Is(domErr.Err, shared.ErrNotFound):
			abort(c, http.StatusNotFound, APIError{Code: "NOT_FOUND", Message: domErr.Error()})
		case errors.Is(domErr.Err, shared.ErrConflict):
			abort(c, http.StatusConflict, APIError{Code: "CONFLICT", Message: domErr.Error()})
		case errors.Is(domErr.Err, shared.ErrInvalidState):
			abort(c, http.StatusUnprocessableEntity, APIError{Code: "INVALID_STATE", Message: domErr.Error()})
		case errors.Is(domErr.Err, shared.ErrValidation):
			abort(c, http.StatusUnprocessableEntity, APIError{Code: "VALIDATION_FAILED", Message: domErr.Error()})
		default:
			abort(c, http.StatusInternalServerError, APIError{Code: "INTERNAL_ERROR", Message: "internal server error"})
		}
		return
	}

	_ = c.Error(err)
	abort(c, http.StatusInternalServerError, APIError{Code: "INTERNAL_ERROR", Message: "internal server error"})
}

func abort(c *gin.Context, status int, e APIError) {
	c.AbortWithStatusJSON(status, APIResponse{Success: false, Error: &e})
}
