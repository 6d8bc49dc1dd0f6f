package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/services"
	"github.com/fsnd-trivia/trivia-service/internal/utils"
	"github.com/fsnd-trivia/trivia-service/internal/validator"
)

// ErrorResponse is the error body returned by every endpoint
type ErrorResponse struct {
	Message string                     `json:"message"`
	Details string                     `json:"details,omitempty"`
	Errors  validator.ValidationErrors `json:"errors,omitempty"`
}

// BaseHandler provides shared request logging and error mapping
type BaseHandler struct {
	logger *slog.Logger
}

func NewBaseHandler(logger *slog.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	args = append(args, "method", c.Request.Method, "path", c.Request.URL.Path, "request_id", c.GetString("request_id"))
	h.logger.InfoContext(c.Request.Context(), msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err, "method", c.Request.Method, "path", c.Request.URL.Path, "request_id", c.GetString("request_id"))
	h.logger.ErrorContext(c.Request.Context(), msg, args...)
}

// RespondError maps a service or repository error onto the wire. Unprocessable
// writes map to 422, an unreachable backing store to 503.
func (h *BaseHandler) RespondError(c *gin.Context, err error, msg string) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: msg, Errors: validationErrs})
	case errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrUnknownCategory):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})
	case errors.Is(err, utils.ErrInvalidPage):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "requested page is out of range"})
	case repositories.IsConflictError(err):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: msg, Details: "duplicate resource"})
	case repositories.IsInvalidArgumentError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: msg, Details: err.Error()})
	case repositories.IsUnavailableError(err):
		h.LogError(c, err, msg)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: "service unavailable"})
	default:
		h.LogError(c, err, msg)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: msg})
	}
}

// ParseIDParam reads a positive integer path parameter
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "invalid " + name + " parameter",
			Details: raw,
		})
		return 0, false
	}
	return uint(id), true
}

// ParsePageParams reads page/per_page query parameters, clamping per_page to
// the configured maximum.
func ParsePageParams(c *gin.Context, defaultPerPage, maxPerPage int) (page, perPage int) {
	page = queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage = queryInt(c, "per_page", defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
