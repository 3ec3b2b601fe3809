package handler

import (
	"Integration_Pool_Manager/internal/pool-manager/api/dto/response"
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/pkg/middleware"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type handlerLogger struct {
	logger *zap.Logger
}

func (h *handlerLogger) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	userId := c.GetString(middleware.UserIDContextKey)
	if userId == "" {
		userId = c.GetHeader("X-User-Id")
	}
	if userId != "" {
		data = append(data, zap.String("user_id", userId))
	}
	h.logger.Log(logLevel, errDescription, data...)
}

// respondError maps a service error onto its HTTP status. Anything unrecognised is logged and hidden behind a 500.
func (h *handlerLogger) respondError(c *gin.Context, err error, errDescription string) {
	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	var constraintErr *apperrors.ConstraintViolationError
	var conflictErr *apperrors.ConflictError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, response.Response{Message: validationErr.Error()})
	case errors.As(err, &constraintErr):
		c.JSON(http.StatusBadRequest, response.Response{Message: constraintErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, response.Response{Message: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, response.Response{Message: conflictErr.Error()})
	case errors.Is(err, apperrors.ErrNoAvailableServers), errors.Is(err, apperrors.ErrCircuitOpen), errors.Is(err, apperrors.ErrAdmissionCancelled):
		h.loggingError(c, err, errDescription, zap.WarnLevel)
		c.JSON(http.StatusServiceUnavailable, response.Response{Message: "Service unavailable: " + rootMessage(err)})
	default:
		h.loggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{Message: "Internal server error"})
	}
}

func rootMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrCircuitOpen):
		return apperrors.ErrCircuitOpen.Error()
	case errors.Is(err, apperrors.ErrAdmissionCancelled):
		return apperrors.ErrAdmissionCancelled.Error()
	}
	return apperrors.ErrNoAvailableServers.Error()
}

func (*handlerLogger) respondBindingError(c *gin.Context, err error) {
	var validatorError validator.ValidationErrors
	if errors.As(err, &validatorError) {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: formatValidationError(validatorError[0]),
		})
		return
	}
	c.JSON(http.StatusBadRequest, response.Response{
		Message: "Invalid request body",
	})
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s", err.Field(), err.Param())
	case "min":
		if err.Param() == "1" {
			return fmt.Sprintf("The %s field must not be empty", err.Field())
		}
		return fmt.Sprintf("The %s field must have a minimum length of %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of [%s]", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}
