package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	var verr *ValidationError

	switch {
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &verr):
		RespondError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, ErrInsufficientTokens):
		RespondError(c, http.StatusPaymentRequired, "Insufficient tokens, please recharge")
	case errors.Is(err, ErrNotSubscribed):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrMealsLocked):
		RespondError(c, http.StatusLocked, "Meal subscriptions are currently locked")
	case errors.Is(err, ErrAmountTooLow):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
