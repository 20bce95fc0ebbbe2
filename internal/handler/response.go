package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"charges/internal/domain"
	"charges/internal/validation"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondAccepted sends a 202 response for a document taken into processing.
func RespondAccepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, APIResponse{Success: true, Data: data})
}

// RespondRejected sends a 422 response carrying the validation errors in data.
func RespondRejected(c *gin.Context, data interface{}) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Success: false,
		Data:    data,
		Error:   &APIError{Code: "VALIDATION_FAILED", Message: "document violates one or more validation rules"},
	})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrSenderMismatch):
		return http.StatusForbidden, "SENDER_MISMATCH", "document sender does not match the authenticated market participant"
	case errors.Is(err, domain.ErrChargeNotFound):
		return http.StatusConflict, "CHARGE_NOT_FOUND", "charge no longer exists"
	case errors.Is(err, domain.ErrMarketParticipantNotFound):
		return http.StatusConflict, "MARKET_PARTICIPANT_NOT_FOUND", "market participant no longer exists"
	case errors.Is(err, validation.ErrUnsupportedOperationKind):
		return http.StatusBadRequest, "UNSUPPORTED_OPERATION_KIND", "operation kind must be create, update or stop"
	case errors.Is(err, domain.ErrDuplicateCharge):
		return http.StatusConflict, "DUPLICATE_CHARGE", "charge already exists"
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return http.StatusConflict, "CONCURRENT_UPDATE", "charge was modified by another document, resubmit"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// The error is attached to the context for the request logger.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	_ = c.Error(err)
	RespondError(c, status, code, msg)
}
