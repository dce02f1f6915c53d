package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timebank/internal/pkg/session"
	"timebank/internal/timebank"
)

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ValidationFailed reports pre-network form errors as an inline list.
func ValidationFailed(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Please correct the errors below",
			"details": errs,
		},
	})
}

// FromError maps an upstream client error onto the gateway's envelope.
// When the backend rejects the wrapped token the session cookie is cleared
// too, so the client stops replaying a dead session.
func FromError(c *gin.Context, err error) {
	var (
		status int
		code   string
	)
	switch timebank.KindOf(err) {
	case timebank.KindValidation:
		status, code = http.StatusBadRequest, "VALIDATION_ERROR"
	case timebank.KindAuth:
		status, code = http.StatusUnauthorized, "SESSION_EXPIRED"
		session.ClearCookie(c, session.IsSecure(c))
	case timebank.KindForbidden:
		status, code = http.StatusForbidden, "FORBIDDEN"
	case timebank.KindNotFound:
		status, code = http.StatusNotFound, "NOT_FOUND"
	case timebank.KindConflict:
		status, code = http.StatusConflict, "CONFLICT"
	default:
		status, code = http.StatusBadGateway, "UPSTREAM_ERROR"
	}

	message := "Something went wrong. Please try again."
	var e *timebank.Error
	if errors.As(err, &e) {
		message = e.Message
	}
	Error(c, status, code, message)
}
