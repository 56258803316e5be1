package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars/internal/domain"
	"starwars/internal/pkg/validator"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
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

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// FromError writes the envelope matching the domain error kind of err and
// records err on the context for the request logger. Storage details stay in
// the log; clients get a fixed message per kind.
func FromError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *validator.Error
	switch {
	case errors.As(err, &verr):
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", verr.Fields)
	case errors.Is(err, domain.ErrInvalidInput):
		Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, domain.ErrConstraintViolation):
		Error(c, http.StatusConflict, "CONSTRAINT_VIOLATION", "Request conflicts with stored data")
	case errors.Is(err, domain.ErrNotConfigured):
		Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", "Storage is not available")
	case errors.Is(err, domain.ErrMissingRelation):
		Error(c, http.StatusInternalServerError, "MISSING_RELATION", "Stored data is incomplete")
	default:
		Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
