package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"learnsphere/domain"
	"learnsphere/utils"
)

// statusFor maps a classified domain error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, name *string, functionName, message string, err error) {
	status := statusFor(err)
	utils.PrintLogInfo(name, status, functionName, &err)
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
		"message": message,
	})
}
