package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetAPIHitter returns the caller identity stored by the auth middleware.
func GetAPIHitter(c *gin.Context) string {
	if email, exists := c.Get("email"); exists {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return "Unknown"
}

func PrintLogInfo(username *string, statusCode int, functionName string, err *error) {
	var logColor string

	switch statusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		logColor = Green
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusConflict:
		logColor = Yellow
	case http.StatusInternalServerError, http.StatusNotImplemented, http.StatusBadGateway, http.StatusServiceUnavailable:
		logColor = Red
	default:
		logColor = Reset
	}

	user := "Unknown"
	if username != nil {
		user = *username
	}

	event := log.Info()
	if err != nil && *err != nil {
		event = log.Warn().Err(*err)
	}
	event.Msg(fmt.Sprintf("User: %s | Status: %d | Function: %s", user, statusCode, functionName))

	fmt.Printf("%sUser: %s | Status: %s | Function: %s%s\n", logColor, user, ColorStatus(statusCode), functionName, Reset)
}
