// File: /utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// Every response carries a success flag and a human-readable message;
// payload keys are merged in at the top level.

func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func SendSuccess(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	for key, value := range payload {
		body[key] = value
	}
	c.JSON(status, body)
}
