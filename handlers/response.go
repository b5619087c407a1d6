package handlers

import (
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func abortWithError(c *gin.Context, status int, code, message string) {
	respondError(c, status, code, message)
	c.Abort()
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}
