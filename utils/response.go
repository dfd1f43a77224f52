package utils

import "github.com/gin-gonic/gin"

// Error writes the flat error body used across the API. All auth failures use
// status 401; clients can only tell the sub-cases apart by the detail text.
func Error(ctx *gin.Context, status int, detail string) {
	ctx.JSON(status, gin.H{"detail": detail})
}

// Message writes a 200 response with a single message field.
func Message(ctx *gin.Context, text string) {
	ctx.JSON(200, gin.H{"message": text})
}
