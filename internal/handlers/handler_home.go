package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome reports the service name and API version.
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "change_maker API v1"})
}
