package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/careerpath/internal/server/http/middleware"
)

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		middleware.AbortWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
