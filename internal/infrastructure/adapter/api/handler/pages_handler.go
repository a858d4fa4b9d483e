package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the static informational pages
type PagesHandler struct{}

// NewPagesHandler creates a new pages handler instance
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Home handles GET / and GET /home
func (h *PagesHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "item market",
		"message": "Welcome to the item market",
	})
}

// About handles GET /about
func (h *PagesHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"about": "A small market where registered users buy and sell back items",
	})
}

// AboutUser handles GET /about/:username
func (h *PagesHandler) AboutUser(c *gin.Context) {
	username := c.Param("username")
	c.JSON(http.StatusOK, gin.H{
		"about": fmt.Sprintf("This is the page of %s", username),
	})
}
