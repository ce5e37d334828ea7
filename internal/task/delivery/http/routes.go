package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Parsing endpoints are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.RateLimit(), h.Parse)
	rg.POST("/quick", mw.RateLimit(), h.QuickCreate)

	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/stats", h.Stats)
	rg.GET("/:id", h.Detail)
	rg.PATCH("/:id", h.Update)
	rg.PATCH("/:id/toggle", h.Toggle)
	rg.DELETE("/:id", h.Delete)
}
