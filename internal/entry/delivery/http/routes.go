package http

import (
	"github.com/gin-gonic/gin"

	"timeclerk/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The rate limiter guards the endpoints that call paid upstream APIs.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	entries := rg.Group("/entries")
	{
		entries.POST("/parse", mw.RateLimit(), h.Parse)
		entries.POST("", mw.RateLimit(), h.Submit)
		entries.POST("/import", mw.RateLimit(), h.Import)
	}

	rg.POST("/transcriptions", mw.RateLimit(), h.Transcribe)
	rg.GET("/catalog", h.Catalog)
}
