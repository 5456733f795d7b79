package http

import (
	"github.com/gin-gonic/gin"

	"timeclerk/internal/entry"
	"timeclerk/pkg/log"
)

// Handler is the interface for the entry HTTP delivery handler.
type Handler interface {
	Parse(c *gin.Context)
	Submit(c *gin.Context)
	Import(c *gin.Context)
	Transcribe(c *gin.Context)
	Catalog(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc entry.UseCase
}

// New creates a new HTTP delivery handler for the entry domain.
func New(l log.Logger, uc entry.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
