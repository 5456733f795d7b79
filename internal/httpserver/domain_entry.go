package httpserver

import (
	"context"

	entryHTTP "timeclerk/internal/entry/delivery/http"
	entryUC "timeclerk/internal/entry/usecase"
	"timeclerk/internal/middleware"
	"timeclerk/internal/model"

	"github.com/gin-gonic/gin"
)

// setupEntryDomain initializes the entry domain and registers its routes.
func (srv HTTPServer) setupEntryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := entryUC.New(
		srv.l,
		srv.ai,
		srv.tracker,
		srv.msCalendar,
		srv.gCalendar,
		srv.dateMath,
		model.MeetingProvider(srv.defaultProvider),
	)

	h := entryHTTP.New(srv.l, uc)

	entryHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Entry domain registered")
	return nil
}
