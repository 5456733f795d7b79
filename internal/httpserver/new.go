package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timeclerk/internal/entry/repository"
	"timeclerk/internal/middleware"
	"timeclerk/pkg/datemath"
	"timeclerk/pkg/log"
	"timeclerk/pkg/openai"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Entry domain dependencies
	ai              openai.IOpenAI
	tracker         repository.TimeTracker
	msCalendar      repository.MicrosoftCalendar
	gCalendar       repository.GoogleCalendar
	dateMath        *datemath.Parser
	defaultProvider string

	rateLimit middleware.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AI              openai.IOpenAI
	Tracker         repository.TimeTracker
	MSCalendar      repository.MicrosoftCalendar
	GCalendar       repository.GoogleCalendar
	DateMath        *datemath.Parser
	DefaultProvider string

	RateLimit middleware.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		ai:              cfg.AI,
		tracker:         cfg.Tracker,
		msCalendar:      cfg.MSCalendar,
		gCalendar:       cfg.GCalendar,
		dateMath:        cfg.DateMath,
		defaultProvider: cfg.DefaultProvider,
		rateLimit:       cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.ai == nil {
		return errors.New("completion client is required")
	}
	if srv.tracker == nil {
		return errors.New("time tracker client is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
