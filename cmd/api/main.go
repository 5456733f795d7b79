package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"

	"timeclerk/config"
	_ "timeclerk/docs" // Swagger docs
	"timeclerk/internal/httpserver"
	"timeclerk/internal/middleware"
	"timeclerk/pkg/clockify"
	"timeclerk/pkg/datemath"
	"timeclerk/pkg/gcalendar"
	"timeclerk/pkg/log"
	"timeclerk/pkg/msgraph"
	"timeclerk/pkg/openai"
)

// @title       Timeclerk API
// @description Natural language and voice commands to Clockify time entries, with calendar meeting import.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Timeclerk...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Completion and transcription client
	ai, err := openai.New(openai.Config{
		APIKey:             cfg.OpenAI.APIKey,
		Model:              cfg.OpenAI.Model,
		TranscriptionModel: cfg.OpenAI.TranscriptionModel,
		BaseURL:            cfg.OpenAI.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize completion client: ", err)
		return
	}

	// 4. Time tracker client
	tracker := clockify.NewClient(cfg.Clockify.APIKey)
	if cfg.Clockify.BaseURL != "" {
		tracker.SetBaseURL(cfg.Clockify.BaseURL)
	}
	if !tracker.HasKey() {
		logger.Warn(ctx, "Clockify API key not configured, parsing will run without a catalog")
	}

	// 5. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Environment.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Environment.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 6. Calendar clients (both optional)
	msCalendar := initMSCalendar(ctx, cfg, logger)

	var gCalendar *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gCalendar, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			gCalendar.SetCalendarID(cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP Server
	srvCfg := httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AI:              ai,
		Tracker:         tracker,
		DateMath:        dateMathParser,
		DefaultProvider: cfg.Calendar.DefaultProvider,
		RateLimit: middleware.RateLimitConfig{
			RPS:        cfg.RateLimit.RPS,
			Burst:      cfg.RateLimit.Burst,
			MaxClients: cfg.RateLimit.MaxClients,
			TTL:        time.Duration(cfg.RateLimit.TTLMinutes) * time.Minute,
		},
	}
	if msCalendar != nil {
		srvCfg.MSCalendar = msCalendar
	}
	if gCalendar != nil {
		srvCfg.GCalendar = gCalendar
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// initMSCalendar builds the Microsoft Graph client from a stored oauth2
// token. Returns nil when the integration is not configured.
func initMSCalendar(ctx context.Context, cfg *config.Config, logger log.Logger) *msgraph.Client {
	if cfg.MSGraph.ClientID == "" || cfg.MSGraph.TokenFile == "" {
		return nil
	}

	raw, err := os.ReadFile(cfg.MSGraph.TokenFile)
	if err != nil {
		logger.Warnf(ctx, "Microsoft calendar not available (optional): %v", err)
		return nil
	}

	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		logger.Warnf(ctx, "Microsoft calendar token file is invalid: %v", err)
		return nil
	}

	oauthCfg := msgraph.OAuth2Config(cfg.MSGraph.TenantID, cfg.MSGraph.ClientID)
	logger.Info(ctx, "Microsoft calendar initialized")
	return msgraph.NewClient(ctx, &tok, oauthCfg)
}
