package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"smart-todo/config"
	_ "smart-todo/docs" // Swagger docs
	"smart-todo/internal/httpserver"
	"smart-todo/internal/metrics"
	"smart-todo/internal/middleware"
	"smart-todo/internal/task/repository/sqlite"
	"smart-todo/internal/task/usecase"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
	"smart-todo/pkg/nlparser"
)

// @title       Smart ToDo API
// @description Task manager that reads due dates, priorities and categories out of free text.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Smart ToDo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path, cfg.Database.MaxOpenConns)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite database ready at %s", cfg.Database.Path)

	// 4. Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.MustNew(reg)

	// 5. Parser
	loc, err := datemath.LoadLocation(cfg.Parser.Timezone)
	if err != nil {
		return err
	}
	parser := nlparser.New(logger,
		nlparser.WithLocation(loc),
		nlparser.WithPMCutoffHour(cfg.Parser.PMCutoffHour),
		nlparser.WithBareHourTimes(cfg.Parser.BareHourTimes),
		nlparser.WithWholeWordMatching(cfg.Parser.WholeWordMatch),
	)

	// 6. Google Calendar client (optional)
	var calendar gcalendar.ICalendar
	if cfg.GoogleCalendar.Enabled() {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate a token")
		} else {
			calendar = client
			logger.Infof(ctx, "Google Calendar sync enabled for calendar %q", cfg.GoogleCalendar.CalendarID)
		}
	}

	// 7. Task UseCase
	taskUC := usecase.New(logger, sqlite.New(db, logger), parser, calendar, m, usecase.Config{
		MaxInputLength: cfg.Parser.MaxInputLength,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		EventDuration:  cfg.GoogleCalendar.EventDuration,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Metrics:     m,
		Gatherer:    reg,
		Middleware: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		TaskUseCase: taskUC,
		Location:    loc,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 9. Run
	return httpServer.Run(ctx)
}
