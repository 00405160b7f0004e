package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/yamdb-api/api/v1"
	"github.com/yamdb-api/config"
	"github.com/yamdb-api/database"
	"github.com/yamdb-api/logging"
	"github.com/yamdb-api/middleware"
	"github.com/yamdb-api/notifier"
	"github.com/yamdb-api/obs"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)
	logger := logging.New(os.Stdout, cfg.GinMode == gin.ReleaseMode)
	ctx := context.Background()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.SlogLogger) error {
	shutdownTracer, err := obs.InitTracer(ctx, obs.Options{
		Enabled:     cfg.OtelEnabled,
		Endpoint:    cfg.OtelEndpoint,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	db, err := database.Open(database.Options{
		Driver:  cfg.DBDriver,
		URL:     cfg.DatabaseURL,
		Handler: logger.Handler(),
		Debug:   cfg.GinMode == gin.DebugMode,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logger.Info(ctx, "database ready", "driver", cfg.DBDriver)

	mailer, closeMailer, err := newNotifier(cfg, logger)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	defer closeMailer()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.With("component", "http")))
	if cfg.OtelEnabled {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}

	// CORS configuration
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins()
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	v1.RegisterRoutes(router.Group("/api/v1"), v1.Dependencies{
		DB:          db,
		Notifier:    mailer,
		Logger:      logger,
		JWTSecret:   cfg.JWTSecret,
		JWTTTL:      cfg.JWTTTL,
		PageSize:    cfg.PageSize,
		ServiceName: cfg.ServiceName,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server starting", "port", cfg.Port, "notifier", cfg.Notifier)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info(ctx, "shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newNotifier picks the confirmation code delivery channel
func newNotifier(cfg config.Config, logger logging.Logger) (notifier.Notifier, func(), error) {
	noop := func() {}
	switch cfg.Notifier {
	case "log", "":
		return notifier.NewLogNotifier(logger.With("component", "mail"), cfg.MailFrom), noop, nil
	case "smtp":
		return notifier.NewSMTPNotifier(cfg.SMTPAddr, cfg.MailFrom, cfg.SMTPUsername, cfg.SMTPPassword), noop, nil
	case "amqp":
		n, err := notifier.NewAMQPNotifier(cfg.RabbitURL, cfg.MailExchange, cfg.MailRoutingKey, cfg.MailFrom)
		if err != nil {
			return nil, noop, err
		}
		return n, func() { _ = n.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown notifier %q", cfg.Notifier)
	}
}
