package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"ordering/cmd"
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/logging"
	"ordering/internal/pkg/shutdown"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 10 * time.Second

var envFile string

var rootCmd = &cobra.Command{
	Use:   "ordering",
	Short: "Order management service",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and background jobs",
	RunE: func(_ *cobra.Command, _ []string) error {
		return serve()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(_ *cobra.Command, _ []string) error {
		return migrate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func migrate() error {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	logger := logging.New(configs.LogLevel)

	gormDB, err := postgres.Open(configs.Database().DSN())
	if err != nil {
		return err
	}
	defer func() { _ = postgres.Close(gormDB) }()

	if err = postgres.Migrate(gormDB); err != nil {
		return err
	}
	logger.Info("Database schema is up to date")
	return nil
}

func serve() error {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	if err = configs.Validate(); err != nil {
		return err
	}
	logger := logging.New(configs.LogLevel)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	gormDB, err := postgres.Open(configs.Database().DSN())
	if err != nil {
		return err
	}
	defer func() { _ = postgres.Close(gormDB) }()

	if err = postgres.Ping(gormDB); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := newWebServer(&app, logger)
	if err != nil {
		return err
	}

	go func() {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Shutdown complete")
	return nil
}

func newWebServer(app *cmd.CompositionRoot, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	validator, err := httpin.NewRequestValidator(swagger, app.Tokens())
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "Request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	}))
	e.Use(app.Metrics().EchoMiddleware())
	e.Use(validator.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(app.Metrics().Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:       app.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: app.CreateUpdateOrderStatusCommandHandler(),
		ListUserOrders:    app.CreateListUserOrdersQueryHandler(),
		RegisterUser:      app.CreateRegisterUserCommandHandler(),
		CreateSession:     app.CreateCreateSessionCommandHandler(),
	}, app.Metrics(), logger)

	servers.RegisterHandlers(e, server)

	return e, nil
}
