package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jooyongc/goldensnow360-dubai/catalog"
	"github.com/jooyongc/goldensnow360-dubai/config"
	"github.com/jooyongc/goldensnow360-dubai/events"
	"github.com/jooyongc/goldensnow360-dubai/handlers"
	"github.com/jooyongc/goldensnow360-dubai/routes"
	"github.com/jooyongc/goldensnow360-dubai/store"
	"github.com/jooyongc/goldensnow360-dubai/utils"
)

var version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "goldensnow360",
	Short: "Golden Snow 360 property listings server",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadEnv(cmd)
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the VR room page",
	RunE:  runServe,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for seeding admin_users",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := utils.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file (default from CONFIG_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, hashPasswordCmd, versionCmd)
}

// loadEnv reads .env into the environment, then lets CONFIG_FILE pick the
// config path unless --config was given.
func loadEnv(cmd *cobra.Command, files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	if cmd.Flags().Changed("config") {
		return
	}
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		configPath = p
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := utils.NewLogger(cfg.App.LogLevel, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	if cfg.Redis.Addr != "" {
		cache := utils.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
			_ = cache.Close()
		} else {
			defer cache.Close()
			st.WithCache(cache, cfg, logger)
			logger.Info("catalog cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.CacheTTL()))
		}
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.AMQP.URL != "" {
		publisher = events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
	}
	defer publisher.Close()

	created, err := store.EnsureAdmin(ctx, st.Admins, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		logger.Info("bootstrap admin created", zap.String("username", cfg.Auth.AdminUsername))
	}

	issuer, err := utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.ExpiryHours)
	if err != nil {
		return err
	}

	e := newServer(logger)
	h := handlers.New(handlers.Deps{
		Store:     st,
		Publisher: publisher,
		Issuer:    issuer,
		Renderer:  catalog.NewRenderer(cfg.App.Placeholder, cfg.App.Locale),
		Map:       cfg.Map,
		Logger:    logger,
	})
	routes.RegisterRoutes(e, h, issuer)

	go func() {
		logger.Info("server starting", zap.String("port", cfg.App.Port), zap.String("driver", st.Driver))
		if err := e.Start(":" + cfg.App.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
		}
		stop()
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newServer(logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	return e
}
