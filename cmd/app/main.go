package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"shiprates/cmd"
	"shiprates/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultHTTPPort        = "8080"
	defaultProviderTimeout = 10 * time.Second
	shutdownTimeout        = 10 * time.Second
)

func main() {
	loadDotEnv()
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	getRates, err := app.CreateGetRatesQueryHandler()
	if err != nil {
		log.Fatalf("Error building rate pipeline: %v", err)
	}

	jobManager := app.CreateJobManager(getRates)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateWebServer(getRates)
	if err != nil {
		log.Fatalf("Error building web server: %v", err)
	}
	startWebServer(ctx, e, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:          withDefault(os.Getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         withDefault(os.Getenv("DB_SSLMODE"), "disable"),
		EasyshipURL:       os.Getenv("EASYSHIP_URL"),
		EasyshipAPIKey:    os.Getenv("EASYSHIP_API_KEY"),
		SendParcelURL:     os.Getenv("SENDPARCEL_URL"),
		SendParcelAPIKey:  os.Getenv("SENDPARCEL_API_KEY"),
		ProviderTimeout:   durationVariable("PROVIDER_TIMEOUT", defaultProviderTimeout),
		SecondaryInChain:  boolVariable("SECONDARY_IN_CHAIN"),
		RateProbeSchedule: os.Getenv("RATE_PROBE_SCHEDULE"),
	}
}

// loadDotEnv reads .env when present; the process environment wins otherwise.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, v, err)
	}
	return d
}

func boolVariable(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, v, err)
	}
	return b
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting web server: %v", err)
		}
	}()
	logger.Info("Web server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
}
