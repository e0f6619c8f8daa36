package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-currency-converter/docs"
	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Config holds every setting read at startup.
type Config struct {
	Env  string `env:"NODE_ENV" env-default:"test"`
	Host string `env:"host" env-default:"0.0.0.0"`
	Port int    `env:"nodePort" env-default:"3000"`

	RedisHost     string `env:"redis__host" env-default:"localhost"`
	RedisPort     int    `env:"redis__port" env-default:"6379"`
	RedisPassword string `env:"redis__password"`
	RedisDB       int    `env:"redis__db" env-default:"0"`
	RedisTTL      int    `env:"redis__ttl" env-default:"3600"` // seconds

	MonobankURL     string        `env:"monobank__api_url" env-required:"true"`
	MonobankTimeout time.Duration `env:"monobank__timeout" env-default:"5s"`
}

// @title Currency Converter API
// @version 1.0.0
// @description API for converting currencies using Monobank exchange rates
// @host localhost:3000
// @BasePath /v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", ".env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from an optional dotenv file and
// reads them into Config. Variables already set in the environment win.
func parseConfig(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	switch cfg.Env {
	case logger.EnvDevelopment, logger.EnvTest, logger.EnvProduction:
	default:
		return nil, fmt.Errorf("NODE_ENV must be one of %s, %s, %s, got %q",
			logger.EnvDevelopment, logger.EnvTest, logger.EnvProduction, cfg.Env)
	}
	if cfg.RedisTTL <= 0 {
		return nil, fmt.Errorf("redis__ttl must be positive, got %d", cfg.RedisTTL)
	}

	return &cfg, nil
}

// newRouter builds the HTTP routes around the given converter.
func newRouter(converter handlers.Converter) http.Handler {
	notFound := handlers.NewNotFoundHandler()

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	// Unsupported methods are reported as unknown routes.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Post("/v1/currency/convert", handlers.NewConvertHandler(converter))

	r.Get("/api/*", httpSwagger.Handler(httpSwagger.URL("/api/doc.json")))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// run initializes the logger, Redis, the Monobank client and the HTTP server.
// It blocks until a shutdown signal arrives or the server fails.
func run(ctx context.Context, cfg *Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.Env); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infow("logger initialized", "env", cfg.Env)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}

	// Initialize facades and repositories
	monobank := facades.NewMonobankFacade(cfg.MonobankURL, cfg.MonobankTimeout)
	isoCodes := facades.NewISOCurrencyFacade()
	ratesCache := repositories.NewExchangeRateCacheRepository(rdb, time.Duration(cfg.RedisTTL)*time.Second)

	// Initialize services
	conversionService := services.NewConversionService(monobank, ratesCache, isoCodes)

	addr := fmt.Sprintf("%s:%s", cfg.Host, strconv.Itoa(cfg.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(conversionService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
