package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-currency-rates/docs"
	"github.com/sbilibin2017/gw-currency-rates/internal/facades"
	"github.com/sbilibin2017/gw-currency-rates/internal/handlers"
	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-rates/internal/repositories"
	"github.com/sbilibin2017/gw-currency-rates/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Cache drivers
const (
	cacheDriverMemory = "memory"
	cacheDriverRedis  = "redis"
)

// @title gw-currency-rates API
// @version 1.0.0
// @description Exchange rates and currency conversion with cache and offline fallback
// @host localhost:8002
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, staticDir,
		apiKey, apiKeyedURL, apiFreeURL, apiTimeout,
		cacheDriver, cacheTTL,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, staticDir,
		apiKey, apiKeyedURL, apiFreeURL, apiTimeout,
		cacheDriver, cacheTTL,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// application, provider, cache, Redis and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, staticDir string,
	apiKey, apiKeyedURL, apiFreeURL string, apiTimeoutSecond int,
	cacheDriver string, cacheTTLSecond int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8002")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	staticDir = getEnv("APP_STATIC_DIR", "")

	// Rate provider config
	apiKey = getEnv("EXCHANGE_API_KEY", "")
	apiKeyedURL = getEnv("EXCHANGE_API_KEYED_URL", facades.DefaultKeyedURL)
	apiFreeURL = getEnv("EXCHANGE_API_FREE_URL", facades.DefaultFreeURL)
	if apiTimeoutSecond, err = strconv.Atoi(getEnv("EXCHANGE_API_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Cache config
	cacheDriver = getEnv("CACHE_DRIVER", cacheDriverMemory)
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CACHE_TTL_SECOND", "1800")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	kafkaTopic = getEnv("KAFKA_TOPIC", "exchange-rates")

	return
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run initializes the logger, rate cache, provider client and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, staticDir string,
	apiKey, apiKeyedURL, apiFreeURL string, apiTimeoutSecond int,
	cacheDriver string, cacheTTLSecond int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	cacheTTL := time.Duration(cacheTTLSecond) * time.Second

	// Initialize rate cache
	var cache services.ExchangeRateCache
	switch cacheDriver {
	case cacheDriverMemory:
		cache = repositories.NewExchangeRateMemoryRepository(cacheTTL)
	case cacheDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewExchangeRateCacheRepository(rdb, cacheTTL)
	default:
		return fmt.Errorf("unknown cache driver %q", cacheDriver)
	}
	log.Infow("rate cache initialized", "driver", cacheDriver, "ttl", cacheTTL)

	// Initialize rate publisher
	var publisher services.RatePublisher = facades.NopRatePublisher{}
	if len(kafkaBrokers) > 0 {
		p := facades.NewRateKafkaPublisher(facades.NewRateKafkaWriter(kafkaBrokers, kafkaTopic))
		defer p.Close()
		publisher = p
		log.Infow("publishing rate snapshots", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	// Initialize provider client and service
	provider := facades.NewExchangeRateHTTPFacade(
		&http.Client{Timeout: time.Duration(apiTimeoutSecond) * time.Second},
		apiKey, apiKeyedURL, apiFreeURL,
	)
	svc := services.NewExchangeRateService(provider, cache, repositories.NewFallbackRateRepository(), publisher)

	r := newRouter(svc, staticDir, fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires handlers and middleware. Rate routes are served both at the
// root and under /api.
func newRouter(svc *services.ExchangeRateService, staticDir, swaggerURL string) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.RecoverMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	routes := func(r chi.Router) {
		r.Get("/rates", handlers.NewGetRatesHandler(svc))
		r.Get("/convert", handlers.NewConvertHandler(svc))
		r.Get("/currencies", handlers.NewGetCurrenciesHandler())
		r.Get("/health", handlers.NewHealthHandler(svc))
	}
	routes(r)
	r.Route("/api", routes)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}
