package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/emogo-app/emogo-backend/internal/config"
	"github.com/emogo-app/emogo-backend/internal/database"
	"github.com/emogo-app/emogo-backend/internal/handlers"
	"github.com/emogo-app/emogo-backend/internal/middleware"
	"github.com/emogo-app/emogo-backend/internal/routes"
	"github.com/emogo-app/emogo-backend/internal/storage"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Info().Str("uri", maskCredentials(cfg.MongoURI)).Msg("connecting to MongoDB")
	client, err := database.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer database.Disconnect(client)
	log.Info().
		Str("database", cfg.MongoDBName).
		Str("collection", cfg.CollectionName).
		Msg("connected to MongoDB")

	store := storage.NewMongoStore(client.Database(cfg.MongoDBName).Collection(cfg.CollectionName))
	h := handlers.New(store)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	// Rate limiting needs Redis; without REDIS_URI the service runs unthrottled.
	if cfg.RedisURI != "" {
		rdb, err := database.ConnectRedis(cfg.RedisURI)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, rate limiting disabled")
		} else {
			defer rdb.Close()
			r.Use(middleware.RateLimit(rdb))
			log.Info().Msg("rate limiting enabled")
		}
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	routes.SetupRoutes(r, h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("emogo backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}

// maskCredentials hides the user:password part of a connection URI in logs.
func maskCredentials(uri string) string {
	start := strings.Index(uri, "://")
	if start == -1 {
		return uri
	}
	at := strings.LastIndex(uri, "@")
	if at == -1 || at < start {
		return uri
	}
	return uri[:start+3] + "***" + uri[at:]
}
