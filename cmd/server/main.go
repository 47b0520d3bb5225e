package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gridiron-sim/core/internal/auth"
	"github.com/gridiron-sim/core/internal/broadcast"
	"github.com/gridiron-sim/core/internal/cache"
	"github.com/gridiron-sim/core/internal/config"
	"github.com/gridiron-sim/core/internal/db"
	"github.com/gridiron-sim/core/internal/handlers"
	"github.com/gridiron-sim/core/internal/middleware"
	"github.com/gridiron-sim/core/pkg/response"
)

func main() {
	log.Println("Starting gridiron-sim server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbConfig := db.Config{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
	}
	if err := db.Connect(context.Background(), dbConfig); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connection established")

	if cfg.RedisURL != "" {
		cacheConfig := cache.Config{RedisURL: cfg.RedisURL}
		if err := cache.Connect(cacheConfig); err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v (caching disabled)", err)
		} else {
			defer cache.Close()
		}
	} else {
		log.Println("Redis URL not configured (caching disabled)")
	}

	authGate := auth.NewGate(auth.Config{
		ClientID:     cfg.OAuthClientID,
		ClientSecret: cfg.OAuthClientSecret,
		RedirectURL:  cfg.OAuthRedirectURL,
		AuthURL:      cfg.OAuthAuthURL,
		TokenURL:     cfg.OAuthTokenURL,
	}, auth.NewMemorySessionStore(), 0)

	// The broadcast orchestrator drives league progression on a fixed
	// interval: poll determine_next_action, dispatch whatever it returns.
	controller := broadcast.NewDBController()
	orchestrator := broadcast.New(controller, cfg.BroadcastPollInterval)
	if os.Getenv("ENABLE_BROADCAST") != "false" {
		orchestrator.Start()
		defer orchestrator.Stop()
	} else {
		log.Println("Broadcast orchestrator disabled via ENABLE_BROADCAST=false")
	}

	playersHandler := handlers.NewPlayersHandler()
	teamsHandler := handlers.NewTeamsHandler()
	gamesHandler := handlers.NewGamesHandler()
	statsHandler := handlers.NewStatsHandler()
	standingsHandler := handlers.NewStandingsHandler()
	adminHandler := handlers.NewAdminHandler()
	metricsHandler := handlers.NewMetricsHandler()
	broadcastHandler := handlers.NewBroadcastHandler(orchestrator)
	authHandler := handlers.NewAuthHandler(authGate)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/players", applyGETMiddleware(playersHandler.HandlePlayers))
	mux.HandleFunc("/api/v1/players/", applyGETMiddleware(playersHandler.HandlePlayers))
	mux.HandleFunc("/api/v1/teams", applyGETMiddleware(teamsHandler.HandleTeams))
	mux.HandleFunc("/api/v1/teams/", applyGETMiddleware(teamsHandler.HandleTeams))
	mux.HandleFunc("/api/v1/games", applyGETMiddleware(middleware.Cache(cache.TTLGameState, gamesCacheKey)(gamesHandler.HandleGames)))
	mux.HandleFunc("/api/v1/games/", applyGETMiddleware(middleware.Cache(cache.TTLGameState, gamesCacheKey)(gamesHandler.HandleGames)))
	mux.HandleFunc("/api/v1/stats/game/", applyGETMiddleware(statsHandler.HandleGameStats))
	mux.HandleFunc("/api/v1/standings", applyGETMiddleware(standingsHandler.HandleStandings))

	mux.HandleFunc("/api/v1/broadcast/status", applyGETMiddleware(broadcastHandler.HandleBroadcastStatus))
	mux.HandleFunc("/api/v1/admin/broadcast/trigger", applyPOSTAdminMiddleware(broadcastHandler.HandleBroadcastTrigger))

	mux.HandleFunc("/api/v1/admin/cache/flush", applyPOSTAdminMiddleware(adminHandler.HandleFlushCache))
	mux.HandleFunc("/api/v1/admin/keys/generate", applyPOSTAdminMiddleware(adminHandler.HandleGenerateAPIKey))
	mux.HandleFunc("/api/v1/admin/games/", applyPOSTAdminMiddleware(func(w http.ResponseWriter, r *http.Request) {
		adminHandler.HandleResimulateGame(w, r, gameIDFromResimulatePath(r.URL.Path))
	}))

	mux.HandleFunc("/api/v1/auth/login", applyMiddleware(authHandler.HandleLogin))
	mux.HandleFunc("/api/v1/auth/callback", applyMiddleware(authHandler.HandleCallback))

	mux.HandleFunc("/api/v1/metrics/database", applyGETMiddleware(metricsHandler.HandleDatabaseMetrics))
	mux.HandleFunc("/api/v1/metrics/health", applyGETMiddleware(metricsHandler.HandleHealthMetrics))

	mux.HandleFunc("/health", applyGETMiddleware(healthCheck))
	mux.HandleFunc("/api/v1/health", applyGETMiddleware(healthCheck))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func applyMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	return middleware.CORS(
		middleware.LogRequest(
			middleware.RecoverPanic(
				middleware.StandardRateLimit(handler),
			),
		),
	)
}

// applyGETMiddleware applies standard middleware + GET method validation.
func applyGETMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	return middleware.CORS(
		middleware.LogRequest(
			middleware.RecoverPanic(
				middleware.GET(
					middleware.StandardRateLimit(handler),
				),
			),
		),
	)
}

// applyPOSTAdminMiddleware applies admin auth + POST method validation.
func applyPOSTAdminMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	return middleware.CORS(
		middleware.LogRequest(
			middleware.RecoverPanic(
				middleware.AdminAuth(
					middleware.POST(
						middleware.StandardRateLimit(handler),
					),
				),
			),
		),
	)
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	if err := db.HealthCheck(r.Context()); err != nil {
		response.Error(w, http.StatusServiceUnavailable, "UNHEALTHY", "Database connection failed")
		return
	}

	response.Success(w, map[string]interface{}{
		"status":  "healthy",
		"service": "gridiron-sim",
		"version": "1.0.0",
	})
}

// gameIDFromResimulatePath extracts the :id segment from
// /api/v1/admin/games/:id/resimulate.
func gameIDFromResimulatePath(path string) string {
	segments := splitPath(path)
	for i, seg := range segments {
		if seg == "games" && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	return ""
}

// gamesCacheKey caches games requests by their full path + query so
// distinct weeks and distinct games don't collide.
func gamesCacheKey(r *http.Request) string {
	return "http:" + r.URL.Path + "?" + r.URL.RawQuery
}

func splitPath(path string) []string {
	var segments []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if i > start {
				segments = append(segments, path[start:i])
			}
			start = i + 1
		}
	}
	return segments
}
