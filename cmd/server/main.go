package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/talmalka/worduel/api/internal/auth"
	"github.com/talmalka/worduel/api/internal/bot"
	"github.com/talmalka/worduel/api/internal/config"
	"github.com/talmalka/worduel/api/internal/handler"
	"github.com/talmalka/worduel/api/internal/logger"
	"github.com/talmalka/worduel/api/internal/middleware"
	"github.com/talmalka/worduel/api/internal/repository/postgres"
	redisrepo "github.com/talmalka/worduel/api/internal/repository/redis"
	"github.com/talmalka/worduel/api/internal/service"
	"github.com/talmalka/worduel/api/internal/words"
)

func main() {
	logger.Init()
	cfg := config.Load()
	bot.GonnxModelPath = cfg.GonnxModelPath
	log.Info().Str("databaseURL", cfg.DatabaseURL).Msg("Config loaded")

	// Word lists
	store, err := words.Load(cfg.WordsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Word list load failed")
	}

	// Database
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	defer db.Close()

	// Redis
	redisClient, err := redisrepo.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis connection failed")
	}
	defer redisClient.Close()

	// Repos
	userRepo := postgres.NewUserRepo(db)
	matchRepo := postgres.NewMatchRepo(db)
	guessRepo := postgres.NewGuessRepo(db)

	// Auth
	jwtMgr := auth.NewJWTManager(cfg.JWTSecret)
	googleOAuth := auth.NewGoogleOAuth(
		os.Getenv("GOOGLE_CLIENT_ID"),
		os.Getenv("GOOGLE_CLIENT_SECRET"),
		os.Getenv("GOOGLE_REDIRECT_URL"),
	)

	// WebSocket hub
	wsHub := handler.NewHub()

	// Services
	matchSvc := service.NewMatchService(matchRepo, guessRepo, redisClient, store, wsHub)
	guessSvc := service.NewGuessService(matchSvc, matchRepo, guessRepo, store, wsHub)
	hintSvc := service.NewHintService(matchSvc, matchRepo, redisClient)

	// Handlers
	authHandler := handler.NewAuthHandler(googleOAuth, jwtMgr, userRepo)
	userHandler := handler.NewUserHandler(userRepo)
	matchHandler := handler.NewMatchHandler(matchSvc)
	guessHandler := handler.NewGuessHandler(guessSvc)
	hintHandler := handler.NewHintHandler(hintSvc)
	wsHandler := handler.NewWSHandler(wsHub, jwtMgr)

	// Router
	mux := http.NewServeMux()
	authMw := auth.Middleware(jwtMgr)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth (public)
	mux.HandleFunc("GET /auth/google/login", authHandler.GoogleLogin)
	mux.HandleFunc("GET /auth/google/callback", authHandler.GoogleCallback)
	mux.HandleFunc("POST /auth/refresh", authHandler.RefreshToken)
	mux.HandleFunc("GET /auth/dev", authHandler.DevLogin)

	// Protected API routes
	api := http.NewServeMux()
	api.HandleFunc("GET /users/me", userHandler.GetMe)
	api.HandleFunc("PATCH /users/me", userHandler.UpdateMe)
	api.HandleFunc("POST /matches", matchHandler.CreateMatch)
	api.HandleFunc("GET /matches", matchHandler.ListMatches)
	api.HandleFunc("GET /matches/{id}", matchHandler.GetMatch)
	api.HandleFunc("POST /matches/{id}/start", matchHandler.StartMatch)
	api.HandleFunc("DELETE /matches/{id}", matchHandler.DeleteMatch)
	api.HandleFunc("POST /matches/{id}/guesses", guessHandler.SubmitGuess)
	api.HandleFunc("GET /matches/{id}/guesses", guessHandler.ListGuesses)
	api.HandleFunc("GET /matches/{id}/hint", hintHandler.GetHint)

	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", authMw(api)))

	// WebSocket (auth via query param, not middleware)
	mux.HandleFunc("GET /api/v1/ws", wsHandler.ServeWS)

	// Apply global middleware
	root := middleware.Chain(mux, middleware.Logger, middleware.CORS("*"), middleware.JSON)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("Server stopped")
}
