package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"moviefinder/api"
	"moviefinder/config"
	"moviefinder/handlers"
	"moviefinder/internal/auth"
	"moviefinder/internal/database"
	"moviefinder/internal/metrics"
	"moviefinder/services/favorites"
	"moviefinder/services/inference"
	"moviefinder/services/metadata"
	"moviefinder/services/movies"
	"moviefinder/services/users"
	"moviefinder/utils"
)

func main() {
	portOverride := flag.Int("port", 0, "override server port from config")
	flag.Parse()

	fmt.Println("🎬 moviefinder backend starting...")

	// Determine config path (env or default)
	configPath := os.Getenv("MOVIEFINDER_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("cache", "settings.json")
	}

	// Init config manager and load settings (creates defaults if missing)
	cfgManager := config.NewManager(configPath)
	settings, err := cfgManager.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	// Set up file logging with rotation
	if settings.Log.File != "" {
		logDir := filepath.Dir(settings.Log.File)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Printf("Warning: could not create log directory %s: %v", logDir, err)
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   settings.Log.File,
				MaxSize:    settings.Log.MaxSize,
				MaxBackups: settings.Log.MaxBackups,
				MaxAge:     settings.Log.MaxAge,
				Compress:   settings.Log.Compress,
			}
			// Redirect standard log to both console and file
			log.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
			log.SetFlags(log.LstdFlags | log.Lshortfile)
			log.Printf("Logging to file: %s", settings.Log.File)
		}
	}

	// Generate the session signing secret on first start
	settings.Auth.Secret = strings.TrimSpace(settings.Auth.Secret)
	if settings.Auth.Secret == "" && os.Getenv("MOVIEFINDER_AUTH_SECRET") == "" {
		secret, err := utils.GenerateSecret()
		if err != nil {
			log.Fatalf("failed to generate auth secret: %v", err)
		}
		settings.Auth.Secret = secret
		if err := cfgManager.Save(settings); err != nil {
			log.Fatalf("failed to persist generated auth secret: %v", err)
		}
		fmt.Println("🔑 Generated a new session signing secret")
	}

	config.ApplyEnv(&settings, os.Getenv)
	if *portOverride > 0 {
		settings.Server.Port = *portOverride
	}

	if settings.Metadata.TMDBAPIKey == "" {
		log.Println("⚠️  TMDB API key is not configured; movie lookups will fail")
	}
	if settings.Inference.APIKey() == "" {
		log.Printf("⚠️  %s API key is not configured; description search will fail", settings.Inference.ProviderName())
	}

	db, err := database.NewDB(database.Config{DatabasePath: settings.Database.Path})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	registry := metrics.New()

	tmdb := metadata.NewTMDBClient(metadata.Options{
		APIKey:            settings.Metadata.TMDBAPIKey,
		Language:          settings.Metadata.Language,
		Timeout:           config.Timeout(settings.Metadata.RequestTimeoutSeconds),
		RetryAttempts:     settings.Metadata.RetryAttempts,
		RetryDelay:        500 * time.Millisecond,
		RequestsPerSecond: settings.Metadata.RequestsPerSecond,
		Burst:             settings.Metadata.Burst,
	})
	titleSource, err := inference.New(inference.Options{
		Provider:      settings.Inference.ProviderName(),
		APIKey:        settings.Inference.APIKey(),
		Model:         settings.Inference.Model(),
		Timeout:       config.Timeout(settings.Inference.RequestTimeoutSeconds),
		RetryAttempts: settings.Inference.RetryAttempts,
		RetryDelay:    time.Second,
	})
	if err != nil {
		log.Fatalf("failed to create inference client: %v", err)
	}

	movieService := movies.NewService(titleSource, tmdb, registry, movies.Options{
		MaxResults:        settings.Resolver.MaxResults,
		MaxCast:           settings.Resolver.MaxCast,
		FailOnSearchError: settings.Resolver.FailOnSearchError,
		MaxConcurrency:    settings.Resolver.MaxConcurrency,
	})

	conn := db.Connection()
	userService := users.NewService(database.NewUserRepository(conn), settings.Auth.BcryptCost)
	favoriteService := favorites.NewService(database.NewFavoriteRepository(conn))

	authService, err := auth.NewService(auth.Options{
		Secret:         settings.Auth.Secret,
		Issuer:         settings.Auth.Issuer,
		URL:            settings.Auth.URL,
		TokenDuration:  time.Duration(settings.Auth.TokenDurationMinutes) * time.Minute,
		CookieDuration: time.Duration(settings.Auth.CookieDurationHours) * time.Hour,
		DisableXSRF:    settings.Auth.DisableXSRF,
		SecureCookies:  settings.Auth.SecureCookies,
	}, userService, userService)
	if err != nil {
		log.Fatalf("failed to create auth service: %v", err)
	}

	// Construct router and register API routes
	r := utils.NewRouter(settings.Server.AllowedOrigins)
	api.Register(r, api.Routes{
		Movies:         handlers.NewMoviesHandler(movieService),
		Users:          handlers.NewUsersHandler(userService, authService),
		Favorites:      handlers.NewFavoritesHandler(favoriteService),
		Auth:           authService.Handlers(),
		RequireSession: authService.Middleware(),
		Metrics:        registry.Handler(),
		Observer:       registry,
	})

	addr := fmt.Sprintf("%s:%d", settings.Server.Host, settings.Server.Port)
	fmt.Printf("Server starting on %s\n", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	// Setup graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("🛑 Shutdown signal received, cleaning up...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
