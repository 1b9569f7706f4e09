package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendance_app/config"
	"attendance_app/console"
	"attendance_app/db"
	"attendance_app/middleware"
	"attendance_app/routes"
	"attendance_app/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	database, repo := openRepository(cfg)
	if database != nil {
		defer database.Close()
	}
	st := store.New(repo)

	switch cfg.Mode {
	case config.ModeConsole:
		if err := console.New(st, os.Stdin, os.Stdout).Run(); err != nil {
			log.Printf("Error saving data on exit: %v", err)
			os.Exit(1)
		}
	case config.ModeAPI:
		serve(cfg, st, database)
	default:
		log.Fatalf("Unknown APP_MODE %q", cfg.Mode)
	}
}

func openRepository(cfg *config.Config) (*sql.DB, store.Repository) {
	if cfg.StorageBackend != config.BackendPostgres {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			log.Fatalf("Error creating data directory: %v", err)
		}
		return nil, db.NewFileRepository(cfg.DataDir)
	}

	database, err := db.Initialize(db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.InitSchema(database); err != nil {
		log.Fatalf("Error initializing database schema: %v", err)
	}
	return database, db.NewPostgresRepository(database)
}

func serve(cfg *config.Config, st *store.Store, database *sql.DB) {
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}
	if cfg.OperatorPasswordHash == "" {
		log.Println("Warning: OPERATOR_PASSWORD_HASH is not set, logins will be rejected")
	}

	if _, err := st.LoadStudents(); err != nil {
		log.Printf("Starting with an empty roster: %v", err)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
		"X-Request-ID",
	}
	corsConfig.AllowMethods = []string{"GET", "POST"}
	r.Use(cors.New(corsConfig), middleware.RequestID())

	tokens := middleware.NewTokenService([]byte(cfg.JWTSecret), cfg.OperatorPasswordHash)
	routes.SetupRoutes(r, st, database, cfg.DataDir, tokens)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	if err := runServer(srv, st, quit); err != nil {
		log.Printf("listen: %s", err)
		os.Exit(1)
	}
}

// runServer serves until quit fires or the listener fails, then flushes the
// store. It returns the listener error, if any.
func runServer(srv *http.Server, st *store.Store, quit <-chan os.Signal) error {
	listenErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	var failed error
	select {
	case <-quit:
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	case failed = <-listenErr:
	}

	if err := st.Close(); err != nil {
		log.Printf("Error saving data on shutdown: %v", err)
	}
	return failed
}
