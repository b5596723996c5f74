/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the rota service. Handles configuration,
  dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (optional) and parse command-line flags
  2. Initialize SQLite store
  3. Load the active roster (stored config, falling back to the default)
  4. Configure HTTP router
  5. Start server with graceful shutdown

CONFIGURATION:
  -port / PORT              HTTP server port (default: 8080)
  -db   / DATABASE_PATH     SQLite database path (default: basecamp.db)
                            Use ":memory:" for an in-memory database

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for
  active requests, close the database, exit.
*/
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
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kaikoapy/basecamp-sub000/api"
	"github.com/kaikoapy/basecamp-sub000/roster"
	"github.com/kaikoapy/basecamp-sub000/rota"
	"github.com/kaikoapy/basecamp-sub000/store/sqlite"
)

func main() {
	// .env is optional; environment beats defaults, flags beat everything.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envStr("DATABASE_PATH", "basecamp.db"), "SQLite database path")
	flag.Parse()

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	crew := loadRoster(store)
	log.Printf("Scheduling with %d employees", len(crew))

	handler := api.NewHandler(store, crew)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Rota service starting on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// loadRoster prefers the stored active roster, falling back to the
// compiled-in default crew.
func loadRoster(store *sqlite.Store) rota.Roster {
	data, err := store.GetRoster(context.Background(), "active")
	if err != nil {
		log.Printf("Warning: failed to load stored roster: %v", err)
	}
	if data != nil {
		crew, err := roster.Parse(data)
		if err == nil {
			return crew
		}
		log.Printf("Warning: stored roster invalid, using default: %v", err)
	}
	return roster.Default()
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
