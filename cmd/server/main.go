package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brandcraft.io/brandcraft/internal/api"
	"brandcraft.io/brandcraft/internal/config"
	"brandcraft.io/brandcraft/internal/core"
	"brandcraft.io/brandcraft/internal/gateway"
	"brandcraft.io/brandcraft/internal/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Setup logging
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if config.AppConfig.LogLevel == "DEBUG" {
		log.Println("Service starting in DEBUG mode")
	}

	memoryFlag := flag.Bool("memory", false, "Use an in-memory project store instead of SQLite")
	flag.Parse()

	// Initialize project store
	var projectStore store.ProjectStore
	if *memoryFlag {
		log.Println("Using in-memory project store; projects will not survive a restart")
		projectStore = store.NewMemoryStore()
	} else {
		sqliteStore, err := store.NewSQLiteStore(config.AppConfig.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		projectStore = sqliteStore
	}
	defer projectStore.Close()

	// The gateway builds a fresh provider client per call; nothing to close.
	providerGateway := gateway.NewGateway()

	// Initialize view services
	identityService := core.NewIdentityService(providerGateway, projectStore)
	studioService := core.NewStudioService(providerGateway, projectStore)
	insightService := core.NewInsightService(providerGateway)
	assistantService := core.NewAssistantService(providerGateway)

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(identityService, studioService, insightService, assistantService)
	router := api.NewRouter(apiHandler)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second, // Adjusted for potentially slower LLM handshakes
		WriteTimeout: 60 * time.Second, // LLM calls can take time
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		log.Printf("Starting server on %s. Press Ctrl+C to quit.", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", serverAddr, err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give active connections time to finish before forcing the exit.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting gracefully")
}
