package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hiddenhistories/archive/app/api"
	"github.com/hiddenhistories/archive/app/archive"
	"github.com/hiddenhistories/archive/app/cfg"
	"github.com/hiddenhistories/archive/app/chat"
	"github.com/hiddenhistories/archive/app/cms"
	"github.com/hiddenhistories/archive/app/tasks"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	log.Printf("Starting Hidden Histories Archive server (version %s)...", cfg.GetVersion())

	// Shared HTTP client for CMS and completion API requests
	httpClient := &http.Client{}

	// Snapshot store starts empty; the first refresh fills it
	store := archive.NewStore()

	cmsClient := cms.NewClient(httpClient)
	chatClient := chat.NewClient(httpClient)

	if !chatClient.Configured() {
		log.Printf("Completion API key not set, chat will answer with the fallback message")
	}

	// Initialize and start scheduler
	log.Printf("Starting background scheduler with %d workers...", appConfig.WorkerCount)
	scheduler := tasks.NewScheduler(cmsClient, store)
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize HTTP server
	log.Println("Initializing HTTP server...")
	apiHandler := api.NewHandler(store, chatClient, scheduler, cmsClient)
	server := api.NewServer(apiHandler, appConfig.APIAccessKey, appConfig.ChatRatePerMin)

	// Create HTTP server with timeouts
	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appConfig.Port)
		log.Printf("API endpoints available:")
		log.Printf("  Families:      http://localhost:%s/families", appConfig.Port)
		log.Printf("  Stories:       http://localhost:%s/stories", appConfig.Port)
		log.Printf("  Timeline:      http://localhost:%s/timeline", appConfig.Port)
		log.Printf("  Search:        http://localhost:%s/search?q=<query>", appConfig.Port)
		log.Printf("  Chat:          http://localhost:%s/api/chat (POST)", appConfig.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appConfig.Port)

		if appConfig.APIAccessKey != "" {
			log.Printf("  Refresh:       http://localhost:%s/api/refresh (POST, requires API key)", appConfig.Port)
		} else {
			log.Printf("  Admin endpoints: DISABLED (API_ACCESS_KEY not set)")
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Hidden Histories Archive server started successfully!")
	log.Println("Press Ctrl+C to shutdown gracefully...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	// Scheduler is stopped via defer
	log.Println("Background scheduler stopped")

	log.Println("Hidden Histories Archive server shutdown complete")
}
