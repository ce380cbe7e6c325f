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

	"github.com/kamilio/song-builder-sub001/internal/adapter/llm"
	"github.com/kamilio/song-builder-sub001/internal/config"
	"github.com/kamilio/song-builder-sub001/internal/repository"
	"github.com/kamilio/song-builder-sub001/internal/service"
	"github.com/kamilio/song-builder-sub001/internal/storage"
	handler "github.com/kamilio/song-builder-sub001/internal/transport/http"
	"github.com/kamilio/song-builder-sub001/internal/transport/ws"
	"github.com/kamilio/song-builder-sub001/policy"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting studio...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("LLM URL: %s", cfg.LLMBaseURL)

	// Initialize storage
	kv, err := storage.NewKV(cfg.DatabaseURL, cfg.StorageCapacity)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer kv.Close()

	repo := repository.New(kv)

	// Initialize LLM client
	llmClient := llm.NewLLMClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)

	// Initialize policy engine
	ctx := context.Background()
	policyContent := policy.DefaultPolicy
	if cfg.PolicyFile != "" {
		data, err := os.ReadFile(cfg.PolicyFile)
		if err != nil {
			log.Fatalf("Failed to read policy file %s: %v", cfg.PolicyFile, err)
		}
		policyContent = string(data)
		log.Printf("Loaded policy from %s", cfg.PolicyFile)
	}
	policyEngine, err := policy.NewEngine(ctx, policyContent)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize notification hub
	hub := ws.NewHub()
	go hub.Run()

	// Initialize service
	svc := service.New(repo, llmClient, policyEngine, hub, cfg)

	// Initialize HTTP server
	server := handler.NewServer(svc, hub)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Studio API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down studio...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Studio stopped")
}
