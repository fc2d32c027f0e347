package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pecheck/internal/cache"
	"pecheck/internal/checker"
	"pecheck/internal/classifier"
	"pecheck/internal/config"
	"pecheck/internal/metrics"
	"pecheck/internal/peers"
	"pecheck/internal/server"
	"pecheck/internal/wiki"
)

func main() {
	cfg := config.Load()

	// Load the signal set (built-in defaults unless a signals.yaml exists)
	signals, err := config.LoadSignals(cfg.SignalsFile)
	if err != nil {
		log.Fatalf("Failed to load signal config: %v", err)
	}
	log.Printf("Loaded %d signal patterns and %d known firms", len(signals.Signals), len(signals.Firms))

	// Optional lookup cache
	var store cache.Store = cache.Noop{}
	if cfg.CacheURL != "" {
		store = cache.NewRedis(cfg.CacheURL)
		log.Println("Lookup cache enabled")
	}
	defer store.Close()

	// Wire up the pipeline
	wikiClient := wiki.NewClient(cfg, store)
	cls := classifier.New(signals)
	suggester := peers.New(wikiClient, cls, cfg.PeerRate, cfg.MaxPeers, cfg.MaxCategories)
	svc := checker.New(wikiClient, cls, suggester)

	metrics.Init()

	// Setup the server and routes
	srv := server.New(cfg)
	srv.RegisterRoutes(svc)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
