// README: Entry point; loads config, wires services, starts HTTP server and search workers.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"flyless/internal/ai"
	"flyless/internal/config"
	httptransport "flyless/internal/http"
	"flyless/internal/infra"
	"flyless/internal/modules/conversation"
	"flyless/internal/modules/flights"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	extractor, err := ai.NewGeminiExtractor(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer extractor.Close()

	var cache flights.Cache = flights.NewNoOpCache()
	if cfg.Redis.Enabled {
		cache = flights.NewRedisCache(infra.NewRedis(cfg.Redis.Addr), cfg.Redis.TTL)
		log.Printf("result cache enabled (redis %s, ttl %v)", cfg.Redis.Addr, cfg.Redis.TTL)
	}
	defer cache.Close()

	provider := flights.NewSerpAPIProvider(cfg.Provider.BaseURL, cfg.Provider.SerpAPIKey, cfg.Search.Country, cfg.Search.Currency)
	limiter := rate.NewLimiter(rate.Limit(cfg.Search.RPS), cfg.Search.Burst)

	flightsSvc := flights.NewService(provider, cache, limiter, flights.Config{
		Mode:       flights.Mode(cfg.Search.Mode),
		DeepRounds: cfg.Search.DeepRounds,
		RoundDelay: cfg.Search.RoundDelay,
	})
	log.Printf("search mode: %s (%d rounds, %v between rounds)", cfg.Search.Mode, cfg.Search.DeepRounds, cfg.Search.RoundDelay)

	convSvc := conversation.NewService(conversation.NewManager(), extractor, flightsSvc, cfg.Search.Workers)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(convSvc, flightsSvc),
	}

	go convSvc.RunSearchWorkers(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
