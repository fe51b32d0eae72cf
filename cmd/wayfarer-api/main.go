// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wayfarer/internal/ai"
	"wayfarer/internal/config"
	httptransport "wayfarer/internal/http"
	"wayfarer/internal/infra"
	"wayfarer/internal/modules/conversation"
	"wayfarer/internal/modules/geocode"
	"wayfarer/internal/modules/history"
	"wayfarer/internal/modules/pricewatch"
	"wayfarer/internal/modules/recommend"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Every external collaborator is optional; the server degrades to the
	// deterministic in-memory engine when one is not configured.
	var provider ai.Provider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		provider = gemini
	} else {
		log.Print("GEMINI_API_KEY not set, running with deterministic replies")
	}

	var histSvc *history.Service
	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		defer pool.Close()
		store := history.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		histSvc = history.NewService(store)
	} else {
		log.Print("WAYFARER_DB_DSN not set, trip history disabled")
	}

	var geocodeStore *geocode.Store
	if cfg.Redis.Addr != "" {
		geocodeStore = geocode.NewStore(infra.NewRedis(cfg.Redis.Addr))
	}

	var resolver geocode.Resolver
	if cfg.Maps.APIKey != "" {
		mapsResolver, err := geocode.NewMapsResolver(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		resolver = mapsResolver
	} else {
		log.Print("MAPS_API_KEY not set, using filler coordinates")
	}

	seed := cfg.Plans.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var recorder conversation.HistoryRecorder
	if histSvc != nil {
		recorder = histSvc
	}
	convSvc := conversation.NewService(conversation.NewStore(), provider, recorder)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Conversation: convSvc,
		Geocode:      geocode.NewService(resolver, geocodeStore),
		Recommend:    recommend.NewService(seed),
		Pricewatch:   pricewatch.NewService(seed),
		History:      histSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
