package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"medassist/api"
	"medassist/assistant"
	"medassist/config"
	"medassist/feedback"
	"medassist/history"
	"medassist/search"
	"medassist/triage"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	ctx := context.Background()

	backend, err := search.NewGoogleCSEFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to initialize search backend: %v", err)
	}

	cache, err := search.NewSnippetCacheFromEnv()
	if err != nil {
		log.Printf("Warning: snippet cache unavailable: %v (caching disabled)", err)
		cache = nil
	}
	if cache == nil {
		log.Println("Snippet cache not configured; skipping")
	}

	provider := assistant.NewDefaultCompletionProvider("")
	if provider == nil {
		log.Fatalf("no completion provider configured: set COHERE_API_KEY or OPENAI_API_KEY")
	}
	log.Printf("Using completion model: %s", provider.ModelName())

	sheet, err := feedback.NewSheetFromEnv(ctx)
	if err != nil {
		log.Printf("Warning: feedback sheet unavailable: %v (submissions disabled)", err)
		sheet = nil
	}

	server := api.NewServer(
		search.NewRetriever(backend, cache, search.DefaultRetrieverConfig()),
		assistant.NewSynthesizer(provider),
		triage.NewMatcher(triage.DefaultAdvisories()),
		triage.NewClassifier(triage.DefaultSeverityGroups()),
		history.NewStore(),
		appenderOrNil(sheet),
	)

	r := api.NewRouter(server)
	log.Printf("Starting API server on %s", addr)
	log.Printf("Restricting search to %d trusted health sites", len(config.TrustedSites))
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/ask")
	log.Println("  GET  /api/history")
	log.Println("  GET  /api/history/export")
	log.Println("  POST /api/feedback")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// appenderOrNil keeps a typed-nil *feedback.Sheet from masquerading as a
// configured RowAppender.
func appenderOrNil(sheet *feedback.Sheet) feedback.RowAppender {
	if sheet == nil {
		return nil
	}
	return sheet
}
