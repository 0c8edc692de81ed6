package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	config_llm "qa_ai_service/internal/config/llm"
	"qa_ai_service/internal/service/llm"
	"qa_ai_service/internal/service/qa"
	"qa_ai_service/internal/transport/http/handler"
)

func main() {
	color.Cyan("🚀 Starting QA Service...")

	// Load .env; a missing file is fine, the environment may already be set
	color.Yellow("📦 Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file loaded: %v", err)
	} else {
		color.Green("✅ .env loaded successfully")
	}

	// Read configuration
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := getenvOr("OPENAI_MODEL", config_llm.DefaultModel)
	baseURL := os.Getenv("OPENAI_BASE_URL")
	port := getenvOr("PORT", "8000")

	color.Blue("🔧 Configuration:")
	log.Printf("   MODEL:    %s", model)
	log.Printf("   BASE_URL: %s", getenvOr("OPENAI_BASE_URL", "(default)"))
	log.Printf("   PORT:     %s", port)

	// Completion client; fail fast on a missing or rejected credential
	color.Yellow("🔌 Initializing completion client...")
	var opts []llm.Option
	if baseURL != "" {
		opts = append(opts, llm.WithBaseURL(baseURL))
	}
	client, err := llm.New(apiKey, opts...)
	if err != nil {
		log.Fatalf("❌ Failed to create completion client: %v", err)
	}
	if err := client.Preflight(context.Background()); err != nil {
		log.Fatalf("❌ %v", err)
	}
	color.Green("✅ Completion client ready")

	// QA service
	svc, err := qa.NewService(client, model)
	if err != nil {
		log.Fatalf("❌ Failed to create QA service: %v", err)
	}

	// Set up the router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Timeout(60 * time.Second))

	// Handlers
	r.Get("/", handler.NewRootHandler())
	r.Get("/qa", handler.NewQAHandler(svc))

	// Healthcheck
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Start the server
	addr := ":" + port
	color.Magenta("🌐 Server starting on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}

func getenvOr(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}
