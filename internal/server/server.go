package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jonathan/resume-assistant/internal/config"
	"github.com/jonathan/resume-assistant/internal/db"
	"github.com/jonathan/resume-assistant/internal/llm"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       Store
	assist      *llm.Service
	sessions    *sessionManager
	corsOrigins []string
}

// New creates a server instance: connects to Postgres, applies the schema,
// and configures the optional text service.
func New(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	var client llm.Client
	if cfg.GeminiKey != "" {
		client, err = llm.NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create text service: %w", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set; assist endpoints will report unavailable")
	}

	s := newServer(database, llm.NewService(client), cfg.CORSOrigins)
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// newServer wires handlers without touching the network; tests use it with an
// in-memory store.
func newServer(store Store, assist *llm.Service, corsOrigins []string) *Server {
	return &Server{
		store:       store,
		assist:      assist,
		sessions:    newSessionManager(),
		corsOrigins: corsOrigins,
	}
}

// routes builds the ServeMux for the API.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Version store + publication gateway
	mux.HandleFunc("POST /resume/save", s.handleSaveResume)
	mux.HandleFunc("GET /resume/list/{userId}", s.handleListVersions)
	mux.HandleFunc("GET /resume/version", s.handleGetVersion)
	mux.HandleFunc("POST /resume/comments", s.handleAddComment)
	mux.HandleFunc("GET /resume/comments/{userId}", s.handleListComments)
	mux.HandleFunc("GET /resume/public/{slug}", s.handlePublicProfile)

	// Natural-language intake
	mux.HandleFunc("POST /intake/transcript", s.handleParseTranscript)
	mux.HandleFunc("POST /intake/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /intake/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("POST /intake/sessions/{id}/answer", s.handleSessionAnswer)

	// Assist (opaque text service)
	mux.HandleFunc("POST /ai/summarize", s.handleSummarize)
	mux.HandleFunc("POST /ai/skills", s.handleInferSkills)
	mux.HandleFunc("POST /ai/translate", s.handleTranslate)
	mux.HandleFunc("POST /ai/enhance", s.handleEnhance)

	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.store.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers for the configured origins.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.corsOrigins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// withLogging logs request timing.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes a JSON error message.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"message": message})
}

// failWith maps an error onto the response: validation and not-found surface
// verbatim, anything else becomes the opaque fallback message.
func (s *Server) failWith(w http.ResponseWriter, err error, fallback string) {
	status := HTTPStatus(err)
	message := fallback
	if status != http.StatusInternalServerError {
		message = err.Error()
	} else {
		log.Printf("%s: %v", fallback, err)
	}
	s.errorResponse(w, status, message)
}
