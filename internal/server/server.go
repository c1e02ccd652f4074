package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/kupranin/jobswipe/internal/cache"
	"github.com/kupranin/jobswipe/internal/config"
	"github.com/kupranin/jobswipe/internal/db"
	"github.com/kupranin/jobswipe/internal/ledger"
	"github.com/kupranin/jobswipe/internal/types"
)

// Store covers the read paths the handlers need: profile lookups, deck pools,
// and the joined match projection. *db.DB satisfies it; tests use fakes.
type Store interface {
	GetCandidateProfile(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error)
	GetVacancyProfile(ctx context.Context, id uuid.UUID) (*types.VacancyProfile, error)
	ListCandidateProfiles(ctx context.Context, limit int) ([]types.CandidateProfile, error)
	ListVacancyProfiles(ctx context.Context, limit int) ([]types.VacancyProfile, error)
	ListMatches(ctx context.Context, filters db.MatchFilters) ([]db.MatchListing, error)
}

// LikeRecorder is the one write operation the API exposes.
type LikeRecorder interface {
	RecordLike(ctx context.Context, vacancyID, candidateProfileID uuid.UUID, side types.LikeSide, pitch string) (*ledger.Result, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	ledger     LikeRecorder
	deckCache  *cache.DeckCache
	cfg        *config.Config
	database   *db.DB // nil when constructed for tests
}

// New creates a server wired to PostgreSQL and, when configured, Redis.
func New(cfg *config.Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var deckCache *cache.DeckCache
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		deckCache = cache.NewDeckCache(rdb, time.Duration(cfg.DeckCacheTTL)*time.Second)
	}

	s := newServer(database, ledger.NewService(database, database), deckCache, cfg)
	s.database = database
	return s, nil
}

// newServer wires routes over the given collaborators.
func newServer(store Store, recorder LikeRecorder, deckCache *cache.DeckCache, cfg *config.Config) *Server {
	s := &Server{
		store:     store,
		ledger:    recorder,
		deckCache: deckCache,
		cfg:       cfg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /matches", s.handleCreateMatch)
	mux.HandleFunc("GET /matches", s.handleListMatches)
	mux.HandleFunc("GET /candidates/{id}/deck", s.handleCandidateDeck)
	mux.HandleFunc("GET /vacancies/{id}/deck", s.handleVacancyDeck)
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// parseQueryInt parses an integer query parameter with a default and an
// optional cap (maxValue 0 means uncapped).
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	var v int
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return defaultValue
	}
	if maxValue > 0 && v > maxValue {
		return maxValue
	}
	return v
}
