package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/harshtikone/resumeforge/internal/config"
	"github.com/harshtikone/resumeforge/internal/llm"
	"github.com/harshtikone/resumeforge/internal/server/ratelimit"
	"github.com/harshtikone/resumeforge/internal/types"
)

// Store is the persistence surface the handlers need. *db.DB satisfies it.
type Store interface {
	UpsertProfile(ctx context.Context, p *types.CareerProfile) (*types.CareerProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.CareerProfile, error)

	ListExperiences(ctx context.Context, userID uuid.UUID) ([]types.ExperienceItem, error)
	GetExperience(ctx context.Context, userID, id uuid.UUID) (*types.ExperienceItem, error)
	CreateExperience(ctx context.Context, e *types.ExperienceItem) (*types.ExperienceItem, error)
	UpdateExperience(ctx context.Context, e *types.ExperienceItem) (*types.ExperienceItem, error)
	DeleteExperience(ctx context.Context, userID, id uuid.UUID) (bool, error)

	ListProjects(ctx context.Context, userID uuid.UUID) ([]types.ProjectItem, error)
	GetProject(ctx context.Context, userID, id uuid.UUID) (*types.ProjectItem, error)
	CreateProject(ctx context.Context, p *types.ProjectItem) (*types.ProjectItem, error)
	UpdateProject(ctx context.Context, p *types.ProjectItem) (*types.ProjectItem, error)
	DeleteProject(ctx context.Context, userID, id uuid.UUID) (bool, error)

	ListSkills(ctx context.Context, userID uuid.UUID) ([]types.SkillItem, error)
	GetSkill(ctx context.Context, userID, id uuid.UUID) (*types.SkillItem, error)
	CreateSkill(ctx context.Context, s *types.SkillItem) (*types.SkillItem, error)
	UpdateSkill(ctx context.Context, s *types.SkillItem) (*types.SkillItem, error)
	DeleteSkill(ctx context.Context, userID, id uuid.UUID) (bool, error)

	ListEducation(ctx context.Context, userID uuid.UUID) ([]types.EducationItem, error)
	GetEducation(ctx context.Context, userID, id uuid.UUID) (*types.EducationItem, error)
	CreateEducation(ctx context.Context, e *types.EducationItem) (*types.EducationItem, error)
	UpdateEducation(ctx context.Context, e *types.EducationItem) (*types.EducationItem, error)
	DeleteEducation(ctx context.Context, userID, id uuid.UUID) (bool, error)

	ListCertifications(ctx context.Context, userID uuid.UUID) ([]types.CertificationItem, error)
	GetCertification(ctx context.Context, userID, id uuid.UUID) (*types.CertificationItem, error)
	CreateCertification(ctx context.Context, c *types.CertificationItem) (*types.CertificationItem, error)
	UpdateCertification(ctx context.Context, c *types.CertificationItem) (*types.CertificationItem, error)
	DeleteCertification(ctx context.Context, userID, id uuid.UUID) (bool, error)

	InsertHistory(ctx context.Context, h *types.HistoryRecord) (*types.HistoryRecord, error)
	ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]types.HistoryRecord, error)
	GetHistory(ctx context.Context, userID, id uuid.UUID) (*types.HistoryRecord, error)
	DeleteHistory(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	llm         llm.Client
	cfg         *config.Config
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter
}

// New creates a server around an already-connected store. llmClient may be
// nil, in which case the tailored generation endpoint reports the
// collaborator as unavailable.
func New(cfg *config.Config, store Store, llmClient llm.Client) *Server {
	s := &Server{
		store:       store,
		llm:         llmClient,
		cfg:         cfg,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Career profile
	mux.HandleFunc("GET /users/{id}/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /users/{id}/profile", s.handleUpsertProfile)

	// Career item collections
	mux.HandleFunc("GET /users/{id}/experiences", s.handleListExperiences)
	mux.HandleFunc("POST /users/{id}/experiences", s.handleCreateExperience)
	mux.HandleFunc("GET /users/{id}/experiences/{item_id}", s.handleGetExperience)
	mux.HandleFunc("PUT /users/{id}/experiences/{item_id}", s.handleUpdateExperience)
	mux.HandleFunc("DELETE /users/{id}/experiences/{item_id}", s.handleDeleteExperience)

	mux.HandleFunc("GET /users/{id}/projects", s.handleListProjects)
	mux.HandleFunc("POST /users/{id}/projects", s.handleCreateProject)
	mux.HandleFunc("GET /users/{id}/projects/{item_id}", s.handleGetProject)
	mux.HandleFunc("PUT /users/{id}/projects/{item_id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /users/{id}/projects/{item_id}", s.handleDeleteProject)

	mux.HandleFunc("GET /users/{id}/skills", s.handleListSkills)
	mux.HandleFunc("POST /users/{id}/skills", s.handleCreateSkill)
	mux.HandleFunc("GET /users/{id}/skills/{item_id}", s.handleGetSkill)
	mux.HandleFunc("PUT /users/{id}/skills/{item_id}", s.handleUpdateSkill)
	mux.HandleFunc("DELETE /users/{id}/skills/{item_id}", s.handleDeleteSkill)

	mux.HandleFunc("GET /users/{id}/education", s.handleListEducation)
	mux.HandleFunc("POST /users/{id}/education", s.handleCreateEducation)
	mux.HandleFunc("GET /users/{id}/education/{item_id}", s.handleGetEducation)
	mux.HandleFunc("PUT /users/{id}/education/{item_id}", s.handleUpdateEducation)
	mux.HandleFunc("DELETE /users/{id}/education/{item_id}", s.handleDeleteEducation)

	mux.HandleFunc("GET /users/{id}/certifications", s.handleListCertifications)
	mux.HandleFunc("POST /users/{id}/certifications", s.handleCreateCertification)
	mux.HandleFunc("GET /users/{id}/certifications/{item_id}", s.handleGetCertification)
	mux.HandleFunc("PUT /users/{id}/certifications/{item_id}", s.handleUpdateCertification)
	mux.HandleFunc("DELETE /users/{id}/certifications/{item_id}", s.handleDeleteCertification)

	// Resume generation
	mux.HandleFunc("POST /users/{id}/resumes/preview", s.handlePreviewResume)
	mux.HandleFunc("POST /users/{id}/resumes/generate", s.handleGenerateResume)
	mux.HandleFunc("POST /users/{id}/resumes/export", s.handleExportArtifact)
	mux.HandleFunc("POST /users/{id}/job-postings/fetch", s.handleFetchJobPosting)

	// Generation history
	mux.HandleFunc("GET /users/{id}/history", s.handleListHistory)
	mux.HandleFunc("GET /users/{id}/history/{item_id}", s.handleGetHistory)
	mux.HandleFunc("DELETE /users/{id}/history/{item_id}", s.handleDeleteHistory)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls wait on the Gemini API
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
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

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
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

// extractClientID extracts the client identifier (IP) from the request
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
