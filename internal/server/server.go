// Package server provides the HTTP REST API for the careerpath service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/careerpath/internal/analysis"
	"github.com/jonathan/careerpath/internal/config"
	"github.com/jonathan/careerpath/internal/events"
	"github.com/jonathan/careerpath/internal/logger"
	"github.com/jonathan/careerpath/internal/progress"
	"github.com/jonathan/careerpath/internal/server/middleware"
	"github.com/jonathan/careerpath/internal/server/ratelimit"
	"github.com/jonathan/careerpath/internal/storage"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Deps are the collaborators a Server is built from. Store and Config are required.
type Deps struct {
	Store   storage.Store
	Config  *config.Config
	Logger  *logger.Logger
	Limiter *ratelimit.Limiter // RATE_LIMIT_* defaults when nil
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       storage.Store
	log         *logger.Logger
	cfg         *config.Config
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate

	authHandler *AuthHandler
	progress    *progress.Engine
	analyzer    *analysis.Analyzer
	events      *events.Cache
}

// New creates a new server instance
func New(deps Deps) (*Server, error) {
	if deps.Store == nil || deps.Config == nil {
		return nil, fmt.Errorf("server requires a store and a config")
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	limiter := deps.Limiter
	if limiter == nil {
		limiter = ratelimit.NewLimiter(ratelimit.LoadConfig())
	}

	passwordConfig, err := deps.Config.Password()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := deps.Config.JWT()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	jwtService := NewJWTService(jwtConfig)

	s := &Server{
		store:       deps.Store,
		log:         log,
		cfg:         deps.Config,
		rateLimiter: limiter,
		validate:    newValidator(),
		progress:    progress.NewEngine(deps.Store),
		analyzer:    analysis.NewAnalyzer(deps.Store),
		events:      events.NewCache(deps.Store, deps.Config.EventCacheTTL.Std()),
	}
	users := NewUserService(deps.Store, deps.Store.Sessions(), passwordConfig, jwtService)
	s.authHandler = NewAuthHandler(users, s.validate, log)
	requireAuth := middleware.AuthMiddleware(jwtService.AsTokenValidator(), deps.Store.Sessions())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Accounts
	mux.HandleFunc("POST /api/register", s.authHandler.Register)
	mux.HandleFunc("POST /api/login", s.authHandler.Login)
	mux.Handle("POST /api/logout", requireAuth(http.HandlerFunc(s.authHandler.Logout)))
	mux.Handle("GET /api/user", requireAuth(http.HandlerFunc(s.authHandler.Me)))

	// Roadmaps and progress
	mux.HandleFunc("GET /api/roadmaps", s.handleListRoadmaps)
	mux.HandleFunc("GET /api/roadmaps/{id}", s.handleGetRoadmap)
	mux.HandleFunc("GET /api/roadmaps/{roadmapId}/progress/{userId}", s.handleGetProgress)
	mux.HandleFunc("POST /api/roadmaps/{roadmapId}/start", s.handleStartRoadmap)
	mux.HandleFunc("POST /api/roadmaps/{roadmapId}/milestone/{milestoneId}/complete", s.handleCompleteMilestone)
	mux.HandleFunc("GET /api/users/{userId}/roadmap-progress", s.handleListProgress)

	// Career analysis
	mux.HandleFunc("POST /api/career-analysis/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/career-analysis/{userId}", s.handleGetAnalysis)

	// Profiles and resumes
	mux.HandleFunc("GET /api/linkedin-profile/{userId}", s.handleGetProfile)
	mux.HandleFunc("POST /api/linkedin-profile", s.handleCreateProfile)
	mux.HandleFunc("PUT /api/linkedin-profile/{id}", s.handleUpdateProfile)
	mux.HandleFunc("GET /api/resumes/{id}", s.handleGetResume)
	mux.HandleFunc("GET /api/users/{userId}/resumes", s.handleListResumes)
	mux.HandleFunc("POST /api/resumes", s.handleCreateResume)
	mux.HandleFunc("PUT /api/resumes/{id}", s.handleUpdateResume)
	mux.HandleFunc("DELETE /api/resumes/{id}", s.handleDeleteResume)

	// Job applications
	mux.HandleFunc("GET /api/users/{userId}/job-applications", s.handleListApplications)
	mux.HandleFunc("GET /api/job-applications/{id}", s.handleGetApplication)
	mux.HandleFunc("POST /api/job-applications", s.handleCreateApplication)
	mux.HandleFunc("PUT /api/job-applications/{id}", s.handleUpdateApplication)
	mux.HandleFunc("DELETE /api/job-applications/{id}", s.handleDeleteApplication)

	// Bookmarks
	mux.HandleFunc("GET /api/users/{userId}/bookmarks", s.handleListBookmarks)
	mux.HandleFunc("POST /api/bookmarks", s.handleCreateBookmark)
	mux.HandleFunc("PUT /api/bookmarks/{id}", s.handleUpdateBookmark)
	mux.HandleFunc("DELETE /api/bookmarks/{id}", s.handleDeleteBookmark)

	// Catalog
	mux.HandleFunc("GET /api/interview/categories", s.handleInterviewCategories)
	mux.HandleFunc("GET /api/interview/questions", s.handleInterviewQuestions)
	mux.HandleFunc("GET /api/interview/questions/{id}", s.handleInterviewQuestion)
	mux.HandleFunc("GET /api/interview/tips", s.handleInterviewTips)
	mux.HandleFunc("GET /api/mentors", s.handleListMentors)
	mux.HandleFunc("GET /api/mentors/{id}", s.handleGetMentor)
	mux.HandleFunc("GET /api/salary-insights", s.handleSalaryInsights)
	mux.HandleFunc("GET /api/negotiation-tips", s.handleNegotiationTips)

	// Events
	mux.HandleFunc("GET /api/events", s.handleGetEvents)
	mux.HandleFunc("POST /api/events/cache", s.handleRefreshEvents)

	s.httpServer = &http.Server{
		Addr:         deps.Config.Addr(),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until SIGINT or SIGTERM, then drains connections and releases the store.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", s.httpServer.Addr, "backend", s.store.Backend())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.release()
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := s.httpServer.Shutdown(ctx)
	s.release()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

func (s *Server) release() {
	s.rateLimiter.Stop()
	s.store.Close()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients over their limit with 429.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder remembers the status written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs one line per request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "backend": s.store.Backend()})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	writeJSON(s.log, w, status, data)
}

// errorResponse writes a {"message": ...} JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	writeError(s.log, w, status, message)
}

// fail maps err to a status; backend failures are logged and answered generically.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	fail(s.log, w, r, err)
}

// decode reads a JSON body into v and validates it.
func (s *Server) decode(r *http.Request, v any) error {
	return decodeJSON(r, v, s.validate)
}

func writeJSON(log *logger.Logger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn("failed to encode response", "error", err)
	}
}

func writeError(log *logger.Logger, w http.ResponseWriter, status int, message string) {
	writeJSON(log, w, status, map[string]string{"message": message})
}

func fail(log *logger.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(log, w, status, http.StatusText(status))
		return
	}
	writeError(log, w, status, err.Error())
}

// decodeJSON decodes a single JSON value from the body. Malformed bodies and failed
// validation both come back as *ErrValidation.
func decodeJSON(r *http.Request, v any, validate *validator.Validate) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return &ErrValidation{Message: "invalid request body"}
	}
	if err := validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError reports the first failed field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ErrValidation{Field: verrs[0].Field(), Message: verrs[0].Tag()}
	}
	return &ErrValidation{Message: "invalid request"}
}

// clientID identifies the caller by remote IP.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds()+0.5)))
	}
	s.log.Warn("rate limit exceeded", "client", clientID(r), "method", r.Method, "path", r.URL.Path, "limit", info.Limit)
	s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
}
