// Package api exposes the HTTP surface: content catalog reads, session
// operations, the chat websocket, assistant widgets and the admin lead
// viewer.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/web3hub/hub-engine/internal/chatbot"
	"github.com/web3hub/hub-engine/internal/config"
	"github.com/web3hub/hub-engine/internal/content"
	"github.com/web3hub/hub-engine/internal/session"
	"github.com/web3hub/hub-engine/internal/storage"
)

// Server represents the HTTP API server
type Server struct {
	config     config.ServerConfig
	router     *chi.Mux
	sessions   *session.Manager
	catalog    *content.Catalog
	bot        *chatbot.Bot
	repo       storage.Repository
	adminToken string
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	sessions *session.Manager,
	catalog *content.Catalog,
	bot *chatbot.Bot,
	repo storage.Repository,
	adminToken string,
) *Server {
	s := &Server{
		config:     cfg,
		sessions:   sessions,
		catalog:    catalog,
		bot:        bot,
		repo:       repo,
		adminToken: adminToken,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check (outside versioned API - public)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Content catalog (read-only, unavailable until the batch load
		// has resolved)
		r.Route("/content", func(r chi.Router) {
			r.Use(s.requireContent)
			r.Get("/learn", s.handleLearnContent)
			r.Get("/resources", s.handleResourcesContent)
			r.Get("/courses", s.handleListCourses)
			r.Get("/courses/{id}", s.handleGetCourse)
			r.Get("/tiers", s.handleServiceTiers)
			r.Get("/posts", s.handleLinkedInPosts)
			r.Get("/homepage", s.handleHomepage)
			r.Get("/terms", s.handleTerms)
		})

		// Sessions
		r.Route("/sessions", func(r chi.Router) {
			r.Use(s.requireContent)
			r.Post("/", s.handleCreateSession)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDeleteSession)
				r.Post("/navigate", s.handleNavigate)
				r.Post("/course", s.handleSelectCourse)
				r.Post("/enroll", s.handleEnroll)
				r.Post("/exit-course", s.handleExitCourse)
				r.Post("/complete-course", s.handleCompleteCourse)
				r.Post("/unlock", s.handleUnlock)
				r.Get("/resources", s.handleGatedResources)

				r.Post("/chat", s.handleChat)
				r.Get("/chat", s.handleChatTranscript)
				r.Get("/chat/ws", s.handleChatWS)

				r.Route("/demos", func(r chi.Router) {
					r.Post("/mint", s.handleStartMint)
					r.Post("/mint/reset", s.handleResetMint)
					r.Get("/votes", s.handleVotes)
					r.Post("/votes", s.handleCastVote)
					r.Post("/swap/quote", s.handleSwapQuote)
					r.Post("/swap", s.handleExecuteSwap)
					r.Post("/swap/reset", s.handleResetSwap)
					r.Post("/certificate", s.handleClaimCertificate)
				})
			})
		})

		// Assistant widgets
		r.Route("/assist", func(r chi.Router) {
			r.Post("/brief", s.handleStrategyBrief)
			r.With(s.requireContent).Post("/answer", s.handleHubAnswer)
			r.With(s.requireContent).Post("/path", s.handleLearningPath)
			r.Post("/membership", s.handleMembership)
			r.Post("/roadmap", s.handleRoadmap)
		})

		// Admin (bearer token)
		r.Route("/admin", func(r chi.Router) {
			r.Use(s.adminAuth)
			r.Get("/leads", s.handleListLeads)
			r.Get("/leads/export", s.handleExportLeads)
			r.Get("/resources", s.handleGetResourceOverrides)
			r.Put("/resources", s.handleSaveResourceOverrides)
		})
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
