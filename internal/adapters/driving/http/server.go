package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kita-labs/tanyahr-core/internal/core/ports/driving"
)

// Pinger is a simple health check interface
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string

	// Services
	authService      driving.AuthService
	userService      driving.UserService
	chatService      driving.ChatService
	knowledgeService driving.KnowledgeService
	documentService  driving.DocumentService
	reviewService    driving.ReviewService

	// Infrastructure
	db          Pinger // PostgreSQL health check
	redisClient Pinger // Redis health check (optional)
}

// Config holds server configuration
type Config struct {
	Host           string
	Port           int
	Version        string
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		Version:        "dev",
		AllowedOrigins: []string{"*"},
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	authService driving.AuthService,
	userService driving.UserService,
	chatService driving.ChatService,
	knowledgeService driving.KnowledgeService,
	documentService driving.DocumentService,
	reviewService driving.ReviewService,
	db Pinger,
	redisClient Pinger, // can be nil
) *Server {
	s := &Server{
		router:           http.NewServeMux(),
		version:          cfg.Version,
		authService:      authService,
		userService:      userService,
		chatService:      chatService,
		knowledgeService: knowledgeService,
		documentService:  documentService,
		reviewService:    reviewService,
		db:               db,
		redisClient:      redisClient,
	}

	logging := NewLoggingMiddleware()
	recovery := NewRecoveryMiddleware()
	cors := NewCORSMiddleware(cfg.AllowedOrigins)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      recovery.Handler(logging.Handler(cors.Handler(s.router))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	authMiddleware := NewAuthMiddleware(s.authService)

	// Health endpoints (no auth)
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /ready", s.handleReady)
	s.router.HandleFunc("GET /version", s.handleVersion)

	// Auth endpoints (public)
	s.router.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	s.router.HandleFunc("POST /api/v1/auth/refresh", s.handleRefresh)

	// Setup endpoint (public, one-time use)
	s.router.HandleFunc("POST /api/v1/setup", s.handleSetup)

	// Auth endpoints (authenticated)
	s.router.Handle("POST /api/v1/auth/logout",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleLogout)))
	s.router.Handle("POST /api/v1/auth/change-password",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleChangePassword)))

	// User endpoints
	s.router.Handle("GET /api/v1/me",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleGetMe)))

	// HR-only user management
	s.router.Handle("GET /api/v1/users",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleListUsers))))
	s.router.Handle("POST /api/v1/users",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleCreateUser))))
	s.router.Handle("DELETE /api/v1/users/{id}",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleDeleteUser))))

	// Chat endpoints (authenticated)
	s.router.Handle("POST /api/v1/chat",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleChat)))
	s.router.Handle("GET /api/v1/chat/history",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleOwnHistory)))

	// Chat reporting (HR-only)
	s.router.Handle("GET /api/v1/chat/history/{userID}",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleUserHistory))))
	s.router.Handle("GET /api/v1/chat/logs",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleChatLogs))))

	// Knowledge endpoints (HR-only)
	s.router.Handle("GET /api/v1/knowledge",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleListKnowledge))))
	s.router.Handle("POST /api/v1/knowledge",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleCreateKnowledge))))
	s.router.Handle("DELETE /api/v1/knowledge/{id}",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleDeleteKnowledge))))

	// Document endpoints (HR-only)
	s.router.Handle("GET /api/v1/documents",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleListDocuments))))
	s.router.Handle("POST /api/v1/documents",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleCreateDocument))))
	s.router.Handle("DELETE /api/v1/documents/{id}",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleDeleteDocument))))

	// Review endpoints (HR-only)
	s.router.Handle("GET /api/v1/review/questions",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleListPendingQuestions))))
	s.router.Handle("POST /api/v1/review/questions/{id}/approve",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleApproveQuestion))))
	s.router.Handle("DELETE /api/v1/review/questions/{id}",
		authMiddleware.Authenticate(
			authMiddleware.RequireHR(http.HandlerFunc(s.handleRejectQuestion))))
}

// Start starts the HTTP server with graceful shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
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

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
