package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/norbert15/CostTracker2Backend/internal/auth"
	"github.com/norbert15/CostTracker2Backend/internal/category"
	"github.com/norbert15/CostTracker2Backend/internal/config"
	database "github.com/norbert15/CostTracker2Backend/internal/db"
	"github.com/norbert15/CostTracker2Backend/internal/identity"
	"github.com/norbert15/CostTracker2Backend/internal/record"
	"github.com/norbert15/CostTracker2Backend/internal/user"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

type Server struct {
	router          http.Handler
	authHandler     *auth.Handler
	userHandler     *user.Handler
	categoryHandler *category.Handler
	recordHandler   *record.Handler
	tokenManager    *auth.TokenManager
}

func NewServer(authHandler *auth.Handler, userHandler *user.Handler, categoryHandler *category.Handler, recordHandler *record.Handler, tokenManager *auth.TokenManager) *Server {
	s := &Server{
		authHandler:     authHandler,
		userHandler:     userHandler,
		categoryHandler: categoryHandler,
		recordHandler:   recordHandler,
		tokenManager:    tokenManager,
	}
	s.registerRoutes()
	return s
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "Path not found"})
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

func (s *Server) registerRoutes() {
	mux := http.NewServeMux()

	mux.Handle("POST /api/login", http.HandlerFunc(s.authHandler.HandleLogin))
	mux.Handle("POST /api/users", http.HandlerFunc(s.userHandler.HandleRegister))
	mux.Handle("GET /api/ready", http.HandlerFunc(handleReady))

	mux.Handle("GET /api/users/active", http.HandlerFunc(s.userHandler.HandleGetActiveUser))
	mux.Handle("PUT /api/users/profile", http.HandlerFunc(s.userHandler.HandleUpdateProfile))
	mux.Handle("PUT /api/users/password", http.HandlerFunc(s.userHandler.HandleChangePassword))

	mux.Handle("GET /api/categories", http.HandlerFunc(s.categoryHandler.HandleList))
	mux.Handle("POST /api/categories", http.HandlerFunc(s.categoryHandler.HandleCreate))
	mux.Handle("PUT /api/categories/{id}", http.HandlerFunc(s.categoryHandler.HandleUpdate))
	mux.Handle("DELETE /api/categories/{id}", http.HandlerFunc(s.categoryHandler.HandleDelete))

	mux.Handle("POST /api/records", http.HandlerFunc(s.recordHandler.HandleCreate))
	mux.Handle("GET /api/records/month/{month}", http.HandlerFunc(s.recordHandler.HandleListByMonth))
	mux.Handle("GET /api/records/year/{year}", http.HandlerFunc(s.recordHandler.HandleListByYear))

	mux.Handle("/", http.HandlerFunc(notFoundHandler))

	// The authorization middleware wraps the whole router: login is exempt,
	// everything else gets its bearer token verified when one is present.
	s.router = auth.Middleware(s.tokenManager)(mux)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService(cfg.DBConnString)
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	hasher := auth.NewHasher(cfg.PasswordPepper)
	tokenManager := auth.NewTokenManager(cfg.JWTSecret)

	userRepo := user.NewRepository(dbService.DB)
	categoryRepo := category.NewRepository(dbService.DB)
	recordRepo := record.NewRepository(dbService.DB)

	resolver := identity.NewResolver(userRepo)

	authService := auth.NewService(userRepo, hasher, tokenManager)
	userService := user.NewService(userRepo, resolver, hasher)
	categoryService := category.NewService(categoryRepo, resolver)
	recordService := record.NewService(recordRepo, categoryRepo, resolver)

	server := NewServer(
		auth.NewHandler(authService),
		user.NewHandler(userService),
		category.NewHandler(categoryService),
		record.NewHandler(recordService),
		tokenManager,
	)

	handler := loggingMiddleware(server.Handler())
	log.Printf("Server starting on %s...", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
