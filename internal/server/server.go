//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gitlab.com/modaluna/aftersales/internal/cache"
	"gitlab.com/modaluna/aftersales/internal/domain"
	"gitlab.com/modaluna/aftersales/internal/storage"
)

type Storage interface {
	RegisterExchange(ctx context.Context, rec domain.ExchangeRecord) (int64, error)
	GetExchange(ctx context.Context, id int64) (*domain.ExchangeRecord, error)
	ListExchanges(ctx context.Context, filter domain.ExchangeFilter) ([]domain.ExchangeRecord, error)
	SetExchangeFlags(ctx context.Context, id int64, update storage.ExchangeFlagUpdate, userID string) (*domain.ExchangeRecord, error)
	GetExchangeStats(ctx context.Context, filter domain.ExchangeFilter) (*storage.ExchangeStats, error)

	RegisterReturn(ctx context.Context, rec domain.ReturnRecord) (int64, error)
	GetReturn(ctx context.Context, id int64) (*domain.ReturnRecord, error)
	ListReturns(ctx context.Context, filter domain.ReturnFilter) ([]domain.ReturnRecord, error)
	SetReturnFlags(ctx context.Context, id int64, update storage.ReturnFlagUpdate, userID string) (*domain.ReturnRecord, error)
	GetReturnStats(ctx context.Context, filter domain.ReturnFilter) (*storage.ReturnStats, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	storage       Storage
	userRepo      UserRepo
	exchangeCache *cache.ExchangeCache
	server        *http.Server
	AuditManager  *AuditManager
}

func New(storage Storage, userRepo UserRepo, exchangeCache *cache.ExchangeCache) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond)
	return &Server{
		storage:       storage,
		userRepo:      userRepo,
		exchangeCache: exchangeCache,
		AuditManager:  auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	go s.handleShutdown(ctx)

	log.Printf("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleShutdown(ctx context.Context) {
	<-ctx.Done()
	log.Println("Shutdown requested, stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Server shutdown failed: %v", err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	log.Println("Server shutdown completed successfully")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.basicAuthMiddleware, s.auditLogMiddleware)

	api.HandleFunc("/exchanges/stats", s.handleExchangeStats).Methods(http.MethodGet)
	api.HandleFunc("/exchanges", s.handleRegisterExchange).Methods(http.MethodPost)
	api.HandleFunc("/exchanges", s.handleListExchanges).Methods(http.MethodGet)
	api.HandleFunc("/exchanges/{id}", s.handleGetExchange).Methods(http.MethodGet)
	api.HandleFunc("/exchanges/{id}/flags", s.handleUpdateExchangeFlags).Methods(http.MethodPatch)

	api.HandleFunc("/returns/stats", s.handleReturnStats).Methods(http.MethodGet)
	api.HandleFunc("/returns", s.handleRegisterReturn).Methods(http.MethodPost)
	api.HandleFunc("/returns", s.handleListReturns).Methods(http.MethodGet)
	api.HandleFunc("/returns/{id}", s.handleGetReturn).Methods(http.MethodGet)
	api.HandleFunc("/returns/{id}/flags", s.handleUpdateReturnFlags).Methods(http.MethodPatch)

	api.HandleFunc("/statuses/{entity}", s.handleStatusVocabulary).Methods(http.MethodGet)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
