package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pantrykit/apiserver/config"
	"github.com/pantrykit/apiserver/internal/handlers"
	"github.com/pantrykit/apiserver/internal/logger"
	"github.com/pantrykit/apiserver/internal/middleware"
	"github.com/pantrykit/apiserver/internal/services"
	"github.com/pantrykit/apiserver/internal/store"
)

// Server wraps the HTTP server, router, and the store lifecycle.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	store      *store.Store
}

// New constructs a Server: it connects the store (applying the schema), wires
// services and handlers, and sets up the middleware stack.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	log := logger.New(logger.Options{
		ServiceName: "pantrykit",
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})

	st := store.New(cfg.Database.DBName, log)
	if err := st.Connect(ctx); err != nil {
		return nil, err
	}

	inventoryService := services.NewInventoryService(st)
	userService := services.NewUserService(st)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID(log),
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logging,
		chimiddleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/users", func(r chi.Router) {
		handlers.UserRouter(r, userService)
	})
	router.Route("/ingredients", func(r chi.Router) {
		handlers.IngredientRouter(r, inventoryService)
	})
	router.Route("/inventory", func(r chi.Router) {
		handlers.InventoryRouter(r, inventoryService)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		store:      st,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.store != nil {
		_ = s.store.Close()
	}
	return s.httpServer.Close()
}
