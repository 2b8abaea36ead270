package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Eyabennessib/rooma/internal/config"
	"github.com/Eyabennessib/rooma/internal/handlers"
	"github.com/Eyabennessib/rooma/internal/repository"
	"github.com/Eyabennessib/rooma/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(database *sql.DB, cfg config.Config) *Server {
	householdRepo := repository.NewHouseholdRepository(database)
	memberRepo := repository.NewMemberRepository(database)
	choreRepo := repository.NewChoreRepository(database)
	assignmentRepo := repository.NewAssignmentRepository(database)

	rotationService := services.NewRotationService(memberRepo, choreRepo, assignmentRepo)

	householdHandler := handlers.NewHouseholdHandler(householdRepo, memberRepo, choreRepo)
	memberHandler := handlers.NewMemberHandler(householdRepo, memberRepo)
	choreHandler := handlers.NewChoreHandler(householdRepo, choreRepo)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentRepo, rotationService)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/households", householdHandler.Create)
		r.Get("/households/{id}", householdHandler.Get)
		r.Delete("/households/{id}", householdHandler.Delete)

		r.Post("/households/{id}/members", memberHandler.Create)
		r.Post("/households/{id}/chores", choreHandler.Create)

		r.Get("/households/{id}/assignments/current", assignmentHandler.Current)
		r.Post("/households/{id}/rotate", assignmentHandler.Rotate)

		r.Post("/assignments/{id}/complete", assignmentHandler.Complete)
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

func (server *Server) Router() http.Handler {
	return server.router
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, server.router)
}
