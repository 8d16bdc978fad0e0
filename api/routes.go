package api

import (
	"github.com/gorilla/mux"
	"github.com/shramsetu/shramsetu/internal/config"
	"github.com/shramsetu/shramsetu/internal/db"
	"github.com/shramsetu/shramsetu/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, d *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(d, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	workersHandler := NewWorkersHandler(repo, repo, cfg.JWTSecret, cfg.TokenDuration)
	customersHandler := NewCustomersHandler(repo)

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Worker endpoints
	api.HandleFunc("/workers", workersHandler.List).Methods("GET")
	api.HandleFunc("/workers", workersHandler.Create).Methods("POST")
	api.HandleFunc("/workers/login", workersHandler.Login).Methods("POST")
	api.HandleFunc("/workers/{id:[0-9]+}", workersHandler.Get).Methods("GET")
	api.HandleFunc("/workers/{id:[0-9]+}/history", workersHandler.History).Methods("GET")

	// Worker mutations; ownership is enforced only when require_auth is set
	// so the open contract stays the default.
	workerMut := api.PathPrefix("/workers/{id:[0-9]+}").Subrouter()
	if cfg.RequireAuth {
		workerMut.Use(WorkerOwnerMiddleware(cfg.JWTSecret))
	}
	workerMut.HandleFunc("", workersHandler.Update).Methods("PUT")
	workerMut.HandleFunc("/history", workersHandler.AddHistory).Methods("POST")

	// Customer endpoints. No server-side customer login exists, so these stay
	// open even with require_auth.
	api.HandleFunc("/customers", customersHandler.Create).Methods("POST")
	api.HandleFunc("/customers/{id:[0-9]+}", customersHandler.Get).Methods("GET")
	api.HandleFunc("/customers/{id:[0-9]+}", customersHandler.Update).Methods("PUT")

	return r
}
