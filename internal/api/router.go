package api

import (
	"net/http"

	"travel-matrix-service/internal/api/handlers"
	"travel-matrix-service/internal/ports"
	"travel-matrix-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.AddressRepository, service *services.DistanceMatrixService) http.Handler {
	mux := http.NewServeMux()

	addrHandler := &handlers.AddressHandler{Repo: repo}
	distHandler := &handlers.DistanceHandler{
		Repo:    repo,
		Service: service,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/addresses", addrHandler.List)
	mux.HandleFunc("/distances", distHandler.Distances)
	mux.HandleFunc("/distances/matrix", distHandler.Matrix)

	return loggingMiddleware(mux)
}
