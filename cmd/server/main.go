package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"travel-matrix-service/internal/adapters/matrix"
	"travel-matrix-service/internal/adapters/repositories"
	"travel-matrix-service/internal/api"
	"travel-matrix-service/internal/platform/db"
	"travel-matrix-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Google Maps) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	clientID := getEnv("MAPS_CLIENT_ID", "")
	channel := getEnv("MAPS_CHANNEL", "travel-matrix-service")

	apiKey := os.Getenv("MAPS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("MAPS_API_KEY is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	client, err := matrix.NewGoogleMatrixClient(apiKey, clientID, channel)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewPostgresAddressRepository(conn)
	service := services.NewDistanceMatrixService(client)
	router := api.NewRouter(repo, service)

	// Write timeout covers a full many-to-many measurement: several
	// sequential provider calls, each with its own retry budget.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
