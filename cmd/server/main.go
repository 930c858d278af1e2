package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"itinerary-service/internal/adapters/cache"
	"itinerary-service/internal/adapters/circuit"
	"itinerary-service/internal/adapters/repositories"
	"itinerary-service/internal/adapters/routing"
	"itinerary-service/internal/api"
	"itinerary-service/internal/config"
	"itinerary-service/internal/ports"
	"itinerary-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, directions API, Redis, circuit file)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/places.json")
	circuitPath := config.Get("CIRCUIT_CACHE_PATH", "data/circuit_cache.json")
	anchorID := config.Get("CIRCUIT_ANCHOR_ID", services.DefaultCircuitAnchorID)
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed place data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	oracle := buildOracle()

	repo := repositories.NewSqlitePlaceRepository(db)
	circuitStore := circuit.NewFileCircuitStore(circuitPath)
	engine := services.NewEngine(repo, circuitStore, oracle, services.Config{
		CircuitAnchorID: anchorID,
	})

	router := api.NewRouter(repo, engine)

	// Timeouts are tuned for cold-cache itinerary builds (external API latency).
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

// buildOracle assembles the route oracle from the environment. Without an
// API key the engine runs oracle-less on haversine estimates; with Redis
// configured, point-to-point durations are cached between builds.
func buildOracle() ports.RouteOracle {
	apiKey := os.Getenv("DIRECTIONS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Println("DIRECTIONS_API_KEY not set, using distance-based travel estimates")
		return nil
	}

	client, err := routing.NewDirectionsClient(apiKey)
	if err != nil {
		log.Fatal(err)
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(redisAddr) == "" {
		return client
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	log.Printf("Caching travel durations in redis addr=%s", redisAddr)
	return cache.NewRedisTravelCache(rdb, client, cache.DefaultTravelTTL)
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
