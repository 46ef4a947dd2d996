package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-route-service/internal/adapters/cache"
	"trip-route-service/internal/adapters/graphhopper"
	"trip-route-service/internal/adapters/history"
	"trip-route-service/internal/api"
	"trip-route-service/internal/config"
	"trip-route-service/internal/platform/db"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (GraphHopper, cache backend, CSV history)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.toml"))
	if err != nil {
		log.Fatal(err)
	}

	geocodeCache, closeDB, err := buildGeocodeCache(cfg.Cache)
	if err != nil {
		log.Fatal(err)
	}
	if closeDB != nil {
		defer closeDB()
	}

	client, err := graphhopper.NewClient(
		cfg.GraphHopper.BaseURL,
		cfg.GraphHopper.APIKey,
		graphhopper.WithRateLimit(cfg.GraphHopper.RatePerSecond, cfg.GraphHopper.RateBurst),
		graphhopper.WithCache(geocodeCache, cfg.Cache.Backend),
	)
	if err != nil {
		log.Fatal(err)
	}

	store := history.NewCSVHistoryStore(cfg.History.Path)
	session := services.NewSession(client, client, store)
	router := api.NewRouter(session, services.PlainFormatter{})

	// Timeouts are tuned for cold-cache calculations (external API latency).
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildGeocodeCache selects the persistent backend from config and
// layers the in-memory LRU tier in front of it. The returned closer
// releases the backend's connection, when there is one.
func buildGeocodeCache(cfg config.CacheConfig) (ports.GeocodeCache, func(), error) {
	var (
		persistent ports.GeocodeCache
		closeDB    func()
	)

	switch cfg.Backend {
	case "sqlite":
		sdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(sdb); err != nil {
			sdb.Close()
			return nil, nil, err
		}
		persistent = cache.NewSqliteGeocodeCache(sdb)
		closeDB = closer(sdb)
	case "postgres":
		pdb, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(pdb); err != nil {
			pdb.Close()
			return nil, nil, err
		}
		persistent = cache.NewPGGeocodeCache(pdb)
		closeDB = closer(pdb)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		persistent = cache.NewRedisGeocodeCache(client, 24*time.Hour)
		closeDB = func() { _ = client.Close() }
	case "none":
		// Memory tier only, if enabled.
	}

	if cfg.MemorySize <= 0 {
		return persistent, closeDB, nil
	}

	memory, err := cache.NewLRUGeocodeCache(cfg.MemorySize)
	if err != nil {
		if closeDB != nil {
			closeDB()
		}
		return nil, nil, err
	}

	return &cache.Tiered{Memory: memory, Persistent: persistent}, closeDB, nil
}

func closer(db *sql.DB) func() {
	return func() { _ = db.Close() }
}
