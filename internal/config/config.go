// Package config reads the tracker's environment configuration.
package config

import (
	"os"
	"strings"
)

// Config carries the runtime knobs for the server process.
type Config struct {
	// ListenAddr is the address the HTTP server binds, e.g. ":3000".
	ListenAddr string
	// MongoURI selects the backing store. Empty means the in-memory store.
	MongoURI string
	// MongoDatabase is the database name used when MongoURI is set.
	MongoDatabase string
}

// Load builds a Config from environment variables. Defaults: listen on
// port 3000 with database name "reset".
func Load() Config {
	cfg := Config{
		ListenAddr:    ":3000",
		MongoURI:      strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDatabase: "reset",
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.ListenAddr = ":" + port
	}
	if db := strings.TrimSpace(os.Getenv("MONGO_DATABASE")); db != "" {
		cfg.MongoDatabase = db
	}
	return cfg
}
