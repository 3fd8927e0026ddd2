package config

import (
	"os"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	DatabaseURL string
}

// FromEnv builds a Server config from environment variables so main stays
// lean. An empty DATABASE_URL selects the in-memory stores, which is only
// suitable for development.
func FromEnv() Server {
	addr := os.Getenv("ROLODEX_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}
