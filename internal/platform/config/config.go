package config

import "os"

// Server captures process-level configuration read once at startup.
type Server struct {
	Addr         string
	DatabaseURL  string
	DatabaseName string
}

// FromEnv builds a Server config from environment variables so main stays lean.
// A missing DATABASE_URL or DATABASE_NAME is not an error: the service starts
// in degraded mode and reports the gap through the diagnostic endpoint.
func FromEnv() Server {
	addr := os.Getenv("GROWTHSPHERE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:         addr,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
	}
}

// StoreConfigured reports whether both store settings are present.
func (s Server) StoreConfigured() bool {
	return s.DatabaseURL != "" && s.DatabaseName != ""
}
