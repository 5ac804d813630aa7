package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses the simulated backend latencies
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The database values are optional: when
// DB_HOST is unset the server runs against the in-memory fixture
// catalog and directory, which is the normal mode for demos and tests.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	DBUser         string        // database username (optional)
	DBPass         string        // database password (optional)
	DBHost         string        // database host address; empty selects fixture mode
	DBPort         string        // database port number
	DBName         string        // database name
	JWTSecret      string        // secret used to sign JWTs
	AccessTTLMin   int           // access token time-to-live in minutes
	RefreshTTLDays int           // refresh token time-to-live in days
	BcryptCost     int           // bcrypt cost for directory password hashing
	AuthDelay      time.Duration // simulated latency of the stub auth backend
	RecoDelay      time.Duration // simulated latency of the stub recommender
	CatalogDelay   time.Duration // simulated latency of the fixture catalog
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     mustInt("BCRYPT_COST"),
		AuthDelay:      envDuration("MOCK_AUTH_DELAY", time.Second),
		RecoDelay:      envDuration("MOCK_RECO_DELAY", 1500*time.Millisecond),
		CatalogDelay:   envDuration("MOCK_CATALOG_DELAY", time.Second),
	}
}

// UseDatabase reports whether MySQL-backed catalog/directory/token
// storage should be used instead of the in-memory fixtures.
func (c Config) UseDatabase() bool { return c.DBHost != "" }

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// envDuration reads an optional duration variable, falling back to def.
func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, v)
	}
	return d
}
