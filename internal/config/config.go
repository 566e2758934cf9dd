package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration values. It is built once at
// process start and passed by value into the components that need it;
// nothing mutates it afterwards. The signing secret and the database
// coordinates live here rather than in globals.
type Config struct {
	Env           string   // application environment (e.g. "dev", "prod")
	Port          string   // HTTP port to listen on
	DBUser        string   // database username
	DBPass        string   // database password (optional)
	DBHost        string   // database host address
	DBPort        string   // database port number
	DBName        string   // database name
	JWTSecret     string   // secret used to sign bearer tokens
	TokenTTLDays  int      // bearer token lifetime in days
	BcryptCost    int      // bcrypt cost for password hashing
	RequiredRoles []string // roles allowed on protected routes; empty disables the check
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
// Token TTL and bcrypt cost have defaults (7 days, bcrypt default)
// because they are tuning knobs, not deployment identity.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		JWTSecret:     must("JWT_SECRET"),
		TokenTTLDays:  envInt("TOKEN_TTL_DAYS", 7),
		BcryptCost:    envInt("BCRYPT_COST", 10),
		RequiredRoles: splitRoles(os.Getenv("AUTH_REQUIRED_ROLES")),
	}
}

// splitRoles parses a comma-separated role list. An empty input yields
// nil, which the router reads as "authentication only, no role check".
func splitRoles(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
