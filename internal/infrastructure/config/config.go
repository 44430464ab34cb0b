// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"wingman-service/pkg/flighttime"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB (flight record store)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (aircraft directory)
	PostgresURI string

	// Gmail (summary mailer)
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	GmailSender       string

	// Flight policy
	Policy FlightPolicy
}

// FlightPolicy carries the regulatory knobs the engines depend on. The
// duration ceiling and the night window are deliberately configurable;
// authorities differ on both.
type FlightPolicy struct {
	// MaxFlightMinutes is the sanity ceiling for a single leg's block time.
	MaxFlightMinutes int
	// Night is the local-clock window counted as night time. A zero window
	// disables night-time derivation.
	Night flighttime.Window
	// MinLandings is the landing count required for a completed flight.
	MinLandings int
	// PageCapacity is the default number of rows per logbook page.
	PageCapacity int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	nightStart, err := flighttime.ParseClock(getEnv("NIGHT_START", "21:00"))
	if err != nil {
		return nil, err
	}
	nightEnd, err := flighttime.ParseClock(getEnv("NIGHT_END", "06:00"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "wingman"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", "host=localhost user=wingman dbname=wingman port=5432"),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		GmailSender:       getEnv("GMAIL_SENDER", ""),

		Policy: FlightPolicy{
			MaxFlightMinutes: getEnvAsInt("MAX_FLIGHT_MINUTES", flighttime.MinutesPerDay),
			Night:            flighttime.Window{Start: nightStart, End: nightEnd},
			MinLandings:      getEnvAsInt("MIN_LANDINGS", 1),
			PageCapacity:     getEnvAsInt("PAGE_CAPACITY", 14),
		},
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
