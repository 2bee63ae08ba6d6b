package config

import (
	"os"
)

var (
	// Server configuration
	ServerPort = getEnv("SERVER_PORT", ":3000")

	// Database configuration
	DBHost     = getEnv("DB_HOST", "localhost")
	DBUser     = getEnv("DB_USER", "postgres")
	DBPassword = getEnv("DB_PASSWORD", "postgres")
	DBName     = getEnv("DB_NAME", "ojs_dashboard_db")
	DBPort     = getEnv("DB_PORT", "5432")
	DBSSLMode  = getEnv("DB_SSLMODE", "disable")
	DBTimeZone = getEnv("DB_TIMEZONE", "UTC")

	// Base URL of the OJS REST API, e.g. "https://journal.example.org/api/v1/".
	// No default: the dashboard cannot do anything without it.
	APIURL = os.Getenv("OJS_API_URL")
)

// Name of the cookie holding the operator's OJS API key.
const APIKeyCookie = "api_key"

// How long a login session stays valid, in days.
const APIKeyCookieDays = 7

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
