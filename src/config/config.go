package config

import (
	"fmt"
	"os"
	"time"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// JWTSecret signs the session tokens issued by this API.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// ProviderSecret verifies ID tokens minted by the identity provider.
func ProviderSecret() []byte {
	return []byte(os.Getenv("PROVIDER_SECRET"))
}

const TIME_PARSE_FORMAT = time.RFC3339

const DATE_PARSE_FORMAT = "2006-01-02"

const SESSION_TTL = 24 * time.Hour
