package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	// Record store backend: "local" or "firestore".
	StoreBackend   string
	LocalStorePath string

	FirebaseProject string
	StorageBucket   string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailSender  string

	AdminEmail           string
	AdminInitialPassword string

	JWTSecret string
	JWTExpiry int64

	SiteURL string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		StoreBackend:   getEnv("STORE_BACKEND", "local"),
		LocalStorePath: getEnv("LOCAL_STORE_PATH", ""),

		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		EmailSender:  getEnv("EMAIL_SENDER", "noreply@starlinkwifi.com"),

		AdminEmail:           getEnv("ADMIN_EMAIL", "admin@starlinkwifi.com"),
		AdminInitialPassword: getEnv("ADMIN_INITIAL_PASSWORD", ""),

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry: getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours

		SiteURL: getEnv("SITE_URL", "http://localhost:8080"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
