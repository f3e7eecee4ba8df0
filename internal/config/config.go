package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is built once in main and
// injected into the components that need it; nothing reads the environment
// after startup.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimeZone string

	JWTSecret string
	JWTExpiry time.Duration

	UploadDir string
	LogFile   string
}

// Load reads configuration from the environment, loading .env first if
// present, with a default for every key.
func Load() Config {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRES", "24h"))
	if err != nil {
		log.Printf("invalid JWT_EXPIRES, falling back to 24h: %v", err)
		expiry = 24 * time.Hour
	}

	return Config{
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "ecomap"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimeZone: getEnv("DB_TIMEZONE", "UTC"),
		JWTSecret:  getEnv("JWT_SECRET", "supersecret"),
		JWTExpiry:  expiry,
		UploadDir:  getEnv("UPLOAD_DIR", "./uploads"),
		LogFile:    getEnv("LOG_FILE", "./logs/app.log"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
