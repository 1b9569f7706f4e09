package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ModeConsole = "console"
	ModeAPI     = "api"

	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	Mode           string
	DataDir        string
	StorageBackend string
	ServerPort     string
	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	JWTSecret      string

	// OperatorPasswordHash is a bcrypt hash checked by POST /auth/login.
	OperatorPasswordHash string
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Mode:                 getEnv("APP_MODE", ModeConsole),
		DataDir:              getEnv("DATA_DIR", "."),
		StorageBackend:       getEnv("STORAGE_BACKEND", BackendFile),
		ServerPort:           getEnv("PORT", "8080"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               dbPort,
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", ""),
		DBName:               getEnv("DB_NAME", "attendance"),
		DBSSLMode:            getEnv("DB_SSLMODE", "disable"),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
