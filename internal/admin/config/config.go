package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI             string
	Port                 string
	DBName               string
	GroupsCollection     string
	AdminUsersCollection string
	AuditLogsCollection  string
	JWTSecret            string
	TokenTTLMinutes      int
	BcryptCost           int
	ReadTimeout          time.Duration
	WriteTimeout         time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments rely on the environment
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		MongoURI:             mongoURI,
		Port:                 port,
		DBName:               getEnv("DB_NAME", "staff_admin_db"),
		GroupsCollection:     getEnv("COLLECTION_GROUPS", "groups"),
		AdminUsersCollection: getEnv("COLLECTION_ADMIN_USERS", "admin_users"),
		AuditLogsCollection:  getEnv("COLLECTION_AUDIT_LOGS", "audit_logs"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		TokenTTLMinutes:      getEnvInt("TOKEN_TTL_MINUTES", 60),
		BcryptCost:           getEnvInt("BCRYPT_COST", 10),
		ReadTimeout:          getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:         getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Try parsing as duration string? e.g. "10s"
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
