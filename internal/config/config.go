package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// InsecureDevSecret is the JWT signing fallback used when JWT_SECRET is not set.
// It exists so local development works out of the box; production deployments
// must override it.
const InsecureDevSecret = "tu-clave-secreta-cambiar-en-produccion"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	S3       S3Config
	Email    EmailConfig
}

type ServerConfig struct {
	Port             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// Enabled controls whether the API-key cache is wired at all.
	Enabled bool
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type S3Config struct {
	Bucket    string
	Region    string
	PublicURL string
}

type EmailConfig struct {
	Enabled bool
	APIKey  string
	From    string
}

func Load() (*Config, error) {
	// .env es opcional en producción
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			Environment:      getEnv("ENVIRONMENT", "development"),
			ReadTimeout:      getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:     getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "miracle"),
			Password: getEnv("DB_PASSWORD", "miracle"),
			DBName:   getEnv("DB_NAME", "miracledb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", InsecureDevSecret),
			Expiry: getDurationEnv("JWT_EXPIRY", 7*24*time.Hour),
		},
		S3: S3Config{
			Bucket:    getEnv("S3_BUCKET", ""),
			Region:    getEnv("AWS_REGION", "us-east-1"),
			PublicURL: getEnv("S3_PUBLIC_URL", ""),
		},
		Email: EmailConfig{
			Enabled: getBoolEnv("EMAIL_ENABLED", false),
			APIKey:  getEnv("RESEND_API_KEY", ""),
			From:    getEnv("EMAIL_FROM", "Miracle <no-reply@miracle.local>"),
		},
	}

	return cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
