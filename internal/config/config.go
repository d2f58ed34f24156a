package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	Auth    AuthConfig
	MinIO   MinIOConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AuthConfig describes the external OAuth session-data service used to
// exchange a short-lived session id for a user identity and session token.
type AuthConfig struct {
	UpstreamURL     string
	UpstreamTimeout time.Duration
	SessionTTL      time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

type CORSConfig struct {
	Origins []string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_DATABASE", "fleet")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("AUTH_UPSTREAM_TIMEOUT", 10)
	viper.SetDefault("AUTH_SESSION_TTL_HOURS", 168)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("MINIO_BUCKET", "fleet")

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		Auth: AuthConfig{
			UpstreamURL:     viper.GetString("AUTH_UPSTREAM_URL"),
			UpstreamTimeout: time.Duration(viper.GetInt("AUTH_UPSTREAM_TIMEOUT")) * time.Second,
			SessionTTL:      time.Duration(viper.GetInt("AUTH_SESSION_TTL_HOURS")) * time.Hour,
		},
		MinIO: MinIOConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
		},
		CORS: CORSConfig{
			Origins: splitOrigins(viper.GetString("CORS_ORIGINS")),
		},
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
