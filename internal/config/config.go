package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	UsersTable        = "CommunityUsers"
	PostsTable        = "DiscussionPosts"
	UsernameIndex     = "UsernameIndex"
	DefaultSecretKey  = "your-very-secret-key-for-jwt"
	DefaultRegion     = "ap-northeast-2"
	GeneralBoardStock = "ALL"
)

type DynamoDB struct {
	Region       string
	Endpoint     string
	UsersTable   string
	PostsTable   string
	UsernameIdx  string
	CreateTables bool
}

type MinIO struct {
	Enabled    bool
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	URLExpiry  time.Duration
}

type Config struct {
	ServerPort          int
	LogLevel            string
	DynamoDB            DynamoDB
	MinIO               MinIO
	SecretKey           string
	AccessTokenDuration time.Duration
	PostsRequireAuth    bool
	MaxUploadSize       int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDynamoDB() DynamoDB {
	return DynamoDB{
		Region:       getEnv("DYNAMODB_REGION", DefaultRegion),
		Endpoint:     getEnv("DYNAMODB_ENDPOINT", ""),
		UsersTable:   UsersTable,
		PostsTable:   PostsTable,
		UsernameIdx:  UsernameIndex,
		CreateTables: getEnvBool("DYNAMODB_CREATE_TABLES", false),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Enabled:    getEnvBool("MINIO_ENABLED", false),
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "post-images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		URLExpiry:  parseDuration(getEnv("MINIO_URL_EXPIRY", "24h"), 24*time.Hour),
	}
}

// LoadConfig reads .env (if present) and the process environment. The signing
// secret falls back to an insecure built-in value so local runs work without setup.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env file not found, using environment variables")
	}

	cfg := &Config{
		ServerPort:          getEnvAsInt("SERVER_PORT", 8080),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DynamoDB:            LoadDynamoDB(),
		MinIO:               LoadMinIO(),
		SecretKey:           getEnv("SECRET_KEY", DefaultSecretKey),
		AccessTokenDuration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "24h"), 24*time.Hour),
		PostsRequireAuth:    getEnvBool("POSTS_REQUIRE_AUTH", false),
		MaxUploadSize:       parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
	}

	if cfg.SecretKey == "" {
		cfg.SecretKey = DefaultSecretKey
	}
	if cfg.SecretKey == DefaultSecretKey {
		slog.Warn("SECRET_KEY is not set, falling back to the built-in development key")
	}

	return cfg
}
