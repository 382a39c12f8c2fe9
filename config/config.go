package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Redis     RedisConfig
	Session   SessionConfig
	ImageHost ImageHostConfig
	Export    ExportConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// StoreConfig selects and configures the remote store backend.
// Backend is either "firebase" (hosted RTDB over REST) or "redis"
// (local development backend sharing the session Redis instance).
type StoreConfig struct {
	Backend      string
	FirebaseURL  string
	FirebaseAuth string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
}

// ImageHostConfig selects the image upload provider: "imgbb", "s3" or "cloudinary".
type ImageHostConfig struct {
	Provider      string
	Imgbb         ImgbbConfig
	S3            S3Config
	CloudinaryURL string
}

type ImgbbConfig struct {
	APIKey    string
	UploadURL string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // CloudFront or S3 direct URL
	Folder          string
}

type ExportConfig struct {
	Enabled  bool
	Schedule string
	Upload   bool // push scheduled exports to the S3 image host
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Store: StoreConfig{
			Backend:      getEnv("STORE_BACKEND", "firebase"),
			FirebaseURL:  getEnv("FIREBASE_DATABASE_URL", ""),
			FirebaseAuth: getEnv("FIREBASE_DATABASE_SECRET", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0")),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key"),
		},
		ImageHost: ImageHostConfig{
			Provider: getEnv("IMAGE_HOST_PROVIDER", "imgbb"),
			Imgbb: ImgbbConfig{
				APIKey:    getEnv("IMGBB_API_KEY", ""),
				UploadURL: getEnv("IMGBB_UPLOAD_URL", "https://api.imgbb.com/1/upload"),
			},
			S3: S3Config{
				Region:          getEnv("AWS_REGION", "eu-central-1"),
				Bucket:          getEnv("AWS_S3_BUCKET", "vitrina-uploads"),
				AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
				BaseURL:         getEnv("AWS_S3_BASE_URL", ""),
				Folder:          getEnv("AWS_S3_FOLDER", "uploads"),
			},
			CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		},
		Export: ExportConfig{
			Enabled:  parseBool(getEnv("EXPORT_ENABLED", "false")),
			Schedule: getEnv("EXPORT_SCHEDULE", "0 4 * * *"),
			Upload:   parseBool(getEnv("EXPORT_UPLOAD", "false")),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	if config.Store.Backend == "firebase" && config.Store.FirebaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL is required when STORE_BACKEND is firebase")
	}

	return config, nil
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

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %q, using 0", s)
		return 0
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
