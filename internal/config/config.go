package config

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
}

type Config struct {
	DBURL       string
	Port        string
	Environment string

	// AuthMode selects the identity resolver: "jwt" verifies bearer tokens
	// against JWTSecret, "static" uses the fixed StaticUsers table.
	AuthMode    string
	JWTSecret   string
	StaticUsers string
	AdminEmails []string

	// StorageBackend selects the object store: "s3" or "memory".
	StorageBackend string
	S3             S3Config

	AllowedOrigins []string
}

func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		DBURL:       getEnv("DB_URL", ""),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		AuthMode:    getEnv("AUTH_MODE", "jwt"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		StaticUsers: getEnv("STATIC_USERS", ""),
		AdminEmails: splitList(getEnv("ADMIN_EMAILS", "")),

		StorageBackend: getEnv("STORAGE_BACKEND", "s3"),
		S3: S3Config{
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("S3_BUCKET_NAME", ""),
			Region:          getEnv("S3_REGION", "auto"),
		},

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5174,http://127.0.0.1:5174")),
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func CorsConfig(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}
}
