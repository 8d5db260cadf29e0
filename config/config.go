package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	DBUrl         string
	JWTSecret     string
	AllowedOrigin string
	TokenExpiry   time.Duration
	// DB Config
	DBMaxConns        int32
	DBMinConns        int32
	DBMaxConnIdleTime time.Duration
	// Object Storage (S3-compatible)
	S3AccountID       string
	S3AccessKeyID     string
	S3AccessKeySecret string
	S3BucketName      string
	S3PublicURL       string
	S3UploadTimeout   time.Duration
	// Cache
	CacheCatalogTTL time.Duration
	CacheContentTTL time.Duration
	// Upload Configuration
	MaxUploadSizeMB int64
	// Business Rules
	MinOrderAmount       float64
	BundleMinItems       int
	BundleMaxItems       int
	MaxCartQuantity      int
	AssemblyServicePrice float64
	// Session store snapshots
	SnapshotTTL time.Duration
}

func LoadConfig() *Config {
	// Allow a specific config file via env var, otherwise try .env.
	// In docker/prod envs .env usually doesn't exist and system env vars win.
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBUrl:         getEnv("DB_DSN", ""),
		JWTSecret:     getEnv("JWT_SECRET", "default_secret_CHANGE_ME"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		TokenExpiry:   getDurationEnv("TOKEN_EXPIRY", time.Hour*24),

		DBMaxConns:        getInt32Env("DB_MAX_CONNS", 50),
		DBMinConns:        getInt32Env("DB_MIN_CONNS", 10),
		DBMaxConnIdleTime: getDurationEnv("DB_MAX_CONN_IDLE_TIME", time.Minute*15),

		S3AccountID:       getEnv("S3_ACCOUNT_ID", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3AccessKeySecret: getEnv("S3_ACCESS_KEY_SECRET", ""),
		S3BucketName:      getEnv("S3_BUCKET_NAME", ""),
		S3PublicURL:       getEnv("S3_PUBLIC_URL", ""),
		S3UploadTimeout:   getDurationEnv("S3_UPLOAD_TIMEOUT", 30*time.Second),

		// Cache defaults: 10m catalog, 30m banners/packaging
		CacheCatalogTTL: getDurationEnv("CACHE_CATALOG_TTL", 10*time.Minute),
		CacheContentTTL: getDurationEnv("CACHE_CONTENT_TTL", 30*time.Minute),

		MaxUploadSizeMB: getInt64Env("MAX_UPLOAD_SIZE_MB", 10),

		// Business rules, matching the storefront defaults
		MinOrderAmount:       getFloat64Env("MIN_ORDER_AMOUNT", 2000),
		BundleMinItems:       getIntEnv("BUNDLE_MIN_ITEMS", 5),
		BundleMaxItems:       getIntEnv("BUNDLE_MAX_ITEMS", 20),
		MaxCartQuantity:      getIntEnv("MAX_CART_QUANTITY", 99),
		AssemblyServicePrice: getFloat64Env("ASSEMBLY_SERVICE_PRICE", 0),

		// Abandoned carts/bundles expire after 30 days
		SnapshotTTL: getDurationEnv("SNAPSHOT_TTL", 30*24*time.Hour),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.DBUrl == "" {
		log.Fatal("CRITICAL: DB_DSN environment variable is required")
	}
	if c.JWTSecret == "default_secret_CHANGE_ME" {
		log.Println("WARNING: Using default JWT secret. Setting up for failure in production.")
	}
	if c.BundleMinItems < 1 || c.BundleMaxItems < c.BundleMinItems {
		log.Fatalf("CRITICAL: invalid bundle bounds [%d, %d]", c.BundleMinItems, c.BundleMaxItems)
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
		log.Printf("Invalid int64 for %s, using fallback", key)
	}
	return fallback
}

func getFloat64Env(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}
