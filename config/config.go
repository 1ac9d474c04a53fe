package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds all configuration for the application
type Config struct {
	Port string
	Env  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	JWTExpire time.Duration

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	LeaguePricing      map[string]int64
	DefaultLeaguePrice int64

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	ReminderConcurrency int

	StorageDriver string
	AWSRegion     string
	AWSAccessKey  string
	AWSSecretKey  string
	S3Bucket      string
	UploadDir     string
	PublicBaseURL string

	EventsQueueURL string

	CORSOrigin     string
	RateLimitRPS   float64
	RateLimitBurst int

	LogDir string

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// DefaultLeaguePricing is used when LEAGUE_PRICING is not set. Prices are in rupees.
var DefaultLeaguePricing = map[string]int64{
	"t20-2026": 5000,
	"t10-2026": 3000,
	"trial":    1000,
}

// IsProduction reports whether error details must be hidden from clients
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DSN returns the Postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// LoadConfig loads configuration from the environment, reading .env first when present
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	pricing, err := ParseLeaguePricing(os.Getenv("LEAGUE_PRICING"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port: getEnv("PORT", "8000"),
		Env:  getEnv("ENV", "development"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "turboleague"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpire: cast.ToDuration(getEnv("JWT_EXPIRE", "168h")),

		RazorpayKeyID:         os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),

		LeaguePricing:      pricing,
		DefaultLeaguePrice: cast.ToInt64(getEnv("DEFAULT_LEAGUE_PRICE", "1000")),

		SMTPHost: getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: cast.ToInt(getEnv("SMTP_PORT", "587")),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: os.Getenv("SMTP_FROM"),

		ReminderConcurrency: cast.ToInt(getEnv("REMINDER_CONCURRENCY", "4")),

		StorageDriver: getEnv("STORAGE_DRIVER", "s3"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey:  os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:      os.Getenv("S3_BUCKET_NAME"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8000"), "/"),

		EventsQueueURL: os.Getenv("EVENTS_QUEUE_URL"),

		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:3000"),
		RateLimitRPS:   cast.ToFloat64(getEnv("RATE_LIMIT_RPS", "5")),
		RateLimitBurst: cast.ToInt(getEnv("RATE_LIMIT_BURST", "20")),

		LogDir: getEnv("LOG_DIR", "logs"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
	}

	if config.SMTPFrom == "" {
		config.SMTPFrom = config.SMTPUser
	}
	if config.JWTExpire <= 0 {
		config.JWTExpire = 7 * 24 * time.Hour
	}

	return config, nil
}

// Validate checks the settings the HTTP server cannot run without
func (c *Config) Validate() error {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.RazorpayKeyID == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if c.RazorpayKeySecret == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}
	if c.StorageDriver == "s3" && c.S3Bucket == "" {
		missing = append(missing, "S3_BUCKET_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ParseLeaguePricing parses "league=price,league=price". An empty string
// yields DefaultLeaguePricing.
func ParseLeaguePricing(raw string) (map[string]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		out := make(map[string]int64, len(DefaultLeaguePricing))
		for k, v := range DefaultLeaguePricing {
			out[k] = v
		}
		return out, nil
	}

	out := map[string]int64{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
			return nil, fmt.Errorf("invalid LEAGUE_PRICING entry %q", part)
		}
		price, err := cast.ToInt64E(strings.TrimSpace(kv[1]))
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("invalid price for league %q", kv[0])
		}
		out[strings.TrimSpace(kv[0])] = price
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
