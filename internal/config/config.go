// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Security SecurityConfig
	Mailbox  MailboxConfig
	Payment  PaymentConfig
	Admin    AdminConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name            string
	Version         string
	Environment     string
	Debug           bool
	DefaultLanguage string
	CompanyName     string
	CompanyAddress  string
	CompanyPhone    string
	CompanyEmail    string
	CompanyWebsite  string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// JWTConfig contains JWT token configuration
type JWTConfig struct {
	Secret               string
	AccessTokenExpiry    time.Duration
	RefreshTokenExpiry   time.Duration
	RefreshTokenRotation bool
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	BcryptCost         int
	RateLimitPerMinute int
	RateLimitBurst     int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// MailboxConfig contains the key-value bucket names for the message
// and prescription mailboxes
type MailboxConfig struct {
	MessagesBucket      string
	PrescriptionsBucket string
}

// PaymentConfig contains the mock payment flow configuration
type PaymentConfig struct {
	VerificationWindow time.Duration
	MerchantNumber     string
	DeliveryFee        int64
	Currency           string
}

// AdminConfig contains the admin console configuration
type AdminConfig struct {
	Email    string
	Password string
	// InsecureLogin accepts any credential pair on the admin login
	// path. Demo parity mode only, refused in production.
	InsecureLogin bool
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:            getEnv("APP_NAME", "Jeevita Backend"),
			Version:         getEnv("APP_VERSION", "1.0.0"),
			Environment:     getEnv("APP_ENV", "development"),
			Debug:           getEnvAsBool("APP_DEBUG", true),
			DefaultLanguage: getEnv("APP_DEFAULT_LANGUAGE", "en"),
			CompanyName:     getEnv("COMPANY_NAME", "Jeevita Healthcare"),
			CompanyAddress:  getEnv("COMPANY_ADDRESS", "House 12, Road 5, Dhanmondi, Dhaka"),
			CompanyPhone:    getEnv("COMPANY_PHONE", "01625691878"),
			CompanyEmail:    getEnv("COMPANY_EMAIL", "jeevitasupport@gmail.com"),
			CompanyWebsite:  getEnv("COMPANY_WEBSITE", "https://jeevita.com"),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		JWT: JWTConfig{
			Secret:               getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-in-production"),
			AccessTokenExpiry:    getEnvAsDuration("JWT_ACCESS_EXPIRE", 24*time.Hour),
			RefreshTokenExpiry:   getEnvAsDuration("JWT_REFRESH_EXPIRE", 7*24*time.Hour),
			RefreshTokenRotation: getEnvAsBool("JWT_REFRESH_ROTATION", true),
		},
		Security: SecurityConfig{
			BcryptCost:         getEnvAsInt("BCRYPT_COST", 12),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
			RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 50),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Mailbox: MailboxConfig{
			MessagesBucket:      getEnv("MAILBOX_MESSAGES_BUCKET", "adminMessages"),
			PrescriptionsBucket: getEnv("MAILBOX_PRESCRIPTIONS_BUCKET", "adminPrescriptions"),
		},
		Payment: PaymentConfig{
			VerificationWindow: getEnvAsDuration("PAYMENT_VERIFICATION_WINDOW", 5*time.Minute),
			MerchantNumber:     getEnv("PAYMENT_MERCHANT_NUMBER", "01625691878"),
			DeliveryFee:        getEnvAsInt64("PAYMENT_DELIVERY_FEE", 50),
			Currency:           getEnv("PAYMENT_CURRENCY", "BDT"),
		},
		Admin: AdminConfig{
			Email:         getEnv("ADMIN_EMAIL", "admin@jeevita.com"),
			Password:      getEnv("ADMIN_PASSWORD", "admin123"),
			InsecureLogin: getEnvAsBool("ADMIN_INSECURE_LOGIN", false),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", "logs/app.log"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate JWT secret
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	// Validate Redis configuration
	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}

	// Validate server port
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	// Validate mailbox buckets
	if c.Mailbox.MessagesBucket == "" || c.Mailbox.PrescriptionsBucket == "" {
		return fmt.Errorf("mailbox bucket names are required")
	}
	if c.Mailbox.MessagesBucket == c.Mailbox.PrescriptionsBucket {
		return fmt.Errorf("mailbox buckets must be distinct")
	}

	if c.Admin.InsecureLogin && c.IsProduction() {
		return fmt.Errorf("ADMIN_INSECURE_LOGIN must not be enabled in production")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
