package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string
		Port        string
		FrontendURL string
		UploadDir   string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	JWT struct {
		Secret            string
		ExpiryMinutes     int
		SessionExpiryDays int
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	}
	Bootstrap struct {
		SuperadminUsername string
		SuperadminEmail    string
		SuperadminPassword string
	}
}

// LoadConfig loads configuration from environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8090")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.UploadDir = getEnv("UPLOAD_DIR", "./public/uploads") // Ensure this path is writable

	// --- Database Configuration ---
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "crickbase_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// --- JWT / Session Configuration ---
	cfg.JWT.Secret = getEnv("JWT_SECRET", "change-me-in-production")

	var err error
	cfg.JWT.ExpiryMinutes, err = getEnvAsInt("JWT_EXPIRY_MINUTES", 60)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_MINUTES: %w", err)
	}
	cfg.JWT.SessionExpiryDays, err = getEnvAsInt("SESSION_EXPIRY_DAYS", 7)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_EXPIRY_DAYS: %w", err)
	}

	// --- SMTP Configuration ---
	cfg.SMTP.Host = getEnv("SMTP_HOST", "")
	cfg.SMTP.Port, err = getEnvAsInt("SMTP_PORT", 587)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "no-reply@crickbase.local")

	// --- First-run superadmin bootstrap ---
	cfg.Bootstrap.SuperadminUsername = getEnv("SUPERADMIN_USERNAME", "superadmin")
	cfg.Bootstrap.SuperadminEmail = getEnv("SUPERADMIN_EMAIL", "superadmin@crickbase.local")
	cfg.Bootstrap.SuperadminPassword = getEnv("SUPERADMIN_PASSWORD", "")

	if cfg.JWT.Secret == "change-me-in-production" {
		log.Println("WARNING: Using default JWT secret. Please set JWT_SECRET for production.")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	return cfg, nil
}

// ConnectDB establishes a connection to the database using the provided
// configuration. The returned handle is injected into the route setup and
// repositories; there is no package-level DB singleton.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Kolkata",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// CloseDB releases the underlying connection pool. Called from main on shutdown.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
