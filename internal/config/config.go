package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
	Seller SellerConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// SellerConfig identifies the selling entity. StateCode is the seller side of
// every tax regime resolution.
type SellerConfig struct {
	LegalName string `mapstructure:"legal_name"`
	GSTIN     string `mapstructure:"gstin"`
	StateCode string `mapstructure:"state_code"`
}

// Load reads configuration from environment variables with the GSTBOOKS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTBOOKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstbooks")
	v.SetDefault("db.password", "gstbooks_secret")
	v.SetDefault("db.name", "gstbooks_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "gstbooks")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@gstbooks.local")
	v.SetDefault("email.from_name", "GSTBooks")

	// Seller defaults
	v.SetDefault("seller.legal_name", "")
	v.SetDefault("seller.gstin", "")
	v.SetDefault("seller.state_code", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "GSTBOOKS_SERVER_PORT",
		"server.read_timeout":  "GSTBOOKS_SERVER_READ_TIMEOUT",
		"server.write_timeout": "GSTBOOKS_SERVER_WRITE_TIMEOUT",
		"server.environment":   "GSTBOOKS_SERVER_ENVIRONMENT",
		"db.host":              "GSTBOOKS_DB_HOST",
		"db.port":              "GSTBOOKS_DB_PORT",
		"db.user":              "GSTBOOKS_DB_USER",
		"db.password":          "GSTBOOKS_DB_PASSWORD",
		"db.name":              "GSTBOOKS_DB_NAME",
		"db.sslmode":           "GSTBOOKS_DB_SSLMODE",
		"db.max_open":          "GSTBOOKS_DB_MAX_OPEN",
		"db.max_idle":          "GSTBOOKS_DB_MAX_IDLE",
		"jwt.secret":           "GSTBOOKS_JWT_SECRET",
		"jwt.access_expiry":    "GSTBOOKS_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "GSTBOOKS_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "GSTBOOKS_JWT_ISSUER",
		"log.level":            "GSTBOOKS_LOG_LEVEL",
		"log.format":           "GSTBOOKS_LOG_FORMAT",
		"cors.allowed_origins": "GSTBOOKS_CORS_ALLOWED_ORIGINS",
		"email.provider":       "GSTBOOKS_EMAIL_PROVIDER",
		"email.region":         "GSTBOOKS_EMAIL_REGION",
		"email.from_address":   "GSTBOOKS_EMAIL_FROM_ADDRESS",
		"email.from_name":      "GSTBOOKS_EMAIL_FROM_NAME",
		"seller.legal_name":    "GSTBOOKS_SELLER_LEGAL_NAME",
		"seller.gstin":         "GSTBOOKS_SELLER_GSTIN",
		"seller.state_code":    "GSTBOOKS_SELLER_STATE_CODE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTBOOKS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTBOOKS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Seller = SellerConfig{
		LegalName: v.GetString("seller.legal_name"),
		GSTIN:     v.GetString("seller.gstin"),
		StateCode: v.GetString("seller.state_code"),
	}

	return cfg, nil
}
