package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Security SecurityConfig
	Receipt  ReceiptConfig
	Insights InsightsConfig
	Events   EventsConfig
	Worker   WorkerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrationsPath  string
}

type JWTConfig struct {
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	PrivateKey           *rsa.PrivateKey
	PublicKey            *rsa.PublicKey
	Issuer               string
}

// CookieConfig controls the auth cookies set on login.
type CookieConfig struct {
	Domain   string
	Path     string
	Secure   bool
	SameSite http.SameSite
}

type SecurityConfig struct {
	BCryptCost          int
	RateLimitPerSecond  int
	MaxFailedAttempts   int
	LockoutDuration     time.Duration
	PasswordMinLength   int
	RequireUppercase    bool
	RequireLowercase    bool
	RequireNumbers      bool
	RequireSpecialChars bool
}

// ReceiptConfig configures the receipt OCR pipeline.
type ReceiptConfig struct {
	PdftoppmPath  string
	TesseractPath string
	Language      string
	DPI           int
	PageSegMode   int
	MaxUploadSize int64
	StorageDir    string
	Timeout       time.Duration
}

type InsightsConfig struct {
	GeminiAPIKey     string
	GeminiBaseURL    string
	Model            string
	RequestTimeout   time.Duration
	RetryAttempts    uint
	RetryDelay       time.Duration
	TransactionLimit int
}

type EventsConfig struct {
	AMQPURL  string
	Exchange string
	Queue    string
}

type WorkerConfig struct {
	Timezone             string
	RecurringSchedule    string
	SavingPlanSchedule   string
	TokenCleanupSchedule string
}

// Location loads Timezone, the calendar timezone used for deadlines,
// budget windows and recurring due dates.
func (w WorkerConfig) Location() (*time.Location, error) {
	return time.LoadLocation(w.Timezone)
}

type LogConfig struct {
	Level  string
	Format string
}

// source wraps the koanf instance holding the flat environment.
type source struct {
	k *koanf.Koanf
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	return FromKoanf(k)
}

// FromKoanf builds the configuration from an already populated koanf instance.
func FromKoanf(k *koanf.Koanf) (*Config, error) {
	s := source{k: k}

	config := &Config{
		Server: ServerConfig{
			Port:            s.str("SERVER_PORT", "8080"),
			Host:            s.str("SERVER_HOST", "0.0.0.0"),
			Environment:     s.str("APP_ENV", "development"),
			ReadTimeout:     s.duration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    s.duration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: s.duration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			URL:             s.str("DATABASE_URL", ""),
			Host:            s.str("DB_HOST", "localhost"),
			Port:            s.str("DB_PORT", "5432"),
			User:            s.str("DB_USER", "tracklytic"),
			Password:        s.str("DB_PASSWORD", "tracklytic"),
			Name:            s.str("DB_NAME", "tracklytic"),
			SSLMode:         s.str("DB_SSL_MODE", "disable"),
			MaxConnections:  s.int("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    s.int("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: s.duration("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     s.bool("AUTO_MIGRATE", false),
			MigrationsPath:  s.str("MIGRATIONS_PATH", "db/migrations"),
		},
		Security: SecurityConfig{
			BCryptCost:          s.int("BCRYPT_COST", 12),
			RateLimitPerSecond:  s.int("RATE_LIMIT_PER_SECOND", 10),
			MaxFailedAttempts:   s.int("MAX_FAILED_ATTEMPTS", 5),
			LockoutDuration:     s.duration("LOCKOUT_DURATION", 15*time.Minute),
			PasswordMinLength:   s.int("PASSWORD_MIN_LENGTH", 8),
			RequireUppercase:    s.bool("PASSWORD_REQUIRE_UPPERCASE", true),
			RequireLowercase:    s.bool("PASSWORD_REQUIRE_LOWERCASE", true),
			RequireNumbers:      s.bool("PASSWORD_REQUIRE_NUMBERS", true),
			RequireSpecialChars: s.bool("PASSWORD_REQUIRE_SPECIAL", false),
		},
		JWT: JWTConfig{
			AccessTokenDuration:  s.duration("JWT_ACCESS_TOKEN_DURATION", 10*time.Minute),
			RefreshTokenDuration: s.duration("JWT_REFRESH_TOKEN_DURATION", 7*24*time.Hour),
			Issuer:               s.str("JWT_ISSUER", "tracklytic"),
		},
		Cookie: CookieConfig{
			Domain:   s.str("COOKIE_DOMAIN", ""),
			Path:     s.str("COOKIE_PATH", "/"),
			Secure:   s.bool("COOKIE_SECURE", true),
			SameSite: parseSameSite(s.str("COOKIE_SAMESITE", "lax")),
		},
		Receipt: ReceiptConfig{
			PdftoppmPath:  s.str("OCR_PDFTOPPM_PATH", "pdftoppm"),
			TesseractPath: s.str("OCR_TESSERACT_PATH", "tesseract"),
			Language:      s.str("OCR_LANGUAGE", "eng"),
			DPI:           s.int("OCR_DPI", 300),
			PageSegMode:   s.int("OCR_PSM", 4),
			MaxUploadSize: int64(s.int("RECEIPT_MAX_UPLOAD_BYTES", 10<<20)),
			StorageDir:    s.str("RECEIPT_STORAGE_DIR", "media/receipts"),
			Timeout:       s.duration("OCR_TIMEOUT", 60*time.Second),
		},
		Insights: InsightsConfig{
			GeminiAPIKey:     s.str("GEMINI_API_KEY", ""),
			GeminiBaseURL:    s.str("GEMINI_BASE_URL", ""),
			Model:            s.str("GEMINI_MODEL", "gemini-2.5-flash"),
			RequestTimeout:   s.duration("GEMINI_TIMEOUT", 30*time.Second),
			RetryAttempts:    uint(s.int("GEMINI_RETRY_ATTEMPTS", 3)),
			RetryDelay:       s.duration("GEMINI_RETRY_DELAY", 2*time.Second),
			TransactionLimit: s.int("INSIGHTS_TRANSACTION_LIMIT", 100),
		},
		Events: EventsConfig{
			AMQPURL:  s.str("AMQP_URL", ""),
			Exchange: s.str("AMQP_EXCHANGE", "tracklytic"),
			Queue:    s.str("AMQP_QUEUE", "transactions"),
		},
		Worker: WorkerConfig{
			Timezone:             s.str("WORKER_TIMEZONE", "UTC"),
			RecurringSchedule:    s.str("RECURRING_SCHEDULE", "*/15 * * * *"),
			SavingPlanSchedule:   s.str("SAVING_PLAN_SCHEDULE", "5 0 * * *"),
			TokenCleanupSchedule: s.str("TOKEN_CLEANUP_SCHEDULE", "0 * * * *"),
		},
		Log: LogConfig{
			Level:  s.str("LOG_LEVEL", "info"),
			Format: s.str("LOG_FORMAT", "text"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins(s.str("CORS_ALLOW_ORIGINS", ""))

	var err error
	config.JWT.PrivateKey, config.JWT.PublicKey, err = config.loadJWTKeys(s.str("JWT_PRIVATE_KEY", ""), s.str("JWT_PUBLIC_KEY", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT must not be empty"))
	}
	if c.Security.BCryptCost < 4 || c.Security.BCryptCost > 31 {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.Security.BCryptCost))
	}
	if c.Security.PasswordMinLength < 6 {
		errs = append(errs, fmt.Errorf("PASSWORD_MIN_LENGTH must be at least 6, got %d", c.Security.PasswordMinLength))
	}
	if c.Receipt.DPI < 72 || c.Receipt.DPI > 1200 {
		errs = append(errs, fmt.Errorf("OCR_DPI must be between 72 and 1200, got %d", c.Receipt.DPI))
	}
	if c.Receipt.MaxUploadSize <= 0 {
		errs = append(errs, errors.New("RECEIPT_MAX_UPLOAD_BYTES must be positive"))
	}
	if c.JWT.AccessTokenDuration <= 0 || c.JWT.RefreshTokenDuration <= c.JWT.AccessTokenDuration {
		errs = append(errs, errors.New("JWT refresh token duration must exceed the access token duration"))
	}
	return errors.Join(errs...)
}

func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrationURL returns the postgres URL form expected by lib/pq and golang-migrate.
func (c *DatabaseConfig) MigrationURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// InsightsEnabled reports whether a Gemini key is configured.
func (c *Config) InsightsEnabled() bool {
	return c.Insights.GeminiAPIKey != ""
}

func (s source) str(key, defaultValue string) string {
	if value := strings.TrimSpace(s.k.String(key)); value != "" {
		return value
	}
	return defaultValue
}

func (s source) int(key string, defaultValue int) int {
	if value := s.k.String(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func (s source) bool(key string, defaultValue bool) bool {
	if value := s.k.String(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func (s source) duration(key string, defaultValue time.Duration) time.Duration {
	if value := s.k.String(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// loadJWTKeys prefers base64 PEM keys from the environment. Outside production a
// fresh keypair is generated when they are missing, which invalidates tokens on restart.
func (c *Config) loadJWTKeys(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if privateKeyB64 != "" && publicKeyB64 != "" {
		slog.Info("Loading RSA keypair from environment variables")
		return loadKeysFromBase64(privateKeyB64, publicKeyB64)
	}

	if c.IsProduction() {
		return nil, nil, fmt.Errorf("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY environment variables must be set in production environments")
	}

	slog.Warn("Generating an ephemeral RSA keypair for JWT signing; set JWT_PRIVATE_KEY and JWT_PUBLIC_KEY to persist sessions")
	return GenerateRSAKeyPair()
}

func loadKeysFromBase64(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return privateKey, publicKey, nil
}

func (c *Config) loadCORSAllowOrigins(raw string) []string {
	if raw == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(raw, ",")
	out := origins[:0]
	for _, origin := range origins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GenerateRSAKeyPair generates a new 2048-bit RSA key pair.
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	if privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	privateKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return privateKey, nil
}

func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
