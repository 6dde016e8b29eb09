package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"parcels/internal/adapters/out/auth"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret         string
	TokenTTL          time.Duration
	TemporaryTokenTTL time.Duration
	BcryptCost        int
	OneTimeCodeTTL    time.Duration

	BaseFee        decimal.Decimal
	PerKgFee       decimal.Decimal
	TrackingPrefix string
	PublicBaseURL  string

	// Redis backs the session store when RedisAddr is set; otherwise sessions live in memory.
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	SessionNamespace string

	// RabbitMQ receives status events when RabbitMQURL is set.
	RabbitMQURL      string
	RabbitMQExchange string

	// SendGrid delivers mail when SendGridAPIKey is set; otherwise mail is only logged.
	SendGridAPIKey  string
	MailFromName    string
	MailFromAddress string

	SessionCleanupSchedule string
}

// LoadConfig reads the environment, after loading envFile when it exists.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	r := envReader{}
	cfg := Config{
		HTTPPort: r.str("HTTP_PORT", "8080"),

		DBHost:     r.str("DB_HOST", "localhost"),
		DBPort:     r.str("DB_PORT", "5432"),
		DBUser:     r.str("DB_USER", "postgres"),
		DBPassword: r.str("DB_PASSWORD", ""),
		DBName:     r.str("DB_NAME", "parcels"),
		DBSslMode:  r.str("DB_SSLMODE", "disable"),

		JWTSecret:         r.str("JWT_SECRET", ""),
		TokenTTL:          r.duration("TOKEN_TTL", 7*24*time.Hour),
		TemporaryTokenTTL: r.duration("TEMPORARY_TOKEN_TTL", 24*time.Hour),
		BcryptCost:        r.integer("BCRYPT_COST", 0),
		OneTimeCodeTTL:    r.duration("ONE_TIME_CODE_TTL", session.DefaultCodeTTL),

		BaseFee:        r.decimal("TARIFF_BASE_FEE", parcel.DefaultBaseFee),
		PerKgFee:       r.decimal("TARIFF_PER_KG_FEE", parcel.DefaultPerKgFee),
		TrackingPrefix: r.str("TRACKING_PREFIX", "PKG"),
		PublicBaseURL:  r.str("PUBLIC_BASE_URL", "http://localhost:8080"),

		RedisAddr:        r.str("REDIS_ADDR", ""),
		RedisPassword:    r.str("REDIS_PASSWORD", ""),
		RedisDB:          r.integer("REDIS_DB", 0),
		SessionNamespace: r.str("SESSION_NAMESPACE", "parcels:session"),

		RabbitMQURL:      r.str("RABBITMQ_URL", ""),
		RabbitMQExchange: r.str("RABBITMQ_EXCHANGE", "parcels.events"),

		SendGridAPIKey:  r.str("SENDGRID_API_KEY", ""),
		MailFromName:    r.str("MAIL_FROM_NAME", "Parcels"),
		MailFromAddress: r.str("MAIL_FROM_ADDRESS", "no-reply@parcels.local"),

		SessionCleanupSchedule: r.str("SESSION_CLEANUP_SCHEDULE", ""),
	}

	if err := errors.Join(append(r.errs, cfg.validate())...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if len(c.JWTSecret) < auth.MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d characters", auth.MinSecretLength))
	}
	if c.TokenTTL <= 0 || c.TemporaryTokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL and TEMPORARY_TOKEN_TTL must be positive"))
	}
	if err := session.ValidateCodeTTL(c.OneTimeCodeTTL); err != nil {
		errs = append(errs, fmt.Errorf("ONE_TIME_CODE_TTL: %w", err))
	}
	if c.BaseFee.IsNegative() || c.PerKgFee.IsNegative() {
		errs = append(errs, errors.New("tariff fees must not be negative"))
	}
	if _, err := url.ParseRequestURI(c.PublicBaseURL); err != nil {
		errs = append(errs, fmt.Errorf("PUBLIC_BASE_URL: %w", err))
	}
	return errors.Join(errs...)
}

// DSN is the libpq connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// envReader collects parse failures so that every bad variable is reported at once.
type envReader struct {
	errs []error
}

func (r *envReader) str(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func (r *envReader) integer(key string, fallback int) int {
	v := r.str(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	v := r.str(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func (r *envReader) decimal(key string, fallback decimal.Decimal) decimal.Decimal {
	v := r.str(key, "")
	if v == "" {
		return fallback
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}
