package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"fooddelivery/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	EtaBaseTimeMinutes     int
	EtaNoCourierMultiplier int
	ReviewCooldown         time.Duration
	RetryMaxAttempts       int
	OverdueScanSchedule    string

	RedisAddr      string
	IdempotencyTTL time.Duration

	KafkaHost              string
	KafkaOrderChangedTopic string
}

// LoadConfig reads the env file named by --env-file (".env" by default; a missing
// file is ignored), then the process environment, then command-line overrides.
func LoadConfig(args []string) (Config, error) {
	flags := pflag.NewFlagSet("fulfillment", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "path to a .env file")
	httpPort := flags.String("http-port", "", "HTTP port, overrides HTTP_PORT")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", *envFile, err)
	}

	var parseErrs []error
	config := Config{
		HTTPPort:   getEnv("HTTP_PORT", "8082"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		EtaBaseTimeMinutes:     getInt("ETA_BASE_TIME_MINUTES", 30, &parseErrs),
		EtaNoCourierMultiplier: getInt("ETA_NO_COURIER_MULTIPLIER", 3, &parseErrs),
		ReviewCooldown:         getDuration("REVIEW_COOLDOWN", 10*time.Minute, &parseErrs),
		RetryMaxAttempts:       getInt("RETRY_MAX_ATTEMPTS", 3, &parseErrs),
		OverdueScanSchedule:    getEnv("OVERDUE_SCAN_SCHEDULE", "0 * * * * *"),

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		IdempotencyTTL: getDuration("IDEMPOTENCY_TTL", 24*time.Hour, &parseErrs),

		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.status.changed"),
	}
	if *httpPort != "" {
		config.HTTPPort = *httpPort
	}

	if err := errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the settings that the service cannot start without.
// Business settings (ETA, cooldown) are validated by their domain services.
func (c Config) Validate() error {
	var result []error
	required := map[string]string{
		"HTTP_PORT":             c.HTTPPort,
		"DB_HOST":               c.DBHost,
		"DB_PORT":               c.DBPort,
		"DB_USER":               c.DBUser,
		"DB_NAME":               c.DBName,
		"DB_SSLMODE":            c.DBSslMode,
		"OVERDUE_SCAN_SCHEDULE": c.OverdueScanSchedule,
	}
	for name, value := range required {
		if value == "" {
			result = append(result, errs.NewValueIsRequiredError(name))
		}
	}

	if c.RetryMaxAttempts < 1 {
		result = append(result, errs.NewValueIsOutOfRangeError("RETRY_MAX_ATTEMPTS", c.RetryMaxAttempts, 1, "unbounded"))
	}
	if c.RedisAddr != "" && c.IdempotencyTTL <= 0 {
		result = append(result, errs.NewValueIsInvalidErrorWithCause(
			"IDEMPOTENCY_TTL",
			fmt.Errorf("%s is not positive", c.IdempotencyTTL),
		))
	}
	if c.KafkaHost != "" && c.KafkaOrderChangedTopic == "" {
		result = append(result, errs.NewValueIsRequiredError("KAFKA_ORDER_CHANGED_TOPIC"))
	}

	return errors.Join(result...)
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int, parseErrs *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		*parseErrs = append(*parseErrs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration, parseErrs *[]error) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		*parseErrs = append(*parseErrs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return value
}
