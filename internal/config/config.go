package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Overdraft OverdraftConfig
	Scheduler SchedulerConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// OverdraftPolicy controls how a transaction that would push used salary past
// the base salary is treated.
type OverdraftPolicy string

const (
	// PolicyStrict rejects the transaction.
	PolicyStrict OverdraftPolicy = "strict"
	// PolicyWarn records the transaction and surfaces a warning.
	PolicyWarn OverdraftPolicy = "warn"
)

// OverdraftConfig sets the overdraft policy per transaction type. The defaults
// match the observed behavior of the legacy system: advances are strictly
// blocked from overdrawing, bills only warn.
type OverdraftConfig struct {
	Advances OverdraftPolicy
	Bills    OverdraftPolicy
}

// SchedulerConfig controls the in-process job scheduler.
type SchedulerConfig struct {
	Enabled         bool
	AttendanceSweep time.Duration
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; variables come from the host.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "salarydesk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	advancePolicy, err := parsePolicy(getEnv("OVERDRAFT_POLICY_ADVANCES", string(PolicyStrict)))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERDRAFT_POLICY_ADVANCES: %w", err)
	}
	billPolicy, err := parsePolicy(getEnv("OVERDRAFT_POLICY_BILLS", string(PolicyWarn)))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERDRAFT_POLICY_BILLS: %w", err)
	}
	config.Overdraft = OverdraftConfig{
		Advances: advancePolicy,
		Bills:    billPolicy,
	}

	sweepInterval, err := time.ParseDuration(getEnv("ATTENDANCE_SWEEP_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_SWEEP_INTERVAL: %w", err)
	}
	config.Scheduler = SchedulerConfig{
		Enabled:         getEnv("SCHEDULER_ENABLED", "true") == "true",
		AttendanceSweep: sweepInterval,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func parsePolicy(s string) (OverdraftPolicy, error) {
	switch OverdraftPolicy(s) {
	case PolicyStrict, PolicyWarn:
		return OverdraftPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown overdraft policy %q", s)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
