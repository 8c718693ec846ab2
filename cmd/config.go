package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/jobs"
	"ordering/internal/pkg/auth"

	"github.com/joho/godotenv"
)

const DefaultProductFileBaseURL = "http://localhost:3000/product-file/"

var ErrJWTSecretIsRequired = errors.New("JWT_SECRET is required")

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	JWTSecret            string
	JWTTTL               time.Duration
	BcryptCost           int
	ProductFileBaseURL   string
	StatusReportSchedule string
	LogLevel             string
}

// LoadConfig reads the environment after applying envFile, if it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	ttl, err := durationVariable("JWT_TTL", auth.DefaultTokenTTL)
	if err != nil {
		return Config{}, err
	}

	cost, err := intVariable("BCRYPT_COST", 0)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:             variable("HTTP_PORT", "8080"),
		DBHost:               variable("DB_HOST", "localhost"),
		DBPort:               variable("DB_PORT", "5432"),
		DBUser:               variable("DB_USER", "postgres"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               variable("DB_NAME", "ordering"),
		DBSslMode:            variable("DB_SSLMODE", "disable"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTTTL:               ttl,
		BcryptCost:           cost,
		ProductFileBaseURL:   variable("PRODUCT_FILE_BASE_URL", DefaultProductFileBaseURL),
		StatusReportSchedule: variable("STATUS_REPORT_SCHEDULE", jobs.DefaultStatusReportSchedule),
		LogLevel:             variable("LOG_LEVEL", "info"),
	}
	return config, nil
}

// Validate checks what serving requests needs on top of the database.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrJWTSecretIsRequired
	}
	return nil
}

func (c Config) Database() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func variable(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func intVariable(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
