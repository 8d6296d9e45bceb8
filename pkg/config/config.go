package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Kakao     KakaoConfig
	OpenMeteo OpenMeteoConfig
	Model     ModelConfig
	Ingest    IngestConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type KakaoConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type OpenMeteoConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ModelConfig points at the model-serving process that hosts the trained
// scoring artifact and its feature schema.
type ModelConfig struct {
	BaseURL string
	Timeout time.Duration
}

type IngestConfig struct {
	// FailureReportPath is where records that failed weather backfill are
	// written for manual follow-up.
	FailureReportPath string

	// Interval between scheduled ingestion passes. Zero means run once.
	Interval time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "BassMate API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "bass_ai_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Kakao: KakaoConfig{
			BaseURL: getEnv("KAKAO_BASE_URL", "https://dapi.kakao.com"),
			APIKey:  getEnv("KAKAO_REST_API_KEY", ""),
			Timeout: getEnvDuration("KAKAO_TIMEOUT", 5*time.Second),
		},
		OpenMeteo: OpenMeteoConfig{
			BaseURL: getEnv("OPENMETEO_BASE_URL", "https://archive-api.open-meteo.com"),
			Timeout: getEnvDuration("OPENMETEO_TIMEOUT", 10*time.Second),
		},
		Model: ModelConfig{
			BaseURL: getEnv("MODEL_SERVER_URL", "http://localhost:9000"),
			Timeout: getEnvDuration("MODEL_SERVER_TIMEOUT", 5*time.Second),
		},
		Ingest: IngestConfig{
			FailureReportPath: getEnv("INGEST_FAILURE_REPORT", "weather_api_failures.csv"),
			Interval:          getEnvDuration("INGEST_INTERVAL", 0),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Kakao.APIKey == "" {
		return nil, errors.New("missing kakao rest api key")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	if d, err := time.ParseDuration(val); err == nil {
		return d
	}

	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}

	return defaultVal
}
