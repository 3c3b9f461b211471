package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	RedisURL     string
	MenuCacheTTL time.Duration
	AMQPURL      string
	AMQPExchange string
	SettingsFile string
}

// LoadConfig reads the environment, after loading envFile when it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	config := Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getEnv("DB_NAME", "hotelpos"),
		DBSslMode:    getEnv("DB_SSLMODE", "disable"),
		RedisURL:     os.Getenv("REDIS_URL"),
		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: os.Getenv("AMQP_EXCHANGE"),
		SettingsFile: getEnv("POS_SETTINGS_FILE", "settings.yaml"),
	}

	if raw := os.Getenv("MENU_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("MENU_CACHE_TTL: %w", err)
		}
		config.MenuCacheTTL = ttl
	}

	return config, nil
}

// DSN is the PostgreSQL connection string shared by gorm and database/sql.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
