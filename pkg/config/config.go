package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port             string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins string
}

type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MaxConns       int32
	MigrationsPath string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// DSN is the keyword/value form understood by pgxpool.ParseConfig.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// URL is the pgx5:// form expected by the migration driver.
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work for containers.
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, err := getInt("SERVER_READ_TIMEOUT", 30)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getInt("SERVER_WRITE_TIMEOUT", 30)
	if err != nil {
		return nil, err
	}
	jwtExp, err := getInt("JWT_EXPIRATION_HOURS", 24)
	if err != nil {
		return nil, err
	}
	refreshExp, err := getInt("JWT_REFRESH_EXPIRATION_HOURS", 168)
	if err != nil {
		return nil, err
	}
	maxConns, err := getInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			ReadTimeout:      time.Duration(readTimeout) * time.Second,
			WriteTimeout:     time.Duration(writeTimeout) * time.Second,
			CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			DBName:         getEnv("DB_NAME", "restaurant_intel"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       int32(maxConns),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer, got %q", key, raw)
	}
	return v, nil
}
