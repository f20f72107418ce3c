package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported values for DB_DRIVER and REVOCATION_STORE
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	RevocationRedis    = "redis"
	RevocationDatabase = "database"
	RevocationMemory   = "memory"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	Redis      RedisConfig
	Revocation RevocationConfig
	Server     ServerConfig
	CORS       CORSConfig
	Security   SecurityConfig
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Path     string
}

type JWTConfig struct {
	Secret             string
	Algorithm          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RevocationConfig struct {
	Backend string
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SecurityConfig struct {
	BcryptCost int
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "blog"),
			Path:     getEnv("DB_PATH", "blog.db"),
		},
		JWT: JWTConfig{
			Secret:             getEnv("SECRET_KEY", ""),
			Algorithm:          getEnv("ALGORITHM", "HS256"),
			AccessTokenExpiry:  time.Duration(getInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
			RefreshTokenExpiry: time.Duration(getInt("REFRESH_TOKEN_EXPIRES_DAYS", 7)) * 24 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Revocation: RevocationConfig{
			Backend: strings.ToLower(getEnv("REVOCATION_STORE", RevocationRedis)),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Security: SecurityConfig{
			BcryptCost: getInt("BCRYPT_COST", 12),
		},
	}

	return config
}

// Validate reports configuration that would leave the service unable to issue
// or verify tokens, or to reach its stores.
func (c *Config) Validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}
	switch c.JWT.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		errs = append(errs, fmt.Errorf("ALGORITHM %q is not supported, use HS256, HS384 or HS512", c.JWT.Algorithm))
	}
	if c.JWT.AccessTokenExpiry <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive"))
	}
	if c.JWT.RefreshTokenExpiry <= 0 {
		errs = append(errs, errors.New("REFRESH_TOKEN_EXPIRES_DAYS must be positive"))
	}

	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not supported", c.Database.Driver))
	}

	switch c.Revocation.Backend {
	case RevocationRedis, RevocationDatabase, RevocationMemory:
	default:
		errs = append(errs, fmt.Errorf("REVOCATION_STORE %q is not supported", c.Revocation.Backend))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s '%s', using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
